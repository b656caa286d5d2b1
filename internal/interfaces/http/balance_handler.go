package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// PDFGenerator genera el balance mensual como documento PDF.
type PDFGenerator interface {
	GenerateBalancePDF(b *dto.BalanceMensualDTO) ([]byte, error)
}

// BalanceHandler expone los balances mensual, anual y comparativo.
type BalanceHandler struct {
	uc  *usecase.BalanceUseCase
	pdf PDFGenerator
}

func NewBalanceHandler(uc *usecase.BalanceUseCase, pdf PDFGenerator) *BalanceHandler {
	return &BalanceHandler{uc: uc, pdf: pdf}
}

// Mensual maneja GET /api/balance/mensual/:anio/:mes.
func (h *BalanceHandler) Mensual(c *fiber.Ctx) error {
	anio, mes, err := paramsAnioMes(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	balance, err := h.uc.CalcularMensual(c.Context(), anio, mes)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(balance)
}

// MensualPDF maneja GET /api/balance/mensual/:anio/:mes/pdf.
func (h *BalanceHandler) MensualPDF(c *fiber.Ctx) error {
	anio, mes, err := paramsAnioMes(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	balance, err := h.uc.CalcularMensual(c.Context(), anio, mes)
	if err != nil {
		return responderError(c, err)
	}
	doc, err := h.pdf.GenerateBalancePDF(balance)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="balance_%04d_%02d.pdf"`, anio, mes))
	return c.Send(doc)
}

// Anual maneja GET /api/balance/anual/:anio.
func (h *BalanceHandler) Anual(c *fiber.Ctx) error {
	anio, err := paramAnio(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	balance, err := h.uc.CalcularAnual(c.Context(), anio)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(balance)
}

// Comparativo maneja GET /api/balance/comparativo?anios=2023,2024,2025.
func (h *BalanceHandler) Comparativo(c *fiber.Ctx) error {
	anios, err := parseAnios(c.Query("anios"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	comparativa, err := h.uc.CalcularComparativa(c.Context(), anios)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(comparativa)
}

func paramsAnioMes(c *fiber.Ctx) (anio, mes int, err error) {
	anio, err = paramAnio(c)
	if err != nil {
		return 0, 0, err
	}
	mes, err = strconv.Atoi(c.Params("mes"))
	if err != nil || mes < 1 || mes > 12 {
		return 0, 0, fmt.Errorf("mes inválido: debe ser un entero entre 1 y 12")
	}
	return anio, mes, nil
}

func paramAnio(c *fiber.Ctx) (int, error) {
	anio, err := strconv.Atoi(c.Params("anio"))
	if err != nil || anio < 2000 || anio > 2100 {
		return 0, fmt.Errorf("año inválido")
	}
	return anio, nil
}

// parseAnios parsea la lista separada por comas del query param anios.
func parseAnios(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("parámetro anios requerido, ej: anios=2023,2024")
	}
	partes := strings.Split(raw, ",")
	anios := make([]int, 0, len(partes))
	for _, p := range partes {
		anio, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("año inválido en anios: %q", p)
		}
		anios = append(anios, anio)
	}
	return anios, nil
}
