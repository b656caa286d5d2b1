package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// InventarioHandler expone el consumo de bolsas y la proyección de stock.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// ConsumoBolsas maneja GET /api/inventario/consumo-bolsas?desde=&hasta=.
func (h *InventarioHandler) ConsumoBolsas(c *fiber.Ctx) error {
	desde, err := queryFecha(c, "desde")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	hasta, err := queryFecha(c, "hasta")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	consumo, err := h.uc.ConsumoBolsas(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(consumo)
}

// ProyeccionStock maneja GET /api/inventario/proyeccion?dias=.
func (h *InventarioHandler) ProyeccionStock(c *fiber.Ctx) error {
	dias, err := queryEntero(c, "dias")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	proyeccion, err := h.uc.ProyeccionStock(c.Context(), dias)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(proyeccion)
}

// queryFecha parsea un query param de fecha YYYY-MM-DD. Ausente devuelve nil.
func queryFecha(c *fiber.Ctx, nombre string) (*time.Time, error) {
	raw := c.Query(nombre)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: se espera YYYY-MM-DD", nombre)
	}
	return &t, nil
}

// queryEntero parsea un query param entero. Ausente devuelve 0.
func queryEntero(c *fiber.Ctx, nombre string) (int, error) {
	raw := c.Query(nombre)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: se espera un entero", nombre)
	}
	return n, nil
}
