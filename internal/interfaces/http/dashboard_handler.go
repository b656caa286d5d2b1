package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// DashboardHandler expone el dashboard y el resumen mensual.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard maneja GET /api/dashboard?dias=&desde=&hasta=&mes_detalle=.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	dias, err := queryEntero(c, "dias")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	desde, err := queryFecha(c, "desde")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	hasta, err := queryFecha(c, "hasta")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	mesDetalle, err := queryFecha(c, "mes_detalle")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	ventana := h.uc.ResolverVentana(dias, desde, hasta, mesDetalle)
	dashboard, err := h.uc.Dashboard(c.Context(), ventana)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dashboard)
}

// ResumenMensual maneja GET /api/resumen-mensual?desde=&hasta=.
func (h *DashboardHandler) ResumenMensual(c *fiber.Ctx) error {
	desde, err := queryFecha(c, "desde")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	hasta, err := queryFecha(c, "hasta")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	resumen, err := h.uc.ResumenMensual(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resumen)
}
