package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// GastoHandler CRUD de gastos operacionales.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create maneja POST /api/gastos.
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGastoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	gasto, err := h.uc.Crear(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gasto)
}

// Get maneja GET /api/gastos/:id.
func (h *GastoHandler) Get(c *fiber.Ctx) error {
	gasto, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(gasto)
}

// List maneja GET /api/gastos con filtros por tipo y rango de fechas.
func (h *GastoHandler) List(c *fiber.Ctx) error {
	var req dto.GastoListRequest
	if err := c.QueryParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "parámetros de búsqueda inválidos")
	}
	lista, err := h.uc.Listar(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

// Update maneja PUT /api/gastos/:id.
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateGastoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	gasto, err := h.uc.Actualizar(c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(gasto)
}

// Delete maneja DELETE /api/gastos/:id.
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
