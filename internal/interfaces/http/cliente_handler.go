package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// ClienteHandler CRUD de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create maneja POST /api/clientes.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	cliente, err := h.uc.Crear(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Get maneja GET /api/clientes/:id.
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	cliente, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

// List maneja GET /api/clientes con filtros y paginación.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var req dto.ClienteListRequest
	if err := c.QueryParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "parámetros de búsqueda inválidos")
	}
	lista, err := h.uc.Listar(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

// Update maneja PUT /api/clientes/:id.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	cliente, err := h.uc.Actualizar(c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

// Delete maneja DELETE /api/clientes/:id.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
