package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// VentaHandler CRUD de ventas y sus items.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create maneja POST /api/ventas.
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVentaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	venta, err := h.uc.Crear(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// Get maneja GET /api/ventas/:id, incluye los items.
func (h *VentaHandler) Get(c *fiber.Ctx) error {
	venta, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(venta)
}

// List maneja GET /api/ventas con filtros y paginación.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var req dto.VentaListRequest
	if err := c.QueryParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "parámetros de búsqueda inválidos")
	}
	lista, err := h.uc.Listar(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

// Update maneja PUT /api/ventas/:id.
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateVentaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	venta, err := h.uc.Actualizar(c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(venta)
}

// Delete maneja DELETE /api/ventas/:id.
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem maneja POST /api/ventas/:id/items.
func (h *VentaHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	item, err := h.uc.AgregarItem(c.Context(), c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteItem maneja DELETE /api/ventas/:id/items/:itemId.
func (h *VentaHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.EliminarItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
