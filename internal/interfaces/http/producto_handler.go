package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// ProductoHandler CRUD del catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create maneja POST /api/productos.
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	producto, err := h.uc.Crear(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Get maneja GET /api/productos/:id.
func (h *ProductoHandler) Get(c *fiber.Ctx) error {
	producto, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// List maneja GET /api/productos, solo los activos.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.ListarActivos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(productos)
}

// Update maneja PUT /api/productos/:id.
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	producto, err := h.uc.Actualizar(c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}
