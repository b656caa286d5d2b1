package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
)

// ImportacionHandler CRUD de importaciones. No hay delete: una importación
// con error se desactiva con activo=false para no perder la trazabilidad.
type ImportacionHandler struct {
	uc *usecase.ImportacionUseCase
}

func NewImportacionHandler(uc *usecase.ImportacionUseCase) *ImportacionHandler {
	return &ImportacionHandler{uc: uc}
}

// Create maneja POST /api/importaciones.
func (h *ImportacionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateImportacionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	imp, err := h.uc.Crear(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(imp)
}

// Get maneja GET /api/importaciones/:id.
func (h *ImportacionHandler) Get(c *fiber.Ctx) error {
	imp, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(imp)
}

// List maneja GET /api/importaciones?solo_activas=true.
func (h *ImportacionHandler) List(c *fiber.Ctx) error {
	soloActivas := c.QueryBool("solo_activas")
	imps, err := h.uc.Listar(soloActivas)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(imps)
}

// Update maneja PUT /api/importaciones/:id.
func (h *ImportacionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateImportacionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	imp, err := h.uc.Actualizar(c.Params("id"), req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(imp)
}
