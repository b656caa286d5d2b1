package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/auth"
	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register maneja POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	usuario, err := h.uc.Register(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Login maneja POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo de la petición inválido")
	}
	resp, err := h.uc.Login(req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}
