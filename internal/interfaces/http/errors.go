// Package http expone la API REST con Fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
)

// errorJSON responde {"error": mensaje} con el status dado.
func errorJSON(c *fiber.Ctx, status int, mensaje string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: mensaje})
}

// responderError traduce errores de dominio a status HTTP. Todo lo no
// clasificado es un 500 genérico.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "acceso denegado")
	default:
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
}
