package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario cuenta de acceso al sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
