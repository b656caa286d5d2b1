package repository

import "github.com/jorge052011/crm-distribuidora/internal/domain/entity"

// UsuarioRepository persistencia de usuarios.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByEmail(email string) (*entity.Usuario, error)
	GetByID(id string) (*entity.Usuario, error)
}
