// Package auth implementa registro y login de usuarios con bcrypt y JWT.
package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
	"github.com/jorge052011/crm-distribuidora/pkg/config"
	"github.com/jorge052011/crm-distribuidora/pkg/jwt"
)

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Register crea un usuario nuevo con la contraseña hasheada.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	rol := req.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	if rol != entity.RolAdmin && rol != entity.RolVendedor {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, rol)
	}

	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("usuario por email: %w", err)
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	usuario := &entity.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       strings.TrimSpace(req.Nombre),
		Rol:          rol,
		Activo:       true,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return usuarioResponse(usuario), nil
}

// Login verifica las credenciales y emite un token.
// Devuelve ErrUnauthorized tanto para email inexistente como para contraseña
// incorrecta, sin distinguirlos.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	usuario, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("usuario por email: %w", err)
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}

	return &dto.LoginResponse{Token: token, Usuario: *usuarioResponse(usuario)}, nil
}

func usuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
	}
}
