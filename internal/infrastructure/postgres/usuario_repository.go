package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	usuario.ID = uuid.NewString()
	now := time.Now()
	usuario.CreatedAt = now
	usuario.UpdatedAt = now

	query := `
		INSERT INTO usuarios (id, email, password_hash, nombre, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.PasswordHash, usuario.Nombre, usuario.Rol,
		usuario.Activo, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, email, password_hash, nombre, rol, activo, created_at, updated_at
		 FROM usuarios WHERE email = $1`, email))
}

// GetByID obtiene un usuario por id; nil si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, email, password_hash, nombre, rol, activo, created_at, updated_at
		 FROM usuarios WHERE id = $1`, id))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
