package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.ImportacionRepository = (*ImportacionRepo)(nil)

// ImportacionRepo implementación de ImportacionRepository.
type ImportacionRepo struct {
	q Querier
}

// NewImportacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImportacionRepository(q Querier) *ImportacionRepo {
	return &ImportacionRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *ImportacionRepo) Create(imp *entity.Importacion) error {
	imp.ID = uuid.NewString()
	now := time.Now()
	imp.CreatedAt = now
	imp.UpdatedAt = now

	query := `
		INSERT INTO importaciones (id, fecha, kilos_ingresados, merma_kg, costo_total, kilos_restantes, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		imp.ID, imp.Fecha, imp.KilosIngresados, imp.MermaKg, imp.CostoTotal,
		imp.KilosRestantes, imp.Activo, imp.CreatedAt, imp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert importación: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por id; nil si no existe.
func (r *ImportacionRepo) GetByID(id string) (*entity.Importacion, error) {
	query := `
		SELECT id, fecha, kilos_ingresados, merma_kg, costo_total, kilos_restantes, activo, created_at, updated_at
		FROM importaciones WHERE id = $1`
	var i entity.Importacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Fecha, &i.KilosIngresados, &i.MermaKg, &i.CostoTotal,
		&i.KilosRestantes, &i.Activo, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get importación: %w", err)
	}
	return &i, nil
}

// List lotes más recientes primero; soloActivas restringe a activos.
func (r *ImportacionRepo) List(soloActivas bool) ([]*entity.Importacion, error) {
	query := `
		SELECT id, fecha, kilos_ingresados, merma_kg, costo_total, kilos_restantes, activo, created_at, updated_at
		FROM importaciones`
	if soloActivas {
		query += ` WHERE activo`
	}
	query += ` ORDER BY fecha DESC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list importaciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Importacion
	for rows.Next() {
		var i entity.Importacion
		if err := rows.Scan(&i.ID, &i.Fecha, &i.KilosIngresados, &i.MermaKg, &i.CostoTotal,
			&i.KilosRestantes, &i.Activo, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan importación: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza el lote.
func (r *ImportacionRepo) Update(imp *entity.Importacion) error {
	imp.UpdatedAt = time.Now()
	query := `
		UPDATE importaciones
		SET fecha = $2, kilos_ingresados = $3, merma_kg = $4, costo_total = $5,
		    kilos_restantes = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		imp.ID, imp.Fecha, imp.KilosIngresados, imp.MermaKg, imp.CostoTotal,
		imp.KilosRestantes, imp.Activo, imp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update importación: %w", err)
	}
	return nil
}
