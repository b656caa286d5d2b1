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

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository.
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un gasto nuevo.
func (r *GastoRepo) Create(gasto *entity.GastoOperacional) error {
	gasto.ID = uuid.NewString()
	now := time.Now()
	gasto.CreatedAt = now
	gasto.UpdatedAt = now

	query := `
		INSERT INTO gastos_operacionales (id, fecha, tipo, glosa, monto_neto, aplica_iva, iva, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Fecha, gasto.Tipo, gasto.Glosa, gasto.MontoNeto,
		gasto.AplicaIVA, gasto.IVA, gasto.CreatedAt, gasto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por id; nil si no existe.
func (r *GastoRepo) GetByID(id string) (*entity.GastoOperacional, error) {
	query := `
		SELECT id, fecha, tipo, glosa, monto_neto, aplica_iva, iva, created_at, updated_at
		FROM gastos_operacionales WHERE id = $1`
	var g entity.GastoOperacional
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Fecha, &g.Tipo, &g.Glosa, &g.MontoNeto, &g.AplicaIVA, &g.IVA, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// List devuelve la página filtrada, más recientes primero, y el total.
func (r *GastoRepo) List(filtro repository.GastoFiltro) ([]*entity.GastoOperacional, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filtro.Tipo != "" {
		where += ` AND tipo = ` + arg(filtro.Tipo)
	}
	if filtro.Desde != nil {
		where += ` AND fecha >= ` + arg(*filtro.Desde)
	}
	if filtro.Hasta != nil {
		where += ` AND fecha <= ` + arg(*filtro.Hasta)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM gastos_operacionales`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count gastos: %w", err)
	}

	query := `
		SELECT id, fecha, tipo, glosa, monto_neto, aplica_iva, iva, created_at, updated_at
		FROM gastos_operacionales` + where +
		` ORDER BY fecha DESC, created_at DESC LIMIT ` + arg(filtro.Limit) + ` OFFSET ` + arg(filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()

	var list []*entity.GastoOperacional
	for rows.Next() {
		var g entity.GastoOperacional
		if err := rows.Scan(&g.ID, &g.Fecha, &g.Tipo, &g.Glosa, &g.MontoNeto,
			&g.AplicaIVA, &g.IVA, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, total, rows.Err()
}

// Update actualiza el gasto.
func (r *GastoRepo) Update(gasto *entity.GastoOperacional) error {
	gasto.UpdatedAt = time.Now()
	query := `
		UPDATE gastos_operacionales
		SET fecha = $2, tipo = $3, glosa = $4, monto_neto = $5, aplica_iva = $6, iva = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Fecha, gasto.Tipo, gasto.Glosa, gasto.MontoNeto,
		gasto.AplicaIVA, gasto.IVA, gasto.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	return nil
}

// Delete elimina el gasto.
func (r *GastoRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM gastos_operacionales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	return nil
}
