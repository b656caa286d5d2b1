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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	producto.ID = uuid.NewString()
	now := time.Now()
	producto.CreatedAt = now
	producto.UpdatedAt = now

	query := `
		INSERT INTO productos (id, sku, nombre, peso_kg, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.SKU, producto.Nombre, producto.PesoKg, producto.Activo,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, sku, nombre, peso_kg, activo, created_at, updated_at FROM productos WHERE id = $1`, id))
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductoRepo) GetBySKU(sku string) (*entity.Producto, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, sku, nombre, peso_kg, activo, created_at, updated_at FROM productos WHERE sku = $1`, sku))
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.SKU, &p.Nombre, &p.PesoKg, &p.Activo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListActivos productos activos ordenados por nombre.
func (r *ProductoRepo) ListActivos() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sku, nombre, peso_kg, activo, created_at, updated_at FROM productos WHERE activo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.SKU, &p.Nombre, &p.PesoKg, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza el producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	producto.UpdatedAt = time.Now()
	query := `
		UPDATE productos SET nombre = $2, peso_kg = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.PesoKg, producto.Activo, producto.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}
