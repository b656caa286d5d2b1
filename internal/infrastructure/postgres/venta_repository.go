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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una venta nueva, asignando id y timestamps.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	venta.ID = uuid.NewString()
	now := time.Now()
	venta.CreatedAt = now
	venta.UpdatedAt = now

	query := `
		INSERT INTO ventas (id, cliente_id, fecha, tipo_documento, canal, monto_total, kilos_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, venta.Fecha, venta.TipoDocumento, venta.Canal,
		venta.MontoTotal, venta.KilosTotal, venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id; nil si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT id, cliente_id, fecha, tipo_documento, canal, monto_total, kilos_total, created_at, updated_at
		FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.Fecha, &v.TipoDocumento, &v.Canal,
		&v.MontoTotal, &v.KilosTotal, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// List devuelve la página filtrada con el nombre del cliente resuelto, más el
// total de filas que calzan con el filtro.
func (r *VentaRepo) List(filtro repository.VentaFiltro) ([]repository.VentaConCliente, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filtro.TipoDocumento != "" {
		where += ` AND v.tipo_documento = ` + arg(filtro.TipoDocumento)
	}
	if filtro.Canal != "" {
		where += ` AND v.canal = ` + arg(filtro.Canal)
	}
	if filtro.MinKilos.IsPositive() {
		where += ` AND v.kilos_total >= ` + arg(filtro.MinKilos)
	}
	if filtro.MaxKilos.IsPositive() {
		where += ` AND v.kilos_total <= ` + arg(filtro.MaxKilos)
	}
	if filtro.BuscarCliente != "" {
		where += ` AND c.nombre ILIKE ` + arg("%"+filtro.BuscarCliente+"%")
	}

	base := ` FROM ventas v JOIN clientes c ON c.id = v.cliente_id` + where

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*)`+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ventas: %w", err)
	}

	orden := ` ORDER BY v.fecha DESC, v.created_at DESC`
	if filtro.OrdenID == "asc" {
		orden = ` ORDER BY v.fecha ASC, v.created_at ASC`
	}

	query := `
		SELECT v.id, v.cliente_id, v.fecha, v.tipo_documento, v.canal, v.monto_total, v.kilos_total,
		       v.created_at, v.updated_at, c.nombre` +
		base + orden + ` LIMIT ` + arg(filtro.Limit) + ` OFFSET ` + arg(filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []repository.VentaConCliente
	for rows.Next() {
		var v repository.VentaConCliente
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Fecha, &v.TipoDocumento, &v.Canal,
			&v.MontoTotal, &v.KilosTotal, &v.CreatedAt, &v.UpdatedAt, &v.ClienteNombre); err != nil {
			return nil, 0, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// Update actualiza la venta.
func (r *VentaRepo) Update(venta *entity.Venta) error {
	venta.UpdatedAt = time.Now()
	query := `
		UPDATE ventas
		SET cliente_id = $2, fecha = $3, tipo_documento = $4, canal = $5,
		    monto_total = $6, kilos_total = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, venta.Fecha, venta.TipoDocumento, venta.Canal,
		venta.MontoTotal, venta.KilosTotal, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// Delete elimina la venta; las líneas caen por cascada.
func (r *VentaRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// ItemsByVenta lista las líneas de la venta con su producto, en orden de inserción.
func (r *VentaRepo) ItemsByVenta(ventaID string) ([]repository.ItemConProducto, error) {
	query := `
		SELECT i.id, i.venta_id, i.producto_id, i.cantidad, i.created_at, p.sku, p.nombre, p.peso_kg
		FROM venta_items i
		JOIN productos p ON p.id = i.producto_id
		WHERE i.venta_id = $1
		ORDER BY i.created_at`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list venta items: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemConProducto
	for rows.Next() {
		var item repository.ItemConProducto
		if err := rows.Scan(&item.ID, &item.VentaID, &item.ProductoID, &item.Cantidad,
			&item.CreatedAt, &item.SKU, &item.ProductoNombre, &item.PesoKg); err != nil {
			return nil, fmt.Errorf("scan venta item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// CreateItem persiste una línea nueva.
func (r *VentaRepo) CreateItem(item *entity.VentaItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO venta_items (id, venta_id, producto_id, cantidad, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VentaID, item.ProductoID, item.Cantidad, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert venta item: %w", err)
	}
	return nil
}

// GetItem obtiene una línea por id; nil si no existe.
func (r *VentaRepo) GetItem(itemID string) (*entity.VentaItem, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, created_at
		FROM venta_items WHERE id = $1`
	var item entity.VentaItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&item.ID, &item.VentaID, &item.ProductoID, &item.Cantidad, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta item: %w", err)
	}
	return &item, nil
}

// DeleteItem elimina una línea.
func (r *VentaRepo) DeleteItem(itemID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM venta_items WHERE id = $1`, itemID); err != nil {
		return fmt.Errorf("delete venta item: %w", err)
	}
	return nil
}
