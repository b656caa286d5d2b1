package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo consultas de consumo de bolsas y proyección de stock.
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// ConsumoPorSKU líneas de venta de [desde, hasta] agrupadas por SKU, nombre
// de producto y tipo de documento.
func (r *InventarioRepo) ConsumoPorSKU(ctx context.Context, desde, hasta time.Time) ([]repository.ConsumoSKURow, error) {
	query := `
		SELECT p.sku, p.nombre, v.tipo_documento, COALESCE(SUM(i.cantidad), 0)
		FROM venta_items i
		JOIN ventas v ON v.id = i.venta_id
		JOIN productos p ON p.id = i.producto_id
		WHERE v.fecha >= $1 AND v.fecha <= $2
		GROUP BY p.sku, p.nombre, v.tipo_documento`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("consumo por sku: %w", err)
	}
	defer rows.Close()

	var list []repository.ConsumoSKURow
	for rows.Next() {
		var row repository.ConsumoSKURow
		if err := rows.Scan(&row.SKU, &row.Nombre, &row.TipoDocumento, &row.Unidades); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ResumenImportaciones kilos brutos y merma de todas las importaciones registradas.
func (r *InventarioRepo) ResumenImportaciones(ctx context.Context) (repository.ImportacionesStock, error) {
	query := `
		SELECT COALESCE(SUM(kilos_ingresados), 0), COALESCE(SUM(merma_kg), 0)
		FROM importaciones`
	var res repository.ImportacionesStock
	err := r.q.QueryRow(ctx, query).Scan(&res.KilosIngresadosBruto, &res.MermaTotal)
	if err != nil {
		return repository.ImportacionesStock{}, fmt.Errorf("resumen importaciones: %w", err)
	}
	return res, nil
}

// KilosVendidos kilos vendidos excluyendo notas de crédito, calculados por
// ítem como cantidad por peso del producto. Con desde nil abarca todo el
// histórico.
func (r *InventarioRepo) KilosVendidos(ctx context.Context, desde *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(i.cantidad * p.peso_kg), 0)
		FROM venta_items i
		JOIN ventas v ON v.id = i.venta_id
		JOIN productos p ON p.id = i.producto_id
		WHERE v.tipo_documento <> 'nota_credito'`
	args := []any{}
	if desde != nil {
		query += ` AND v.fecha >= $1`
		args = append(args, *desde)
	}

	var kilos decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&kilos); err != nil {
		return decimal.Decimal{}, fmt.Errorf("kilos vendidos: %w", err)
	}
	return kilos, nil
}
