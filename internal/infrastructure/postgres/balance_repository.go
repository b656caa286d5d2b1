package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo consultas agregadas del balance contable. Solo lectura.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// VentasResumen monto bruto, kilos y número de ventas en [desde, hasta).
// Suma todos los documentos, notas de crédito incluidas.
func (r *BalanceRepo) VentasResumen(ctx context.Context, desde, hasta time.Time) (repository.VentasResumen, error) {
	query := `
		SELECT COALESCE(SUM(monto_total), 0), COALESCE(SUM(kilos_total), 0), COUNT(*)
		FROM ventas
		WHERE fecha >= $1 AND fecha < $2`
	var res repository.VentasResumen
	err := r.q.QueryRow(ctx, query, desde, hasta).Scan(&res.MontoBruto, &res.Kilos, &res.NumVentas)
	if err != nil {
		return repository.VentasResumen{}, fmt.Errorf("ventas resumen: %w", err)
	}
	return res, nil
}

// VentasPorCanal monto bruto por canal en [desde, hasta).
func (r *BalanceRepo) VentasPorCanal(ctx context.Context, desde, hasta time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT canal, COALESCE(SUM(monto_total), 0)
		FROM ventas
		WHERE fecha >= $1 AND fecha < $2
		GROUP BY canal`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por canal: %w", err)
	}
	defer rows.Close()

	porCanal := make(map[string]decimal.Decimal)
	for rows.Next() {
		var canal string
		var monto decimal.Decimal
		if err := rows.Scan(&canal, &monto); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		porCanal[canal] = monto
	}
	return porCanal, rows.Err()
}

// ImportacionesActivas kilos netos y costo total de todas las importaciones
// activas con fecha <= hasta. Es el acumulado histórico global que alimenta
// el costo promedio ponderado, no se acota al mes.
func (r *BalanceRepo) ImportacionesActivas(ctx context.Context, hasta time.Time) (repository.ImportacionesResumen, error) {
	query := `
		SELECT COALESCE(SUM(kilos_ingresados - merma_kg), 0), COALESCE(SUM(costo_total), 0)
		FROM importaciones
		WHERE activo AND fecha <= $1`
	var res repository.ImportacionesResumen
	err := r.q.QueryRow(ctx, query, hasta).Scan(&res.KilosNetos, &res.CostoTotal)
	if err != nil {
		return repository.ImportacionesResumen{}, fmt.Errorf("importaciones activas: %w", err)
	}
	return res, nil
}

// GastosPorTipo agregados de gastos por tipo en [desde, hasta). El IVA solo
// cuenta en las filas con aplica_iva.
func (r *BalanceRepo) GastosPorTipo(ctx context.Context, desde, hasta time.Time) (map[string]repository.GastoTipoAgg, error) {
	query := `
		SELECT tipo,
		       COALESCE(SUM(monto_neto), 0),
		       COALESCE(SUM(CASE WHEN aplica_iva THEN iva ELSE 0 END), 0),
		       COUNT(*)
		FROM gastos_operacionales
		WHERE fecha >= $1 AND fecha < $2
		GROUP BY tipo`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("gastos por tipo: %w", err)
	}
	defer rows.Close()

	porTipo := make(map[string]repository.GastoTipoAgg)
	for rows.Next() {
		var tipo string
		var agg repository.GastoTipoAgg
		if err := rows.Scan(&tipo, &agg.Neto, &agg.IVA, &agg.Cantidad); err != nil {
			return nil, fmt.Errorf("scan gasto tipo: %w", err)
		}
		porTipo[tipo] = agg
	}
	return porTipo, rows.Err()
}
