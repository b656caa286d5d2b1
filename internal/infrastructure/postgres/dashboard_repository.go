package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del dashboard comercial. Solo lectura.
// Las ventanas son inclusivas [desde, hasta] sobre fechas.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// KPIs indicadores del período. Ingresos y conteo excluyen notas de crédito;
// los kilos suman todos los documentos.
func (r *DashboardRepo) KPIs(ctx context.Context, desde, hasta time.Time) (repository.KPIVentas, error) {
	query := `
		SELECT COALESCE(SUM(monto_total) FILTER (WHERE tipo_documento <> 'nota_credito'), 0),
		       COALESCE(SUM(kilos_total), 0),
		       COUNT(*) FILTER (WHERE tipo_documento <> 'nota_credito')
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2`
	var k repository.KPIVentas
	if err := r.q.QueryRow(ctx, query, desde, hasta).Scan(&k.Ingresos, &k.Kilos, &k.NumVentas); err != nil {
		return repository.KPIVentas{}, fmt.Errorf("kpis: %w", err)
	}
	return k, nil
}

// SerieMensual agregados por mes calendario del período, en orden cronológico.
func (r *DashboardRepo) SerieMensual(ctx context.Context, desde, hasta time.Time) ([]repository.SerieMensualRow, error) {
	query := `
		SELECT date_trunc('month', fecha)::date AS mes,
		       COUNT(*) FILTER (WHERE tipo_documento <> 'nota_credito'),
		       COALESCE(SUM(kilos_total), 0),
		       COALESCE(SUM(monto_total) FILTER (WHERE tipo_documento <> 'nota_credito'), 0)
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2
		GROUP BY mes
		ORDER BY mes`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("serie mensual: %w", err)
	}
	defer rows.Close()

	var list []repository.SerieMensualRow
	for rows.Next() {
		var row repository.SerieMensualRow
		var mes time.Time
		if err := rows.Scan(&mes, &row.Ventas, &row.Kilos, &row.Ingresos); err != nil {
			return nil, fmt.Errorf("scan serie: %w", err)
		}
		row.Mes = primerDiaMes(mes)
		list = append(list, row)
	}
	return list, rows.Err()
}

// IngresosPorCanal ingresos y ventas por canal, de mayor a menor.
func (r *DashboardRepo) IngresosPorCanal(ctx context.Context, desde, hasta time.Time) ([]repository.CanalIngresosRow, error) {
	query := `
		SELECT canal, COUNT(*), COALESCE(SUM(monto_total), 0) AS ingresos
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2 AND tipo_documento <> 'nota_credito'
		GROUP BY canal
		ORDER BY ingresos DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ingresos por canal: %w", err)
	}
	defer rows.Close()

	var list []repository.CanalIngresosRow
	for rows.Next() {
		var row repository.CanalIngresosRow
		if err := rows.Scan(&row.Canal, &row.Ventas, &row.Ingresos); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopProductos kilos vendidos por producto, de mayor a menor.
func (r *DashboardRepo) TopProductos(ctx context.Context, desde, hasta time.Time, limit int) ([]repository.ProductoKilosRow, error) {
	query := `
		SELECT p.nombre, COALESCE(SUM(i.cantidad * p.peso_kg), 0) AS kilos
		FROM venta_items i
		JOIN ventas v ON v.id = i.venta_id
		JOIN productos p ON p.id = i.producto_id
		WHERE v.fecha >= $1 AND v.fecha <= $2 AND v.tipo_documento <> 'nota_credito'
		GROUP BY p.nombre
		ORDER BY kilos DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductoKilosRow
	for rows.Next() {
		var row repository.ProductoKilosRow
		if err := rows.Scan(&row.Nombre, &row.Kilos); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// VentasDiarias ventas por día del período, sin notas de crédito.
func (r *DashboardRepo) VentasDiarias(ctx context.Context, desde, hasta time.Time) ([]repository.VentaDiariaRow, error) {
	query := `
		SELECT fecha::date, COUNT(*), COALESCE(SUM(monto_total), 0)
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2 AND tipo_documento <> 'nota_credito'
		GROUP BY fecha::date
		ORDER BY fecha::date`
	return r.queryDiarias(ctx, query, desde, hasta)
}

// PrimerasCompras ventas diarias de clientes cuya primera compra cae ese
// mismo día: mide la entrada de clientes nuevos.
func (r *DashboardRepo) PrimerasCompras(ctx context.Context, desde, hasta time.Time) ([]repository.VentaDiariaRow, error) {
	query := `
		WITH primeras AS (
			SELECT cliente_id, MIN(fecha::date) AS primera
			FROM ventas
			WHERE tipo_documento <> 'nota_credito'
			GROUP BY cliente_id
		)
		SELECT v.fecha::date, COUNT(DISTINCT v.cliente_id), COALESCE(SUM(v.monto_total), 0)
		FROM ventas v
		JOIN primeras p ON p.cliente_id = v.cliente_id AND p.primera = v.fecha::date
		WHERE v.fecha >= $1 AND v.fecha <= $2 AND v.tipo_documento <> 'nota_credito'
		GROUP BY v.fecha::date
		ORDER BY v.fecha::date`
	return r.queryDiarias(ctx, query, desde, hasta)
}

func (r *DashboardRepo) queryDiarias(ctx context.Context, query string, desde, hasta time.Time) ([]repository.VentaDiariaRow, error) {
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas diarias: %w", err)
	}
	defer rows.Close()

	var list []repository.VentaDiariaRow
	for rows.Next() {
		var row repository.VentaDiariaRow
		if err := rows.Scan(&row.Dia, &row.Cantidad, &row.Valor); err != nil {
			return nil, fmt.Errorf("scan día: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ResumenVentasMensual filas por mes del rango [desde, hasta]. Los kilos y el
// conteo de documentos incluyen las notas de crédito tal cual se registraron;
// solo los montos se separan entre ventas brutas y notas de crédito.
func (r *DashboardRepo) ResumenVentasMensual(ctx context.Context, desde, hasta time.Time) ([]repository.ResumenMensualRow, error) {
	query := `
		SELECT date_trunc('month', fecha)::date AS mes,
		       COALESCE(SUM(kilos_total), 0),
		       COALESCE(SUM(monto_total) FILTER (WHERE tipo_documento <> 'nota_credito'), 0),
		       COALESCE(SUM(monto_total) FILTER (WHERE tipo_documento = 'nota_credito'), 0),
		       COUNT(*)
		FROM ventas
		WHERE fecha >= $1 AND fecha <= $2
		GROUP BY mes
		ORDER BY mes DESC`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("resumen mensual: %w", err)
	}
	defer rows.Close()

	var list []repository.ResumenMensualRow
	for rows.Next() {
		var row repository.ResumenMensualRow
		var mes time.Time
		if err := rows.Scan(&mes, &row.Kilos, &row.VentasBrutas, &row.NotasCredito, &row.CantidadVentas); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		row.Mes = primerDiaMes(mes)
		list = append(list, row)
	}
	return list, rows.Err()
}

// GastosPorMes gasto total (neto + IVA) agrupado por primer día del mes.
func (r *DashboardRepo) GastosPorMes(ctx context.Context, desde, hasta time.Time) (map[time.Time]decimal.Decimal, error) {
	query := `
		SELECT date_trunc('month', fecha)::date AS mes, COALESCE(SUM(monto_neto + iva), 0)
		FROM gastos_operacionales
		WHERE fecha >= $1 AND fecha <= $2
		GROUP BY mes`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("gastos por mes: %w", err)
	}
	defer rows.Close()

	porMes := make(map[time.Time]decimal.Decimal)
	for rows.Next() {
		var mes time.Time
		var total decimal.Decimal
		if err := rows.Scan(&mes, &total); err != nil {
			return nil, fmt.Errorf("scan gasto mes: %w", err)
		}
		porMes[primerDiaMes(mes)] = total
	}
	return porMes, rows.Err()
}

// UltimaImportacionActiva la importación activa más reciente; nil si no hay.
func (r *DashboardRepo) UltimaImportacionActiva(ctx context.Context) (*entity.Importacion, error) {
	query := `
		SELECT id, fecha, kilos_ingresados, merma_kg, costo_total, kilos_restantes, activo, created_at, updated_at
		FROM importaciones
		WHERE activo
		ORDER BY fecha DESC
		LIMIT 1`
	var i entity.Importacion
	err := r.q.QueryRow(ctx, query).Scan(
		&i.ID, &i.Fecha, &i.KilosIngresados, &i.MermaKg, &i.CostoTotal,
		&i.KilosRestantes, &i.Activo, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("última importación: %w", err)
	}
	return &i, nil
}

// primerDiaMes normaliza la clave de mes a medianoche local, para que las
// comparaciones y las búsquedas en mapas no dependan de la zona que entregó
// la base.
func primerDiaMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}
