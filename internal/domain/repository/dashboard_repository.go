package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// KPIVentas indicadores del período. Ingresos y NumVentas excluyen notas de
// crédito; Kilos suma todos los documentos (comportamiento observado del
// dashboard, distinto del balance contable).
type KPIVentas struct {
	Ingresos  decimal.Decimal
	Kilos     decimal.Decimal
	NumVentas int64
}

// SerieMensualRow agregados de un mes calendario.
type SerieMensualRow struct {
	Mes      time.Time // primer día del mes
	Ventas   int64
	Kilos    decimal.Decimal
	Ingresos decimal.Decimal // excluye notas de crédito
}

// CanalIngresosRow ingresos (sin notas de crédito) y ventas por canal.
type CanalIngresosRow struct {
	Canal    string
	Ventas   int64
	Ingresos decimal.Decimal
}

// ProductoKilosRow kilos vendidos por producto (sin notas de crédito).
type ProductoKilosRow struct {
	Nombre string
	Kilos  decimal.Decimal
}

// VentaDiariaRow ventas de un día (sin notas de crédito).
type VentaDiariaRow struct {
	Dia      time.Time
	Cantidad int64
	Valor    decimal.Decimal
}

// ResumenMensualRow fila del resumen mensual de ventas.
type ResumenMensualRow struct {
	Mes            time.Time // primer día del mes
	Kilos          decimal.Decimal
	VentasBrutas   decimal.Decimal // sin notas de crédito
	NotasCredito   decimal.Decimal // solo notas de crédito
	CantidadVentas int64
}

// DashboardRepository consultas agregadas de solo lectura para el dashboard
// y el resumen mensual. Ventanas inclusivas [desde, hasta] sobre fechas.
type DashboardRepository interface {
	KPIs(ctx context.Context, desde, hasta time.Time) (KPIVentas, error)
	SerieMensual(ctx context.Context, desde, hasta time.Time) ([]SerieMensualRow, error)
	IngresosPorCanal(ctx context.Context, desde, hasta time.Time) ([]CanalIngresosRow, error)
	TopProductos(ctx context.Context, desde, hasta time.Time, limit int) ([]ProductoKilosRow, error)
	VentasDiarias(ctx context.Context, desde, hasta time.Time) ([]VentaDiariaRow, error)
	// PrimerasCompras ventas diarias de clientes cuya primera compra (sin
	// notas de crédito) cae ese mismo día: clientes nuevos del período.
	PrimerasCompras(ctx context.Context, desde, hasta time.Time) ([]VentaDiariaRow, error)

	// ResumenVentasMensual filas por mes del rango, más recientes primero.
	ResumenVentasMensual(ctx context.Context, desde, hasta time.Time) ([]ResumenMensualRow, error)
	// GastosPorMes gasto neto agrupado por primer día del mes.
	GastosPorMes(ctx context.Context, desde, hasta time.Time) (map[time.Time]decimal.Decimal, error)
	// UltimaImportacionActiva la importación activa más reciente; nil si no hay.
	UltimaImportacionActiva(ctx context.Context) (*entity.Importacion, error)
}
