package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VentasResumen agregados de ventas en una ventana de fechas.
// Incluye TODOS los documentos, notas de crédito también: el balance contable
// suma lo facturado tal cual (el dashboard, en cambio, las excluye).
type VentasResumen struct {
	MontoBruto decimal.Decimal // suma de monto_total, IVA incluido
	Kilos      decimal.Decimal
	NumVentas  int64
}

// ImportacionesResumen suma de kilos netos (ingresados − merma) y costo total
// de las importaciones activas hasta una fecha.
type ImportacionesResumen struct {
	KilosNetos decimal.Decimal
	CostoTotal decimal.Decimal
}

// GastoTipoAgg agregados de gastos de un tipo: neto, IVA (solo filas con
// aplica_iva) y cantidad de registros.
type GastoTipoAgg struct {
	Neto     decimal.Decimal
	IVA      decimal.Decimal
	Cantidad int64
}

// BalanceRepository consultas agregadas de solo lectura para el balance.
// Las ventanas son semiabiertas: [desde, hasta).
type BalanceRepository interface {
	// VentasResumen monto bruto, kilos y número de ventas del período.
	VentasResumen(ctx context.Context, desde, hasta time.Time) (VentasResumen, error)

	// VentasPorCanal monto bruto por canal en el período. Canales sin ventas
	// no aparecen en el mapa; el caso de uso los completa en cero.
	VentasPorCanal(ctx context.Context, desde, hasta time.Time) (map[string]decimal.Decimal, error)

	// ImportacionesActivas suma kilos netos y costo de TODAS las importaciones
	// activas con fecha <= hasta (histórico global, no acotado al mes).
	ImportacionesActivas(ctx context.Context, hasta time.Time) (ImportacionesResumen, error)

	// GastosPorTipo agregados de gastos por tipo en el período. Tipos sin
	// gastos no aparecen en el mapa.
	GastosPorTipo(ctx context.Context, desde, hasta time.Time) (map[string]GastoTipoAgg, error)
}
