package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoSKURow unidades vendidas agrupadas por (SKU, nombre, tipo de
// documento) dentro de una ventana de fechas.
type ConsumoSKURow struct {
	SKU           string
	Nombre        string
	TipoDocumento string
	Unidades      int64
}

// ImportacionesStock agregados globales de importaciones para la proyección.
// El neto disponible se deriva restando merma y kilos ya vendidos.
type ImportacionesStock struct {
	KilosIngresadosBruto decimal.Decimal
	MermaTotal           decimal.Decimal
}

// InventarioRepository consultas de solo lectura para consumo y proyección de stock.
type InventarioRepository interface {
	// ConsumoPorSKU líneas de venta del período [desde, hasta] agrupadas por
	// SKU, nombre de producto y tipo de documento.
	ConsumoPorSKU(ctx context.Context, desde, hasta time.Time) ([]ConsumoSKURow, error)

	// ResumenImportaciones agregados de todas las importaciones registradas.
	ResumenImportaciones(ctx context.Context) (ImportacionesStock, error)

	// KilosVendidos kilos vendidos (cantidad × peso del producto) excluyendo
	// notas de crédito. Con desde nil abarca todo el histórico.
	KilosVendidos(ctx context.Context, desde *time.Time) (decimal.Decimal, error)
}
