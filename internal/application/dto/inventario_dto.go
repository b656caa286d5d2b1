package dto

import "github.com/shopspring/decimal"

// ── Consumo de bolsas ─────────────────────────────────────────────────────────

// ConsumoBolsasRequest rango de fechas opcional (YYYY-MM-DD).
type ConsumoBolsasRequest struct {
	Desde string `query:"desde"`
	Hasta string `query:"hasta"`
}

// ConsumoDetalleDTO fila de detalle: bolsas consumidas por SKU y tipo de
// documento. Las notas de crédito aparecen con signo negativo.
type ConsumoDetalleDTO struct {
	SKU         string `json:"sku"`
	Nombre      string `json:"nombre"`
	TipoDoc     string `json:"tipo_doc"`
	UnidadesSKU int64  `json:"unidades_sku"`
	Bolsas8     int64  `json:"bolsas_8"`
	Bolsas20    int64  `json:"bolsas_20"`
}

// ConsumoBolsasDTO reporte de consumo e inventario de bolsas por formato.
type ConsumoBolsasDTO struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`

	Consumo8  int64 `json:"consumo_8"`
	Consumo20 int64 `json:"consumo_20"`

	StockInicial8  int64 `json:"stock_inicial_8"`
	StockInicial20 int64 `json:"stock_inicial_20"`
	Inventario8    int64 `json:"inventario_8"`
	Inventario20   int64 `json:"inventario_20"`

	Detalle     []ConsumoDetalleDTO `json:"detalle"`
	SKUsSinMapa []string            `json:"skus_sin_mapa"`
}

// ── Proyección de stock ───────────────────────────────────────────────────────

// ProyeccionStockDTO días de stock y fechas de reorden proyectadas.
// DiasStock y las fechas son null cuando el consumo diario es cero.
type ProyeccionStockDTO struct {
	Hoy          string `json:"hoy"`
	Dias         int    `json:"dias"` // ventana usada para la tasa de consumo
	DesdeConsumo string `json:"desde_consumo"`

	KilosIngresadosBruto decimal.Decimal `json:"kilos_ingresados_bruto"`
	MermaTotal           decimal.Decimal `json:"merma_total"`
	KilosIngresadosNeto  decimal.Decimal `json:"kilos_ingresados_neto"`
	KilosVendidosTotal   decimal.Decimal `json:"kilos_vendidos_total"`
	StockKg              decimal.Decimal `json:"stock_kg"`

	KilosVendidosVentana decimal.Decimal `json:"kilos_vendidos_ventana"`
	ConsumoDiario        decimal.Decimal `json:"consumo_diario"`

	DiasStock          *decimal.Decimal `json:"dias_stock"`
	FechaAgotamiento   *string          `json:"fecha_agotamiento"`
	DiasImportacion    int              `json:"dias_importacion"`
	DiasHastaOrdenar   *decimal.Decimal `json:"dias_hasta_ordenar"`
	FechaOrdenSugerida *string          `json:"fecha_orden_sugerida"`
	UmbralReordenDias  int              `json:"umbral_reorden_dias"`
	AlertaReorden      bool             `json:"alerta_reorden"`
}
