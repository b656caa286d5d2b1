package dto

import "github.com/shopspring/decimal"

// ── Balance mensual ───────────────────────────────────────────────────────────

// PeriodoDTO mes calendario del balance.
type PeriodoDTO struct {
	Anio      int    `json:"anio"`
	Mes       int    `json:"mes"`
	MesNombre string `json:"mes_nombre"`
}

// IngresosDTO sección de ingresos del balance mensual.
// TotalBruto suma todos los documentos, notas de crédito incluidas.
type IngresosDTO struct {
	TotalBruto     decimal.Decimal            `json:"total_bruto"`     // IVA incluido
	TotalNeto      decimal.Decimal            `json:"total_neto"`      // bruto / 1.19
	IVA            decimal.Decimal            `json:"iva"`             // bruto − neto
	KilosVendidos  decimal.Decimal            `json:"kilos_vendidos"`
	NumVentas      int64                      `json:"num_ventas"`
	TicketPromedio decimal.Decimal            `json:"ticket_promedio"` // bruto / num_ventas
	PorCanal       map[string]decimal.Decimal `json:"por_canal"`       // todos los canales, cero si no vendió
}

// CostosDTO sección de costos de mercadería.
type CostosDTO struct {
	CMV             decimal.Decimal `json:"cmv"`               // kilos vendidos × costo promedio
	CostoPromedioKg decimal.Decimal `json:"costo_promedio_kg"` // ponderado sobre importaciones activas
	KilosVendidos   decimal.Decimal `json:"kilos_vendidos"`
}

// GastoTipoDTO agregados de un tipo de gasto.
type GastoTipoDTO struct {
	Neto     decimal.Decimal `json:"neto"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Cantidad int64           `json:"cantidad"`
}

// GastosDTO sección de gastos operacionales.
type GastosDTO struct {
	TotalNeto decimal.Decimal         `json:"total_neto"`
	TotalIVA  decimal.Decimal         `json:"total_iva"`
	Total     decimal.Decimal         `json:"total"`
	PorTipo   map[string]GastoTipoDTO `json:"por_tipo"` // todos los tipos, cero si no hubo
}

// BalanceMensualDTO balance completo de un mes.
type BalanceMensualDTO struct {
	Periodo  PeriodoDTO  `json:"periodo"`
	Ingresos IngresosDTO `json:"ingresos"`
	Costos   CostosDTO   `json:"costos"`
	Gastos   GastosDTO   `json:"gastos"`

	UtilidadBruta       decimal.Decimal `json:"utilidad_bruta"`       // neto − CMV
	UtilidadOperacional decimal.Decimal `json:"utilidad_operacional"` // bruta − gastos neto
	UtilidadNeta        decimal.Decimal `json:"utilidad_neta"`        // operacional − IVA gastos

	MargenBrutoPct       decimal.Decimal `json:"margen_bruto_pct"`
	MargenOperacionalPct decimal.Decimal `json:"margen_operacional_pct"`
	MargenNetoPct        decimal.Decimal `json:"margen_neto_pct"`
}

// ── Balance anual ─────────────────────────────────────────────────────────────

// TotalesAnualesDTO sumas de los 12 meses. Los márgenes se recalculan sobre
// los totales anuales, no promediando los porcentajes mensuales.
type TotalesAnualesDTO struct {
	IngresosBruto decimal.Decimal `json:"ingresos_bruto"`
	IngresosNeto  decimal.Decimal `json:"ingresos_neto"`
	CMV           decimal.Decimal `json:"cmv"`
	Gastos        decimal.Decimal `json:"gastos"`
	GastosNeto    decimal.Decimal `json:"gastos_neto"`
	KilosVendidos decimal.Decimal `json:"kilos_vendidos"`
	NumVentas     int64           `json:"num_ventas"`

	UtilidadBruta       decimal.Decimal `json:"utilidad_bruta"`
	UtilidadOperacional decimal.Decimal `json:"utilidad_operacional"`
	UtilidadNeta        decimal.Decimal `json:"utilidad_neta"`

	MargenBrutoPct       decimal.Decimal `json:"margen_bruto_pct"`
	MargenOperacionalPct decimal.Decimal `json:"margen_operacional_pct"`
	MargenNetoPct        decimal.Decimal `json:"margen_neto_pct"`
}

// PromediosDTO promedios mensuales del año (totales / 12).
type PromediosDTO struct {
	IngresosMensual decimal.Decimal `json:"ingresos_mensual"`
	GastosMensual   decimal.Decimal `json:"gastos_mensual"`
	UtilidadMensual decimal.Decimal `json:"utilidad_mensual"`
	TicketPromedio  decimal.Decimal `json:"ticket_promedio"`
	VentasMensuales int64           `json:"ventas_mensuales"`
}

// BalanceAnualDTO balance de los 12 meses de un año.
type BalanceAnualDTO struct {
	Anio      int                 `json:"anio"`
	Meses     []BalanceMensualDTO `json:"meses"`
	Totales   TotalesAnualesDTO   `json:"totales"`
	Promedios PromediosDTO        `json:"promedios"`
}

// ── Comparativa ───────────────────────────────────────────────────────────────

// CrecimientoDTO tasas de crecimiento entre dos años consecutivos de la
// lista, con el período "anioAnterior-anioActual".
type CrecimientoDTO struct {
	Periodo                string          `json:"periodo"`
	CrecimientoIngresosPct decimal.Decimal `json:"crecimiento_ingresos_pct"`
	CrecimientoUtilidadPct decimal.Decimal `json:"crecimiento_utilidad_pct"`
}

// ComparativaDTO balances anuales en el orden pedido más las tasas de
// crecimiento por par consecutivo. El slice conserva el orden de entrada,
// cosa que un mapa perdería al serializar.
type ComparativaDTO struct {
	Anios       []BalanceAnualDTO `json:"anios"`
	Comparativa []CrecimientoDTO  `json:"comparativa"`
}
