package dto

import "github.com/shopspring/decimal"

// DashboardRequest filtros del dashboard. Dias tiene prioridad sobre
// Desde/Hasta; sin parámetros la ventana es [inicio de mes − 180d, hoy].
type DashboardRequest struct {
	Dias      string `query:"dias"`
	Desde     string `query:"desde"`
	Hasta     string `query:"hasta"`
	MesDiario string `query:"mes_diario"` // YYYY-MM del detalle diario
}

// SerieMensualDTO punto de la serie mensual.
type SerieMensualDTO struct {
	Mes      string          `json:"mes"` // MM-YYYY
	Ventas   int64           `json:"ventas"`
	Kilos    decimal.Decimal `json:"kilos"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// CanalIngresosDTO ingresos por canal, ordenados de mayor a menor.
type CanalIngresosDTO struct {
	Canal    string          `json:"canal"`
	Ventas   int64           `json:"ventas"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// ProductoKilosDTO kilos vendidos por producto.
type ProductoKilosDTO struct {
	Nombre string          `json:"nombre"`
	Kilos  decimal.Decimal `json:"kilos"`
}

// VentaDiariaDTO ventas de un día del mes seleccionado. Los días sin ventas
// aparecen con cantidad y valor cero.
type VentaDiariaDTO struct {
	Dia      string          `json:"dia"` // DD/MM
	Cantidad int64           `json:"cantidad"`
	Valor    decimal.Decimal `json:"valor"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`

	// KPIs: los ingresos y el número de ventas excluyen notas de crédito;
	// los kilos incluyen todos los documentos.
	KPIIngresos decimal.Decimal `json:"kpi_ingresos"`
	KPIKilos    decimal.Decimal `json:"kpi_kilos"`
	KPINVentas  int64           `json:"kpi_n_ventas"`
	KPITicket   decimal.Decimal `json:"kpi_ticket"`

	SerieMensual []SerieMensualDTO  `json:"serie_mensual"`
	PorCanal     []CanalIngresosDTO `json:"por_canal"`
	TopProductos []ProductoKilosDTO `json:"top_productos"`

	// Detalle diario del mes seleccionado
	MesSeleccionado  string           `json:"mes_seleccionado"` // YYYY-MM
	VentasDiarias    []VentaDiariaDTO `json:"ventas_diarias"`
	TotalCantidadMes int64            `json:"total_cantidad_mes"`
	TotalValorMes    decimal.Decimal  `json:"total_valor_mes"`

	// Primeras compras (clientes nuevos) del mes seleccionado
	PrimerasCompras       []VentaDiariaDTO `json:"primeras_compras"`
	TotalPrimerasCantidad int64            `json:"total_primeras_cantidad"`
	TotalPrimerasValor    decimal.Decimal  `json:"total_primeras_valor"`
}

// ── Resumen mensual ───────────────────────────────────────────────────────────

// ResumenMensualRequest rango opcional (YYYY-MM-DD).
type ResumenMensualRequest struct {
	Desde string `query:"desde"`
	Hasta string `query:"hasta"`
}

// ResumenFilaDTO fila mensual del resumen: ventas netas de notas de crédito,
// costo estimado al costo/kg de la última importación activa y utilidad.
type ResumenFilaDTO struct {
	Mes            string          `json:"mes"` // YYYY-MM
	Kilos          decimal.Decimal `json:"kilos"`
	VentasBrutas   decimal.Decimal `json:"ventas_brutas"`
	NotasCredito   decimal.Decimal `json:"notas_credito"`
	VentasNetas    decimal.Decimal `json:"ventas_netas"`
	CantidadVentas int64           `json:"cantidad_ventas"`
	Costo          decimal.Decimal `json:"costo"`
	MargenBruto    decimal.Decimal `json:"margen_bruto"`
	Gastos         decimal.Decimal `json:"gastos"`
	Utilidad       decimal.Decimal `json:"utilidad"`
}

// ResumenMensualDTO respuesta de GET /api/resumen-mensual.
type ResumenMensualDTO struct {
	Desde      string           `json:"desde"`
	Hasta      string           `json:"hasta"`
	CostoPorKg decimal.Decimal  `json:"costo_por_kg"`
	Filas      []ResumenFilaDTO `json:"filas"`
	Totales    ResumenFilaDTO   `json:"totales"`
}
