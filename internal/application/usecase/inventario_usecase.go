package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain/inventario"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
	"github.com/jorge052011/crm-distribuidora/pkg/config"
)

const formatoFecha = "2006-01-02"

// InventarioUseCase reporte de consumo de bolsas y proyección de stock.
// Los stocks iniciales y el lead time de importación vienen de configuración:
// son fotos de la operación, no datos derivables.
type InventarioUseCase struct {
	repo repository.InventarioRepository
	cfg  config.InventarioConfig
	hoy  func() time.Time
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.InventarioRepository, cfg config.InventarioConfig) *InventarioUseCase {
	return &InventarioUseCase{repo: repo, cfg: cfg, hoy: time.Now}
}

// ConsumoBolsas calcula el consumo de bolsas de envasado en la ventana dada.
// Sin fechas, la ventana por defecto es [primer día del mes − 180 días, hoy].
func (uc *InventarioUseCase) ConsumoBolsas(ctx context.Context, desde, hasta *time.Time) (*dto.ConsumoBolsasDTO, error) {
	hoy := uc.hoy()
	if hasta == nil {
		hasta = &hoy
	}
	if desde == nil {
		primero := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.Local)
		d := primero.AddDate(0, 0, -180)
		desde = &d
	}

	filas, err := uc.repo.ConsumoPorSKU(ctx, *desde, *hasta)
	if err != nil {
		return nil, fmt.Errorf("inventario: consumo por sku: %w", err)
	}

	lineas := make([]inventario.LineaVenta, len(filas))
	for i, f := range filas {
		lineas[i] = inventario.LineaVenta{
			SKU:           f.SKU,
			Nombre:        f.Nombre,
			TipoDocumento: f.TipoDocumento,
			Unidades:      f.Unidades,
		}
	}

	r := inventario.CalcularConsumo(lineas, int64(uc.cfg.StockInicialBolsas8), int64(uc.cfg.StockInicialBolsas20))

	detalle := make([]dto.ConsumoDetalleDTO, len(r.Detalle))
	for i, d := range r.Detalle {
		detalle[i] = dto.ConsumoDetalleDTO{
			SKU:         d.SKU,
			Nombre:      d.Nombre,
			TipoDoc:     d.TipoDocumento,
			UnidadesSKU: d.Unidades,
			Bolsas8:     d.Bolsas8,
			Bolsas20:    d.Bolsas20,
		}
	}

	return &dto.ConsumoBolsasDTO{
		Desde:          desde.Format(formatoFecha),
		Hasta:          hasta.Format(formatoFecha),
		Consumo8:       r.Consumo8,
		Consumo20:      r.Consumo20,
		StockInicial8:  int64(uc.cfg.StockInicialBolsas8),
		StockInicial20: int64(uc.cfg.StockInicialBolsas20),
		Inventario8:    r.Stock8,
		Inventario20:   r.Stock20,
		Detalle:        detalle,
		SKUsSinMapa:    r.SKUsSinMapear,
	}, nil
}

// ProyeccionStock proyecta los días de stock disponible y la fecha
// sugerida para ordenar la próxima importación. dias define la ventana usada
// para la tasa de venta diaria; con 0 se usa la ventana configurada.
func (uc *InventarioUseCase) ProyeccionStock(ctx context.Context, dias int) (*dto.ProyeccionStockDTO, error) {
	if dias <= 0 {
		dias = uc.cfg.DiasVentanaConsumo
	}
	hoy := uc.hoy()
	desdeVentana := hoy.AddDate(0, 0, -dias)

	importaciones, err := uc.repo.ResumenImportaciones(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: resumen importaciones: %w", err)
	}
	vendidosTotal, err := uc.repo.KilosVendidos(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("inventario: kilos vendidos históricos: %w", err)
	}
	vendidosVentana, err := uc.repo.KilosVendidos(ctx, &desdeVentana)
	if err != nil {
		return nil, fmt.Errorf("inventario: kilos vendidos en ventana: %w", err)
	}

	kilosNeto := importaciones.KilosIngresadosBruto.Sub(importaciones.MermaTotal)
	stockKg := kilosNeto.Sub(vendidosTotal).Round(2)
	consumoDiario := vendidosVentana.Div(decimal.NewFromInt(int64(dias))).Round(2)

	proyeccion := inventario.ProyectarStock(stockKg, consumoDiario)

	out := &dto.ProyeccionStockDTO{
		Hoy:                  hoy.Format(formatoFecha),
		Dias:                 dias,
		DesdeConsumo:         desdeVentana.Format(formatoFecha),
		KilosIngresadosBruto: importaciones.KilosIngresadosBruto,
		MermaTotal:           importaciones.MermaTotal,
		KilosIngresadosNeto:  kilosNeto,
		KilosVendidosTotal:   vendidosTotal,
		StockKg:              stockKg,
		KilosVendidosVentana: vendidosVentana,
		ConsumoDiario:        consumoDiario,
		DiasImportacion:      uc.cfg.DiasLeadImportacion,
		UmbralReordenDias:    uc.cfg.DiasLeadImportacion,
	}

	if proyeccion.DiasStock == nil {
		return out, nil
	}

	diasStock := *proyeccion.DiasStock
	out.DiasStock = &diasStock

	lead := decimal.NewFromInt(int64(uc.cfg.DiasLeadImportacion))
	out.AlertaReorden = diasStock.LessThanOrEqual(lead)

	agotamiento := hoy.AddDate(0, 0, int(diasStock.IntPart())).Format(formatoFecha)
	out.FechaAgotamiento = &agotamiento

	// se ordena con el lead time de anticipación al agotamiento; si ya es
	// tarde, la fecha sugerida es hoy
	margen := diasStock.Sub(lead)
	out.DiasHastaOrdenar = &margen
	sugerida := hoy
	if margen.IsPositive() {
		sugerida = hoy.AddDate(0, 0, int(margen.IntPart()))
	}
	fechaSugerida := sugerida.Format(formatoFecha)
	out.FechaOrdenSugerida = &fechaSugerida

	return out, nil
}
