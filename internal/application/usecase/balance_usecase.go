// Package usecase contiene los casos de uso de la aplicación: balance
// contable, inventario, dashboard y CRUD.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var (
	cien       = decimal.NewFromInt(100)
	doce       = decimal.NewFromInt(12)
	divisorIVA = decimal.RequireFromString("1.19") // IVA chileno 19%
)

// mesesES nombres de mes para las etiquetas de período.
var mesesES = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// BalanceUseCase calcula el balance mensual, anual y la comparativa entre
// años a partir de los agregados del repositorio.
//
// Todo el redondeo monetario es a 2 decimales, mitad lejos de cero, y se
// aplica paso a paso (no solo al final): los totales anuales suman valores
// mensuales ya redondeados, igual que el sistema contable de referencia.
type BalanceUseCase struct {
	repo repository.BalanceRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(repo repository.BalanceRepository) *BalanceUseCase {
	return &BalanceUseCase{repo: repo}
}

// CalcularMensual calcula el balance completo del mes indicado.
// El llamador garantiza mes ∈ [1,12]; diciembre cierra en enero del año siguiente.
// Un período sin datos produce un balance en cero, nunca un error.
func (uc *BalanceUseCase) CalcularMensual(ctx context.Context, anio, mes int) (*dto.BalanceMensualDTO, error) {
	desde, hasta := ventanaMes(anio, mes)

	ventas, err := uc.repo.VentasResumen(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("balance: ventas del período: %w", err)
	}
	porCanal, err := uc.repo.VentasPorCanal(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("balance: ventas por canal: %w", err)
	}
	importaciones, err := uc.repo.ImportacionesActivas(ctx, hasta)
	if err != nil {
		return nil, fmt.Errorf("balance: importaciones activas: %w", err)
	}
	gastos, err := uc.repo.GastosPorTipo(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("balance: gastos del período: %w", err)
	}

	return construirBalanceMensual(anio, mes, ventas, porCanal, importaciones, gastos), nil
}

// CalcularAnual calcula los 12 balances mensuales del año (en paralelo, las
// consultas son de solo lectura) y deriva totales, márgenes y promedios.
// Los márgenes anuales se recalculan sobre los totales, no promediando los
// porcentajes mensuales.
func (uc *BalanceUseCase) CalcularAnual(ctx context.Context, anio int) (*dto.BalanceAnualDTO, error) {
	type mesResult struct {
		mes     int
		balance *dto.BalanceMensualDTO
		err     error
	}

	resultados := make(chan mesResult, 12)
	for mes := 1; mes <= 12; mes++ {
		go func(m int) {
			b, err := uc.CalcularMensual(ctx, anio, m)
			resultados <- mesResult{mes: m, balance: b, err: err}
		}(mes)
	}

	meses := make([]dto.BalanceMensualDTO, 12)
	for i := 0; i < 12; i++ {
		r := <-resultados
		if r.err != nil {
			return nil, r.err
		}
		meses[r.mes-1] = *r.balance
	}

	return construirBalanceAnual(anio, meses), nil
}

// CalcularComparativa calcula el balance anual de cada año pedido, en el
// orden dado (duplicados y años fuera de rango se aceptan tal cual), y las
// tasas de crecimiento entre pares consecutivos de la lista.
func (uc *BalanceUseCase) CalcularComparativa(ctx context.Context, anios []int) (*dto.ComparativaDTO, error) {
	aniosData := make([]dto.BalanceAnualDTO, 0, len(anios))
	for _, anio := range anios {
		balance, err := uc.CalcularAnual(ctx, anio)
		if err != nil {
			return nil, err
		}
		aniosData = append(aniosData, *balance)
	}

	comparativa := make([]dto.CrecimientoDTO, 0, len(aniosData))
	for i := 1; i < len(aniosData); i++ {
		anterior := aniosData[i-1]
		actual := aniosData[i]

		comparativa = append(comparativa, dto.CrecimientoDTO{
			Periodo:                fmt.Sprintf("%d-%d", anterior.Anio, actual.Anio),
			CrecimientoIngresosPct: crecimientoIngresos(anterior.Totales.IngresosBruto, actual.Totales.IngresosBruto),
			CrecimientoUtilidadPct: crecimientoUtilidad(anterior.Totales.UtilidadNeta, actual.Totales.UtilidadNeta),
		})
	}

	return &dto.ComparativaDTO{Anios: aniosData, Comparativa: comparativa}, nil
}

// ── Cálculo puro ──────────────────────────────────────────────────────────────

// ventanaMes devuelve la ventana semiabierta [primer día, primer día del mes
// siguiente). Diciembre rueda a enero del año siguiente.
func ventanaMes(anio, mes int) (time.Time, time.Time) {
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	var hasta time.Time
	if mes == 12 {
		hasta = time.Date(anio+1, 1, 1, 0, 0, 0, 0, time.Local)
	} else {
		hasta = time.Date(anio, time.Month(mes+1), 1, 0, 0, 0, 0, time.Local)
	}
	return desde, hasta
}

// construirBalanceMensual arma el balance del mes a partir de los agregados.
func construirBalanceMensual(
	anio, mes int,
	ventas repository.VentasResumen,
	porCanal map[string]decimal.Decimal,
	importaciones repository.ImportacionesResumen,
	gastos map[string]repository.GastoTipoAgg,
) *dto.BalanceMensualDTO {
	// Ingresos: neto = bruto / 1.19, IVA = bruto − neto
	totalBruto := ventas.MontoBruto
	totalNeto := totalBruto.Div(divisorIVA).Round(2)
	iva := totalBruto.Sub(totalNeto).Round(2)

	ticket := decimal.Zero
	if ventas.NumVentas > 0 {
		ticket = totalBruto.Div(decimal.NewFromInt(ventas.NumVentas)).Round(2)
	}

	// Todos los canales conocidos aparecen, en cero si no vendieron
	canales := make(map[string]decimal.Decimal, len(entity.Canales))
	for _, canal := range entity.Canales {
		canales[canal] = porCanal[canal]
	}

	// Costo promedio ponderado global sobre importaciones activas históricas
	costoPromedioKg := decimal.Zero
	if importaciones.KilosNetos.IsPositive() {
		costoPromedioKg = importaciones.CostoTotal.Div(importaciones.KilosNetos).Round(2)
	}
	cmv := ventas.Kilos.Mul(costoPromedioKg).Round(2)

	// Gastos por tipo, con totales acumulados
	porTipo := make(map[string]dto.GastoTipoDTO, len(entity.TiposGasto))
	totalGastosNeto := decimal.Zero
	totalIVAGastos := decimal.Zero
	for _, tipo := range entity.TiposGasto {
		agg := gastos[tipo]
		porTipo[tipo] = dto.GastoTipoDTO{
			Neto:     agg.Neto,
			IVA:      agg.IVA,
			Total:    agg.Neto.Add(agg.IVA),
			Cantidad: agg.Cantidad,
		}
		totalGastosNeto = totalGastosNeto.Add(agg.Neto)
		totalIVAGastos = totalIVAGastos.Add(agg.IVA)
	}

	// Utilidades: el IVA de los gastos se descuenta de la utilidad neta
	// porque afecta el flujo de caja real, aunque contablemente se recupere.
	utilidadBruta := totalNeto.Sub(cmv).Round(2)
	utilidadOperacional := utilidadBruta.Sub(totalGastosNeto).Round(2)
	utilidadNeta := utilidadOperacional.Sub(totalIVAGastos).Round(2)

	return &dto.BalanceMensualDTO{
		Periodo: dto.PeriodoDTO{Anio: anio, Mes: mes, MesNombre: mesesES[mes-1]},
		Ingresos: dto.IngresosDTO{
			TotalBruto:     totalBruto,
			TotalNeto:      totalNeto,
			IVA:            iva,
			KilosVendidos:  ventas.Kilos,
			NumVentas:      ventas.NumVentas,
			TicketPromedio: ticket,
			PorCanal:       canales,
		},
		Costos: dto.CostosDTO{
			CMV:             cmv,
			CostoPromedioKg: costoPromedioKg,
			KilosVendidos:   ventas.Kilos,
		},
		Gastos: dto.GastosDTO{
			TotalNeto: totalGastosNeto,
			TotalIVA:  totalIVAGastos,
			Total:     totalGastosNeto.Add(totalIVAGastos),
			PorTipo:   porTipo,
		},
		UtilidadBruta:        utilidadBruta,
		UtilidadOperacional:  utilidadOperacional,
		UtilidadNeta:         utilidadNeta,
		MargenBrutoPct:       margenPct(utilidadBruta, totalNeto),
		MargenOperacionalPct: margenPct(utilidadOperacional, totalNeto),
		MargenNetoPct:        margenPct(utilidadNeta, totalNeto),
	}
}

// construirBalanceAnual suma los campos aditivos de los 12 meses y recalcula
// márgenes y promedios sobre los totales.
func construirBalanceAnual(anio int, meses []dto.BalanceMensualDTO) *dto.BalanceAnualDTO {
	var totales dto.TotalesAnualesDTO
	for _, m := range meses {
		totales.IngresosBruto = totales.IngresosBruto.Add(m.Ingresos.TotalBruto)
		totales.IngresosNeto = totales.IngresosNeto.Add(m.Ingresos.TotalNeto)
		totales.CMV = totales.CMV.Add(m.Costos.CMV)
		totales.Gastos = totales.Gastos.Add(m.Gastos.Total)
		totales.GastosNeto = totales.GastosNeto.Add(m.Gastos.TotalNeto)
		totales.KilosVendidos = totales.KilosVendidos.Add(m.Ingresos.KilosVendidos)
		totales.NumVentas += m.Ingresos.NumVentas
		totales.UtilidadBruta = totales.UtilidadBruta.Add(m.UtilidadBruta)
		totales.UtilidadOperacional = totales.UtilidadOperacional.Add(m.UtilidadOperacional)
		totales.UtilidadNeta = totales.UtilidadNeta.Add(m.UtilidadNeta)
	}

	totales.MargenBrutoPct = margenPct(totales.UtilidadBruta, totales.IngresosNeto)
	totales.MargenOperacionalPct = margenPct(totales.UtilidadOperacional, totales.IngresosNeto)
	totales.MargenNetoPct = margenPct(totales.UtilidadNeta, totales.IngresosNeto)

	ticketAnual := decimal.Zero
	if totales.NumVentas > 0 {
		ticketAnual = totales.IngresosBruto.Div(decimal.NewFromInt(totales.NumVentas)).Round(2)
	}

	promedios := dto.PromediosDTO{
		IngresosMensual: totales.IngresosBruto.Div(doce).Round(2),
		GastosMensual:   totales.Gastos.Div(doce).Round(2),
		UtilidadMensual: totales.UtilidadNeta.Div(doce).Round(2),
		TicketPromedio:  ticketAnual,
		VentasMensuales: totales.NumVentas / 12,
	}

	return &dto.BalanceAnualDTO{
		Anio:      anio,
		Meses:     meses,
		Totales:   totales,
		Promedios: promedios,
	}
}

// margenPct utilidad / ingresos netos × 100 a 2 decimales; cero si los
// ingresos netos no son positivos.
func margenPct(utilidad, ingresosNeto decimal.Decimal) decimal.Decimal {
	if !ingresosNeto.IsPositive() {
		return decimal.Zero
	}
	return utilidad.Div(ingresosNeto).Mul(cien).Round(2)
}

// crecimientoIngresos variación porcentual de ingresos entre dos años; cero
// si el año anterior no tuvo ingresos.
func crecimientoIngresos(anterior, actual decimal.Decimal) decimal.Decimal {
	if !anterior.IsPositive() {
		return decimal.Zero
	}
	return actual.Sub(anterior).Div(anterior).Mul(cien).Round(2)
}

// crecimientoUtilidad variación porcentual de utilidad neta; el divisor es el
// valor absoluto para que un año anterior con pérdida conserve el signo de la
// mejora. Cero si la utilidad anterior fue exactamente cero.
func crecimientoUtilidad(anterior, actual decimal.Decimal) decimal.Decimal {
	if anterior.IsZero() {
		return decimal.Zero
	}
	return actual.Sub(anterior).Div(anterior.Abs()).Mul(cien).Round(2)
}
