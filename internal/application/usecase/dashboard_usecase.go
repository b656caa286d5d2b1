package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

// topProductosLimit cuántos productos muestra el ranking del dashboard.
const topProductosLimit = 10

// DashboardUseCase arma el dashboard comercial y el resumen mensual de
// ventas. A diferencia del balance contable, los KPIs excluyen las notas de
// crédito de ingresos y conteo de ventas.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	hoy  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, hoy: time.Now}
}

// VentanaDashboard ventana resuelta del dashboard.
type VentanaDashboard struct {
	Desde       time.Time
	Hasta       time.Time
	MesDetalle  time.Time // primer día del mes del detalle diario
}

// ResolverVentana aplica los valores por defecto: dias tiene prioridad sobre
// desde/hasta, el par explícito solo vale completo (y se invierte si viene al
// revés), y sin parámetros la ventana es [inicio de mes − 180 días, hoy].
// El detalle diario por defecto es el mes en curso.
func (uc *DashboardUseCase) ResolverVentana(dias int, desde, hasta, mesDetalle *time.Time) VentanaDashboard {
	hoy := uc.hoy()

	v := VentanaDashboard{
		Hasta:      hoy,
		MesDetalle: time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.Local),
	}
	switch {
	case dias > 0:
		v.Desde = hoy.AddDate(0, 0, -dias)
	case desde != nil && hasta != nil:
		v.Desde, v.Hasta = *desde, *hasta
		if v.Desde.After(v.Hasta) {
			v.Desde, v.Hasta = v.Hasta, v.Desde
		}
	default:
		primero := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.Local)
		v.Desde = primero.AddDate(0, 0, -180)
	}
	if mesDetalle != nil {
		v.MesDetalle = time.Date(mesDetalle.Year(), mesDetalle.Month(), 1, 0, 0, 0, 0, time.Local)
	}
	return v
}

// Dashboard consulta y arma el dashboard completo. Las consultas son
// independientes entre sí y se lanzan en paralelo.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, v VentanaDashboard) (*dto.DashboardDTO, error) {
	finMes := v.MesDetalle.AddDate(0, 1, -1)

	var (
		kpis     repository.KPIVentas
		serie    []repository.SerieMensualRow
		canales  []repository.CanalIngresosRow
		top      []repository.ProductoKilosRow
		diarias  []repository.VentaDiariaRow
		primeras []repository.VentaDiariaRow
	)

	errores := make(chan error, 6)
	go func() {
		var err error
		kpis, err = uc.repo.KPIs(ctx, v.Desde, v.Hasta)
		errores <- err
	}()
	go func() {
		var err error
		serie, err = uc.repo.SerieMensual(ctx, v.Desde, v.Hasta)
		errores <- err
	}()
	go func() {
		var err error
		canales, err = uc.repo.IngresosPorCanal(ctx, v.Desde, v.Hasta)
		errores <- err
	}()
	go func() {
		var err error
		top, err = uc.repo.TopProductos(ctx, v.Desde, v.Hasta, topProductosLimit)
		errores <- err
	}()
	go func() {
		var err error
		diarias, err = uc.repo.VentasDiarias(ctx, v.MesDetalle, finMes)
		errores <- err
	}()
	go func() {
		var err error
		primeras, err = uc.repo.PrimerasCompras(ctx, v.MesDetalle, finMes)
		errores <- err
	}()
	for i := 0; i < 6; i++ {
		if err := <-errores; err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}

	// El ticket del dashboard se muestra en pesos enteros.
	ticket := decimal.Zero
	if kpis.NumVentas > 0 {
		ticket = kpis.Ingresos.Div(decimal.NewFromInt(kpis.NumVentas)).Round(0)
	}

	out := &dto.DashboardDTO{
		Desde:           v.Desde.Format(formatoFecha),
		Hasta:           v.Hasta.Format(formatoFecha),
		KPIIngresos:     kpis.Ingresos,
		KPIKilos:        kpis.Kilos,
		KPINVentas:      kpis.NumVentas,
		KPITicket:       ticket,
		SerieMensual:    make([]dto.SerieMensualDTO, len(serie)),
		PorCanal:        make([]dto.CanalIngresosDTO, len(canales)),
		TopProductos:    make([]dto.ProductoKilosDTO, len(top)),
		MesSeleccionado: v.MesDetalle.Format("2006-01"),
	}
	for i, s := range serie {
		out.SerieMensual[i] = dto.SerieMensualDTO{
			Mes:      s.Mes.Format("01-2006"),
			Ventas:   s.Ventas,
			Kilos:    s.Kilos,
			Ingresos: s.Ingresos,
		}
	}
	for i, c := range canales {
		out.PorCanal[i] = dto.CanalIngresosDTO{Canal: c.Canal, Ventas: c.Ventas, Ingresos: c.Ingresos}
	}
	for i, p := range top {
		out.TopProductos[i] = dto.ProductoKilosDTO{Nombre: p.Nombre, Kilos: p.Kilos}
	}

	out.VentasDiarias, out.TotalCantidadMes, out.TotalValorMes = rellenarMes(v.MesDetalle, diarias)
	out.PrimerasCompras, out.TotalPrimerasCantidad, out.TotalPrimerasValor = rellenarMes(v.MesDetalle, primeras)
	return out, nil
}

// rellenarMes expande las filas a todos los días del mes, con cero en los
// días sin ventas, y acumula los totales del mes.
func rellenarMes(mes time.Time, filas []repository.VentaDiariaRow) ([]dto.VentaDiariaDTO, int64, decimal.Decimal) {
	porDia := make(map[int]repository.VentaDiariaRow, len(filas))
	for _, f := range filas {
		porDia[f.Dia.Day()] = f
	}

	ultimoDia := mes.AddDate(0, 1, -1).Day()
	dias := make([]dto.VentaDiariaDTO, ultimoDia)
	totalCantidad := int64(0)
	totalValor := decimal.Zero
	for d := 1; d <= ultimoDia; d++ {
		fila := porDia[d]
		dias[d-1] = dto.VentaDiariaDTO{
			Dia:      fmt.Sprintf("%02d/%02d", d, int(mes.Month())),
			Cantidad: fila.Cantidad,
			Valor:    fila.Valor,
		}
		totalCantidad += fila.Cantidad
		totalValor = totalValor.Add(fila.Valor)
	}
	return dias, totalCantidad, totalValor
}

// ResumenMensual arma la tabla mensual de ventas, costo estimado y utilidad.
// El costo por kilo es el de la última importación activa; sin importaciones
// el costo estimado es cero.
func (uc *DashboardUseCase) ResumenMensual(ctx context.Context, desde, hasta *time.Time) (*dto.ResumenMensualDTO, error) {
	hoy := uc.hoy()
	if hasta == nil {
		hasta = &hoy
	}
	if desde == nil {
		primero := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, time.Local)
		d := primero.AddDate(0, 0, -180)
		desde = &d
	}
	if desde.After(*hasta) {
		desde, hasta = hasta, desde
	}

	filas, err := uc.repo.ResumenVentasMensual(ctx, *desde, *hasta)
	if err != nil {
		return nil, fmt.Errorf("resumen mensual: ventas: %w", err)
	}
	gastos, err := uc.repo.GastosPorMes(ctx, *desde, *hasta)
	if err != nil {
		return nil, fmt.Errorf("resumen mensual: gastos: %w", err)
	}
	ultima, err := uc.repo.UltimaImportacionActiva(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen mensual: última importación: %w", err)
	}

	costoPorKg := decimal.Zero
	if ultima != nil {
		costoPorKg = ultima.CostoPorKg()
	}

	out := &dto.ResumenMensualDTO{
		Desde:      desde.Format(formatoFecha),
		Hasta:      hasta.Format(formatoFecha),
		CostoPorKg: costoPorKg,
		Filas:      make([]dto.ResumenFilaDTO, len(filas)),
	}
	for i, f := range filas {
		ventasNetas := f.VentasBrutas.Sub(f.NotasCredito)
		costo := f.Kilos.Mul(costoPorKg).Round(2)
		margen := ventasNetas.Sub(costo)
		gastoMes := gastos[f.Mes]
		fila := dto.ResumenFilaDTO{
			Mes:            f.Mes.Format("2006-01"),
			Kilos:          f.Kilos,
			VentasBrutas:   f.VentasBrutas,
			NotasCredito:   f.NotasCredito,
			VentasNetas:    ventasNetas,
			CantidadVentas: f.CantidadVentas,
			Costo:          costo,
			MargenBruto:    margen,
			Gastos:         gastoMes,
			Utilidad:       margen.Sub(gastoMes),
		}
		out.Filas[i] = fila

		out.Totales.Kilos = out.Totales.Kilos.Add(fila.Kilos)
		out.Totales.VentasBrutas = out.Totales.VentasBrutas.Add(fila.VentasBrutas)
		out.Totales.NotasCredito = out.Totales.NotasCredito.Add(fila.NotasCredito)
		out.Totales.VentasNetas = out.Totales.VentasNetas.Add(fila.VentasNetas)
		out.Totales.CantidadVentas += fila.CantidadVentas
		out.Totales.Costo = out.Totales.Costo.Add(fila.Costo)
		out.Totales.MargenBruto = out.Totales.MargenBruto.Add(fila.MargenBruto)
		out.Totales.Gastos = out.Totales.Gastos.Add(fila.Gastos)
		out.Totales.Utilidad = out.Totales.Utilidad.Add(fila.Utilidad)
	}
	out.Totales.Mes = "total"

	// más recientes primero, venga como venga de la consulta
	sort.SliceStable(out.Filas, func(i, j int) bool { return out.Filas[i].Mes > out.Filas[j].Mes })

	return out, nil
}
