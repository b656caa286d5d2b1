package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

type fakeDashboardRepo struct {
	kpis     repository.KPIVentas
	serie    []repository.SerieMensualRow
	canales  []repository.CanalIngresosRow
	top      []repository.ProductoKilosRow
	diarias  []repository.VentaDiariaRow
	primeras []repository.VentaDiariaRow
	resumen  []repository.ResumenMensualRow
	gastos   map[time.Time]decimal.Decimal
	ultima   *entity.Importacion

	resumenDesde time.Time
	resumenHasta time.Time
}

func (f *fakeDashboardRepo) KPIs(_ context.Context, _, _ time.Time) (repository.KPIVentas, error) {
	return f.kpis, nil
}

func (f *fakeDashboardRepo) SerieMensual(_ context.Context, _, _ time.Time) ([]repository.SerieMensualRow, error) {
	return f.serie, nil
}

func (f *fakeDashboardRepo) IngresosPorCanal(_ context.Context, _, _ time.Time) ([]repository.CanalIngresosRow, error) {
	return f.canales, nil
}

func (f *fakeDashboardRepo) TopProductos(_ context.Context, _, _ time.Time, _ int) ([]repository.ProductoKilosRow, error) {
	return f.top, nil
}

func (f *fakeDashboardRepo) VentasDiarias(_ context.Context, _, _ time.Time) ([]repository.VentaDiariaRow, error) {
	return f.diarias, nil
}

func (f *fakeDashboardRepo) PrimerasCompras(_ context.Context, _, _ time.Time) ([]repository.VentaDiariaRow, error) {
	return f.primeras, nil
}

func (f *fakeDashboardRepo) ResumenVentasMensual(_ context.Context, desde, hasta time.Time) ([]repository.ResumenMensualRow, error) {
	f.resumenDesde, f.resumenHasta = desde, hasta
	return f.resumen, nil
}

func (f *fakeDashboardRepo) GastosPorMes(_ context.Context, _, _ time.Time) (map[time.Time]decimal.Decimal, error) {
	return f.gastos, nil
}

func (f *fakeDashboardRepo) UltimaImportacionActiva(_ context.Context) (*entity.Importacion, error) {
	return f.ultima, nil
}

func TestResolverVentana_PorDefecto(t *testing.T) {
	uc := NewDashboardUseCase(&fakeDashboardRepo{})
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 15, 0, 0, 0, time.Local)
	}

	v := uc.ResolverVentana(0, nil, nil, nil)

	assert.Equal(t, "2025-02-02", v.Desde.Format("2006-01-02"))
	assert.Equal(t, "2025-08-20", v.Hasta.Format("2006-01-02"))
	assert.Equal(t, "2025-08-01", v.MesDetalle.Format("2006-01-02"))
}

func TestResolverVentana_DiasTienePrioridad(t *testing.T) {
	uc := NewDashboardUseCase(&fakeDashboardRepo{})
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	desde := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	v := uc.ResolverVentana(7, &desde, nil, nil)

	assert.Equal(t, "2025-08-13", v.Desde.Format("2006-01-02"))
}

func TestResolverVentana_RangoInvertido(t *testing.T) {
	uc := NewDashboardUseCase(&fakeDashboardRepo{})
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	desde := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	v := uc.ResolverVentana(0, &desde, &hasta, nil)

	assert.Equal(t, "2025-01-15", v.Desde.Format("2006-01-02"))
	assert.Equal(t, "2025-06-01", v.Hasta.Format("2006-01-02"))
}

func TestResolverVentana_DesdeSoloUsaDefecto(t *testing.T) {
	// El par explícito solo vale completo; con una sola fecha se cae a la
	// ventana por defecto.
	uc := NewDashboardUseCase(&fakeDashboardRepo{})
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	desde := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	v := uc.ResolverVentana(0, &desde, nil, nil)

	assert.Equal(t, "2025-02-02", v.Desde.Format("2006-01-02"))
	assert.Equal(t, "2025-08-20", v.Hasta.Format("2006-01-02"))
}

func TestDashboard_KPIsYDetalleDiario(t *testing.T) {
	repo := &fakeDashboardRepo{
		kpis: repository.KPIVentas{
			Ingresos:  decimal.NewFromInt(500000),
			Kilos:     decimal.NewFromInt(420),
			NumVentas: 40,
		},
		serie: []repository.SerieMensualRow{
			{Mes: time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local), Ventas: 18, Kilos: decimal.NewFromInt(200), Ingresos: decimal.NewFromInt(240000)},
		},
		canales: []repository.CanalIngresosRow{
			{Canal: "whatsapp", Ventas: 25, Ingresos: decimal.NewFromInt(300000)},
			{Canal: "web", Ventas: 15, Ingresos: decimal.NewFromInt(200000)},
		},
		diarias: []repository.VentaDiariaRow{
			{Dia: time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local), Cantidad: 2, Valor: decimal.NewFromInt(50000)},
			{Dia: time.Date(2025, 2, 14, 0, 0, 0, 0, time.Local), Cantidad: 1, Valor: decimal.NewFromInt(20000)},
		},
	}
	uc := NewDashboardUseCase(repo)
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	mes := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	v := uc.ResolverVentana(0, nil, nil, &mes)
	out, err := uc.Dashboard(context.Background(), v)
	require.NoError(t, err)

	// ticket = 500000 / 40
	assert.True(t, decimal.NewFromInt(12500).Equal(out.KPITicket))
	assert.Equal(t, "2025-02", out.MesSeleccionado)

	// febrero 2025 tiene 28 días, todos presentes
	require.Len(t, out.VentasDiarias, 28)
	assert.Equal(t, "03/02", out.VentasDiarias[2].Dia)
	assert.Equal(t, int64(2), out.VentasDiarias[2].Cantidad)
	assert.Equal(t, int64(0), out.VentasDiarias[4].Cantidad)
	assert.Equal(t, int64(3), out.TotalCantidadMes)
	assert.True(t, decimal.NewFromInt(70000).Equal(out.TotalValorMes))

	require.Len(t, out.SerieMensual, 1)
	assert.Equal(t, "07-2025", out.SerieMensual[0].Mes)
}

func TestDashboard_TicketEnPesosEnteros(t *testing.T) {
	repo := &fakeDashboardRepo{
		kpis: repository.KPIVentas{
			Ingresos:  decimal.NewFromInt(100001),
			NumVentas: 2,
		},
	}
	uc := NewDashboardUseCase(repo)
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	out, err := uc.Dashboard(context.Background(), uc.ResolverVentana(30, nil, nil, nil))
	require.NoError(t, err)

	// 100001 / 2 = 50000.5, redondeado a peso entero
	assert.True(t, decimal.NewFromInt(50001).Equal(out.KPITicket), "ticket = %s", out.KPITicket)
}

func TestDashboard_SinVentas(t *testing.T) {
	uc := NewDashboardUseCase(&fakeDashboardRepo{})
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	out, err := uc.Dashboard(context.Background(), uc.ResolverVentana(30, nil, nil, nil))
	require.NoError(t, err)

	assert.True(t, out.KPITicket.IsZero())
	assert.Empty(t, out.SerieMensual)
	// el mes en curso igual se rellena con días en cero
	require.Len(t, out.VentasDiarias, 31)
}

func TestResumenMensual(t *testing.T) {
	julio := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	junio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	repo := &fakeDashboardRepo{
		resumen: []repository.ResumenMensualRow{
			{Mes: junio, Kilos: decimal.NewFromInt(100), VentasBrutas: decimal.NewFromInt(300000), NotasCredito: decimal.NewFromInt(20000), CantidadVentas: 12},
			{Mes: julio, Kilos: decimal.NewFromInt(150), VentasBrutas: decimal.NewFromInt(450000), CantidadVentas: 15},
		},
		gastos: map[time.Time]decimal.Decimal{
			julio: decimal.NewFromInt(100000),
		},
		ultima: &entity.Importacion{
			KilosIngresados: decimal.NewFromInt(1000),
			MermaKg:         decimal.NewFromInt(0),
			CostoTotal:      decimal.NewFromInt(800000),
		},
	}
	uc := NewDashboardUseCase(repo)
	uc.hoy = func() time.Time {
		return time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)
	}

	out, err := uc.ResumenMensual(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(800).Equal(out.CostoPorKg))
	require.Len(t, out.Filas, 2)

	// más recientes primero
	assert.Equal(t, "2025-07", out.Filas[0].Mes)
	assert.True(t, decimal.NewFromInt(450000).Equal(out.Filas[0].VentasNetas))
	assert.True(t, decimal.NewFromInt(120000).Equal(out.Filas[0].Costo))
	assert.True(t, decimal.NewFromInt(330000).Equal(out.Filas[0].MargenBruto))
	assert.True(t, decimal.NewFromInt(230000).Equal(out.Filas[0].Utilidad))

	assert.Equal(t, "2025-06", out.Filas[1].Mes)
	assert.True(t, decimal.NewFromInt(280000).Equal(out.Filas[1].VentasNetas))

	assert.Equal(t, "total", out.Totales.Mes)
	assert.True(t, decimal.NewFromInt(730000).Equal(out.Totales.VentasNetas))
	assert.Equal(t, int64(27), out.Totales.CantidadVentas)

	// ventana por defecto: inicio de mes − 180 días hasta hoy
	assert.Equal(t, "2025-02-02", repo.resumenDesde.Format("2006-01-02"))
	assert.Equal(t, "2025-08-20", repo.resumenHasta.Format("2006-01-02"))
}

func TestResumenMensual_RangoInvertido(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewDashboardUseCase(repo)

	desde := time.Date(2025, 7, 31, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	_, err := uc.ResumenMensual(context.Background(), &desde, &hasta)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", repo.resumenDesde.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", repo.resumenHasta.Format("2006-01-02"))
}

func TestResumenMensual_SinImportaciones(t *testing.T) {
	repo := &fakeDashboardRepo{
		resumen: []repository.ResumenMensualRow{
			{Mes: time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local), Kilos: decimal.NewFromInt(100), VentasBrutas: decimal.NewFromInt(100000), CantidadVentas: 5},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.ResumenMensual(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.CostoPorKg.IsZero())
	assert.True(t, out.Filas[0].Costo.IsZero())
	assert.True(t, decimal.NewFromInt(100000).Equal(out.Filas[0].MargenBruto))
}
