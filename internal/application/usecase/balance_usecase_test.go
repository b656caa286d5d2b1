package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

// fakeBalanceRepo devuelve agregados fijos por mes, indexados "anio-mes".
type fakeBalanceRepo struct {
	ventas         map[string]repository.VentasResumen
	canales        map[string]map[string]decimal.Decimal
	importaciones  repository.ImportacionesResumen
	gastos         map[string]map[string]repository.GastoTipoAgg
}

func claveMes(t time.Time) string {
	return t.Format("2006-01")
}

func (f *fakeBalanceRepo) VentasResumen(_ context.Context, desde, _ time.Time) (repository.VentasResumen, error) {
	return f.ventas[claveMes(desde)], nil
}

func (f *fakeBalanceRepo) VentasPorCanal(_ context.Context, desde, _ time.Time) (map[string]decimal.Decimal, error) {
	return f.canales[claveMes(desde)], nil
}

func (f *fakeBalanceRepo) ImportacionesActivas(_ context.Context, _ time.Time) (repository.ImportacionesResumen, error) {
	return f.importaciones, nil
}

func (f *fakeBalanceRepo) GastosPorTipo(_ context.Context, desde, _ time.Time) (map[string]repository.GastoTipoAgg, error) {
	return f.gastos[claveMes(desde)], nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func repoVacio() *fakeBalanceRepo {
	return &fakeBalanceRepo{
		ventas:  map[string]repository.VentasResumen{},
		canales: map[string]map[string]decimal.Decimal{},
		gastos:  map[string]map[string]repository.GastoTipoAgg{},
	}
}

func TestCalcularMensual_DesgloseIVA(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2025-03"] = repository.VentasResumen{
		MontoBruto: dec("119000"),
		Kilos:      dec("100"),
		NumVentas:  10,
	}

	uc := NewBalanceUseCase(repo)
	balance, err := uc.CalcularMensual(context.Background(), 2025, 3)
	require.NoError(t, err)

	assert.True(t, dec("100000").Equal(balance.Ingresos.TotalNeto), "neto = %s", balance.Ingresos.TotalNeto)
	assert.True(t, dec("19000").Equal(balance.Ingresos.IVA), "iva = %s", balance.Ingresos.IVA)
	assert.True(t, dec("11900").Equal(balance.Ingresos.TicketPromedio))
	assert.Equal(t, "Marzo", balance.Periodo.MesNombre)
}

func TestCalcularMensual_CostosYUtilidades(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2025-06"] = repository.VentasResumen{
		MontoBruto: dec("1190000"),
		Kilos:      dec("500"),
		NumVentas:  40,
	}
	// 1000 kg netos a 1200 el kilo: costo promedio 1200
	repo.importaciones = repository.ImportacionesResumen{
		KilosNetos: dec("1000"),
		CostoTotal: dec("1200000"),
	}
	repo.gastos["2025-06"] = map[string]repository.GastoTipoAgg{
		"arriendo": {Neto: dec("150000"), IVA: dec("28500"), Cantidad: 1},
		"sueldos":  {Neto: dec("100000"), IVA: decimal.Zero, Cantidad: 2},
	}

	uc := NewBalanceUseCase(repo)
	balance, err := uc.CalcularMensual(context.Background(), 2025, 6)
	require.NoError(t, err)

	assert.True(t, dec("1200").Equal(balance.Costos.CostoPromedioKg))
	assert.True(t, dec("600000").Equal(balance.Costos.CMV))

	// neto 1000000 − cmv 600000 = bruta 400000
	assert.True(t, dec("400000").Equal(balance.UtilidadBruta))
	// 400000 − gastos neto 250000 = operacional 150000
	assert.True(t, dec("150000").Equal(balance.UtilidadOperacional))
	// 150000 − iva gastos 28500 = neta 121500
	assert.True(t, dec("121500").Equal(balance.UtilidadNeta))

	assert.True(t, dec("40").Equal(balance.MargenBrutoPct))
	assert.True(t, dec("15").Equal(balance.MargenOperacionalPct))
	assert.True(t, dec("12.15").Equal(balance.MargenNetoPct))

	// los tipos sin gasto aparecen en cero
	otros, ok := balance.Gastos.PorTipo["otros"]
	require.True(t, ok)
	assert.True(t, otros.Total.IsZero())
}

func TestCalcularMensual_MesSinDatos(t *testing.T) {
	uc := NewBalanceUseCase(repoVacio())

	balance, err := uc.CalcularMensual(context.Background(), 2025, 2)
	require.NoError(t, err)

	assert.True(t, balance.Ingresos.TotalBruto.IsZero())
	assert.True(t, balance.Ingresos.TicketPromedio.IsZero())
	assert.True(t, balance.Costos.CMV.IsZero())
	assert.True(t, balance.UtilidadNeta.IsZero())
	assert.True(t, balance.MargenNetoPct.IsZero())
	assert.Equal(t, int64(0), balance.Ingresos.NumVentas)
}

func TestCalcularMensual_RedondeoMitadLejosDeCero(t *testing.T) {
	repo := repoVacio()
	// 100 / 1.19 = 84.0336... → 84.03
	repo.ventas["2025-01"] = repository.VentasResumen{
		MontoBruto: dec("100"),
		Kilos:      dec("1"),
		NumVentas:  3,
	}

	uc := NewBalanceUseCase(repo)
	balance, err := uc.CalcularMensual(context.Background(), 2025, 1)
	require.NoError(t, err)

	assert.True(t, dec("84.03").Equal(balance.Ingresos.TotalNeto))
	assert.True(t, dec("15.97").Equal(balance.Ingresos.IVA))
	// 100 / 3 = 33.333... → 33.33
	assert.True(t, dec("33.33").Equal(balance.Ingresos.TicketPromedio))
}

func TestCalcularAnual_TotalesSonSumaDeMeses(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2025-01"] = repository.VentasResumen{MontoBruto: dec("119000"), Kilos: dec("100"), NumVentas: 5}
	repo.ventas["2025-07"] = repository.VentasResumen{MontoBruto: dec("238000"), Kilos: dec("200"), NumVentas: 7}
	repo.gastos["2025-07"] = map[string]repository.GastoTipoAgg{
		"transporte": {Neto: dec("50000"), IVA: dec("9500"), Cantidad: 3},
	}

	uc := NewBalanceUseCase(repo)
	anual, err := uc.CalcularAnual(context.Background(), 2025)
	require.NoError(t, err)

	require.Len(t, anual.Meses, 12)
	for i, m := range anual.Meses {
		assert.Equal(t, i+1, m.Periodo.Mes)
	}

	assert.True(t, dec("357000").Equal(anual.Totales.IngresosBruto))
	assert.True(t, dec("300000").Equal(anual.Totales.IngresosNeto))
	assert.True(t, dec("300").Equal(anual.Totales.KilosVendidos))
	assert.Equal(t, int64(12), anual.Totales.NumVentas)
	assert.True(t, dec("59500").Equal(anual.Totales.Gastos))

	// utilidad neta anual = suma de las mensuales
	suma := decimal.Zero
	for _, m := range anual.Meses {
		suma = suma.Add(m.UtilidadNeta)
	}
	assert.True(t, suma.Equal(anual.Totales.UtilidadNeta))

	// promedios sobre los totales
	assert.True(t, dec("29750").Equal(anual.Promedios.IngresosMensual))
	assert.Equal(t, int64(1), anual.Promedios.VentasMensuales)
	// ticket anual sobre el total de ventas del año
	assert.True(t, dec("29750").Equal(anual.Promedios.TicketPromedio))
}

func TestCalcularAnual_MargenesSobreTotales(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2024-02"] = repository.VentasResumen{MontoBruto: dec("119000"), Kilos: dec("50"), NumVentas: 2}
	repo.importaciones = repository.ImportacionesResumen{KilosNetos: dec("100"), CostoTotal: dec("80000")}

	uc := NewBalanceUseCase(repo)
	anual, err := uc.CalcularAnual(context.Background(), 2024)
	require.NoError(t, err)

	// bruta = 100000 − 50×800 = 60000 → 60% sobre 100000 neto
	assert.True(t, dec("60").Equal(anual.Totales.MargenBrutoPct))
}

func TestCalcularComparativa_Crecimiento(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2024-05"] = repository.VentasResumen{MontoBruto: dec("1000000"), Kilos: dec("100"), NumVentas: 10}
	repo.ventas["2025-05"] = repository.VentasResumen{MontoBruto: dec("1100000"), Kilos: dec("110"), NumVentas: 11}

	uc := NewBalanceUseCase(repo)
	comp, err := uc.CalcularComparativa(context.Background(), []int{2024, 2025})
	require.NoError(t, err)

	require.Len(t, comp.Anios, 2)
	require.Len(t, comp.Comparativa, 1)
	crecimiento := comp.Comparativa[0]
	assert.Equal(t, "2024-2025", crecimiento.Periodo)
	assert.True(t, dec("10").Equal(crecimiento.CrecimientoIngresosPct), "ingresos = %s", crecimiento.CrecimientoIngresosPct)
	assert.True(t, dec("10").Equal(crecimiento.CrecimientoUtilidadPct))
}

func TestCalcularComparativa_OrdenDeEntrada(t *testing.T) {
	// La lista descendente conserva su orden, el de un mapa serializado no.
	uc := NewBalanceUseCase(repoVacio())
	comp, err := uc.CalcularComparativa(context.Background(), []int{2025, 2024, 2022})
	require.NoError(t, err)

	require.Len(t, comp.Comparativa, 2)
	assert.Equal(t, "2025-2024", comp.Comparativa[0].Periodo)
	assert.Equal(t, "2024-2022", comp.Comparativa[1].Periodo)
}

func TestCalcularComparativa_AnioAnteriorEnCero(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2025-05"] = repository.VentasResumen{MontoBruto: dec("500000"), Kilos: dec("40"), NumVentas: 4}

	uc := NewBalanceUseCase(repo)
	comp, err := uc.CalcularComparativa(context.Background(), []int{2024, 2025})
	require.NoError(t, err)

	require.Len(t, comp.Comparativa, 1)
	crecimiento := comp.Comparativa[0]
	assert.True(t, crecimiento.CrecimientoIngresosPct.IsZero())
	assert.True(t, crecimiento.CrecimientoUtilidadPct.IsZero())
}

func TestCalcularComparativa_AniosIdenticos(t *testing.T) {
	repo := repoVacio()
	repo.ventas["2024-03"] = repository.VentasResumen{MontoBruto: dec("119000"), Kilos: dec("10"), NumVentas: 1}
	repo.ventas["2025-03"] = repository.VentasResumen{MontoBruto: dec("119000"), Kilos: dec("10"), NumVentas: 1}

	uc := NewBalanceUseCase(repo)
	comp, err := uc.CalcularComparativa(context.Background(), []int{2024, 2025})
	require.NoError(t, err)

	require.Len(t, comp.Comparativa, 1)
	crecimiento := comp.Comparativa[0]
	assert.True(t, crecimiento.CrecimientoIngresosPct.IsZero())
	assert.True(t, crecimiento.CrecimientoUtilidadPct.IsZero())
}

func TestCrecimientoUtilidad_PerdidaPrevia(t *testing.T) {
	// de −100 a 50: mejora de 150%
	assert.True(t, dec("150").Equal(crecimientoUtilidad(dec("-100"), dec("50"))))
	// de −100 a −150: empeora 50%
	assert.True(t, dec("-50").Equal(crecimientoUtilidad(dec("-100"), dec("-150"))))
}

func TestVentanaMes_Diciembre(t *testing.T) {
	desde, hasta := ventanaMes(2025, 12)
	assert.Equal(t, 2025, desde.Year())
	assert.Equal(t, time.December, desde.Month())
	assert.Equal(t, 2026, hasta.Year())
	assert.Equal(t, time.January, hasta.Month())
}
