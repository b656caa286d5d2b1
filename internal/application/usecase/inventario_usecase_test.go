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
	"github.com/jorge052011/crm-distribuidora/pkg/config"
)

type fakeInventarioRepo struct {
	consumo       []repository.ConsumoSKURow
	consumoDesde  time.Time
	consumoHasta  time.Time
	importaciones repository.ImportacionesStock
	vendidosTotal decimal.Decimal
	vendidosVent  decimal.Decimal
}

func (f *fakeInventarioRepo) ConsumoPorSKU(_ context.Context, desde, hasta time.Time) ([]repository.ConsumoSKURow, error) {
	f.consumoDesde = desde
	f.consumoHasta = hasta
	return f.consumo, nil
}

func (f *fakeInventarioRepo) ResumenImportaciones(_ context.Context) (repository.ImportacionesStock, error) {
	return f.importaciones, nil
}

func (f *fakeInventarioRepo) KilosVendidos(_ context.Context, desde *time.Time) (decimal.Decimal, error) {
	if desde == nil {
		return f.vendidosTotal, nil
	}
	return f.vendidosVent, nil
}

func cfgInventario() config.InventarioConfig {
	return config.InventarioConfig{
		StockInicialBolsas8:  1091,
		StockInicialBolsas20: 854,
		DiasLeadImportacion:  90,
		DiasVentanaConsumo:   30,
	}
}

func fijarHoy(uc *InventarioUseCase, fecha string) {
	t, _ := time.ParseInLocation("2006-01-02", fecha, time.Local)
	uc.hoy = func() time.Time { return t }
}

func TestConsumoBolsas_VentanaPorDefecto(t *testing.T) {
	repo := &fakeInventarioRepo{}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	out, err := uc.ConsumoBolsas(context.Background(), nil, nil)
	require.NoError(t, err)

	// primer día del mes − 180 días
	assert.Equal(t, "2025-02-02", out.Desde)
	assert.Equal(t, "2025-08-20", out.Hasta)
	assert.Equal(t, "2025-02-02", repo.consumoDesde.Format("2006-01-02"))
	assert.Equal(t, int64(1091), out.Inventario8)
	assert.Equal(t, int64(854), out.Inventario20)
}

func TestConsumoBolsas_ConVentas(t *testing.T) {
	repo := &fakeInventarioRepo{
		consumo: []repository.ConsumoSKURow{
			{SKU: "3", Nombre: "Saco 20kg", TipoDocumento: entity.DocBoleta, Unidades: 5},
			{SKU: "1", Nombre: "Saco 8kg", TipoDocumento: entity.DocNotaCredito, Unidades: 2},
			{SKU: "404", Nombre: "Descontinuado", TipoDocumento: entity.DocBoleta, Unidades: 7},
		},
	}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	desde := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)
	out, err := uc.ConsumoBolsas(context.Background(), &desde, &hasta)
	require.NoError(t, err)

	assert.Equal(t, int64(-2), out.Consumo8)
	assert.Equal(t, int64(5), out.Consumo20)
	assert.Equal(t, int64(1093), out.Inventario8)
	assert.Equal(t, int64(849), out.Inventario20)
	assert.Equal(t, []string{"404"}, out.SKUsSinMapa)
	require.Len(t, out.Detalle, 2)
	assert.Equal(t, "3", out.Detalle[0].SKU)
}

func TestProyeccionStock(t *testing.T) {
	repo := &fakeInventarioRepo{
		importaciones: repository.ImportacionesStock{
			KilosIngresadosBruto: decimal.NewFromInt(25000),
			MermaTotal:           decimal.NewFromInt(500),
		},
		vendidosTotal: decimal.NewFromInt(20000),
		vendidosVent:  decimal.NewFromInt(1500),
	}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	out, err := uc.ProyeccionStock(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 30, out.Dias)
	assert.Equal(t, "2025-07-21", out.DesdeConsumo)
	assert.True(t, decimal.NewFromInt(24500).Equal(out.KilosIngresadosNeto))
	assert.True(t, decimal.NewFromInt(4500).Equal(out.StockKg))
	// 1500 / 30 = 50 kg diarios
	assert.True(t, decimal.NewFromInt(50).Equal(out.ConsumoDiario))

	require.NotNil(t, out.DiasStock)
	assert.True(t, decimal.NewFromInt(90).Equal(*out.DiasStock))
	assert.True(t, out.AlertaReorden)

	require.NotNil(t, out.FechaAgotamiento)
	assert.Equal(t, "2025-11-18", *out.FechaAgotamiento)

	// 90 días de stock − 90 de lead: se ordena hoy
	require.NotNil(t, out.FechaOrdenSugerida)
	assert.Equal(t, "2025-08-20", *out.FechaOrdenSugerida)
}

func TestProyeccionStock_ConHolgura(t *testing.T) {
	repo := &fakeInventarioRepo{
		importaciones: repository.ImportacionesStock{
			KilosIngresadosBruto: decimal.NewFromInt(50000),
		},
		vendidosTotal: decimal.NewFromInt(20000),
		vendidosVent:  decimal.NewFromInt(3000),
	}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	out, err := uc.ProyeccionStock(context.Background(), 0)
	require.NoError(t, err)

	// stock 30000, 100 kg/día → 300 días
	require.NotNil(t, out.DiasStock)
	assert.True(t, decimal.NewFromInt(300).Equal(*out.DiasStock))
	assert.False(t, out.AlertaReorden)

	require.NotNil(t, out.DiasHastaOrdenar)
	assert.True(t, decimal.NewFromInt(210).Equal(*out.DiasHastaOrdenar))
	require.NotNil(t, out.FechaOrdenSugerida)
	assert.Equal(t, "2026-03-18", *out.FechaOrdenSugerida)
}

func TestProyeccionStock_RedondeaStockADosDecimales(t *testing.T) {
	repo := &fakeInventarioRepo{
		importaciones: repository.ImportacionesStock{
			KilosIngresadosBruto: decimal.RequireFromString("25000.505"),
			MermaTotal:           decimal.RequireFromString("500.001"),
		},
		vendidosTotal: decimal.RequireFromString("20000.4999"),
		vendidosVent:  decimal.NewFromInt(1500),
	}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	out, err := uc.ProyeccionStock(context.Background(), 0)
	require.NoError(t, err)

	// 25000.505 − 500.001 − 20000.4999 = 4500.0041 → 4500.00
	assert.True(t, decimal.RequireFromString("4500").Equal(out.StockKg))
	assert.Equal(t, int32(-2), out.StockKg.Exponent())
}

func TestProyeccionStock_SinVentasRecientes(t *testing.T) {
	repo := &fakeInventarioRepo{
		importaciones: repository.ImportacionesStock{
			KilosIngresadosBruto: decimal.NewFromInt(10000),
		},
		vendidosTotal: decimal.NewFromInt(2000),
		vendidosVent:  decimal.Zero,
	}
	uc := NewInventarioUseCase(repo, cfgInventario())
	fijarHoy(uc, "2025-08-20")

	out, err := uc.ProyeccionStock(context.Background(), 15)
	require.NoError(t, err)

	assert.Equal(t, 15, out.Dias)
	assert.Nil(t, out.DiasStock)
	assert.Nil(t, out.FechaAgotamiento)
	assert.Nil(t, out.FechaOrdenSugerida)
	assert.False(t, out.AlertaReorden)
}
