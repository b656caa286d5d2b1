package inventario

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

func TestCalcularConsumo_SKUSimple(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "3", Nombre: "Saco 20kg", TipoDocumento: entity.DocBoleta, Unidades: 5},
	}

	r := CalcularConsumo(lineas, 1091, 854)

	assert.Equal(t, int64(0), r.Consumo8)
	assert.Equal(t, int64(5), r.Consumo20)
	assert.Equal(t, int64(1091), r.Stock8)
	assert.Equal(t, int64(849), r.Stock20)
	require.Len(t, r.Detalle, 1)
	assert.Equal(t, int64(5), r.Detalle[0].Bolsas20)
}

func TestCalcularConsumo_FormatosCombinados(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "5", Nombre: "Saco 28kg", TipoDocumento: entity.DocFactura, Unidades: 3}, // 1×8 + 1×20 por unidad
		{SKU: "8", Nombre: "Saco 48kg", TipoDocumento: entity.DocBoleta, Unidades: 2},  // 5×8 por unidad
	}

	r := CalcularConsumo(lineas, 100, 100)

	assert.Equal(t, int64(13), r.Consumo8)
	assert.Equal(t, int64(3), r.Consumo20)
	assert.Equal(t, int64(87), r.Stock8)
	assert.Equal(t, int64(97), r.Stock20)

	// detalle ordenado por consumo absoluto descendente: 10 bolsas vs 6
	require.Len(t, r.Detalle, 2)
	assert.Equal(t, "8", r.Detalle[0].SKU)
	assert.Equal(t, "5", r.Detalle[1].SKU)
}

func TestCalcularConsumo_NotaCreditoResta(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "1", Nombre: "Saco 8kg", TipoDocumento: entity.DocBoleta, Unidades: 10},
		{SKU: "1", Nombre: "Saco 8kg", TipoDocumento: entity.DocNotaCredito, Unidades: 4},
	}

	r := CalcularConsumo(lineas, 50, 50)

	assert.Equal(t, int64(6), r.Consumo8)
	assert.Equal(t, int64(44), r.Stock8)
	// la nota de crédito conserva su propia fila con signo negativo
	require.Len(t, r.Detalle, 2)
	assert.Equal(t, int64(10), r.Detalle[0].Unidades)
	assert.Equal(t, int64(-4), r.Detalle[1].Unidades)
	assert.Equal(t, int64(-4), r.Detalle[1].Bolsas8)
}

func TestCalcularConsumo_SoloDevoluciones(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "2", Nombre: "Saco 16kg", TipoDocumento: entity.DocNotaCredito, Unidades: 3},
	}

	r := CalcularConsumo(lineas, 10, 10)

	// el consumo negativo devuelve bolsas al stock
	assert.Equal(t, int64(-6), r.Consumo8)
	assert.Equal(t, int64(16), r.Stock8)
}

func TestCalcularConsumo_SKUsSinMapear(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "99", Nombre: "Granel", TipoDocumento: entity.DocBoleta, Unidades: 20},
		{SKU: "42", Nombre: "Promo", TipoDocumento: entity.DocBoleta, Unidades: 1},
		{SKU: "99", Nombre: "Granel", TipoDocumento: entity.DocFactura, Unidades: 5},
		{SKU: "1", Nombre: "Saco 8kg", TipoDocumento: entity.DocBoleta, Unidades: 2},
	}

	r := CalcularConsumo(lineas, 100, 100)

	// los SKUs sin equivalencia no consumen y se listan una vez, ordenados
	assert.Equal(t, []string{"42", "99"}, r.SKUsSinMapear)
	assert.Equal(t, int64(2), r.Consumo8)
	assert.Len(t, r.Detalle, 1)
}

func TestCalcularConsumo_SinMapearConNetoCero(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "77", Nombre: "Muestra", TipoDocumento: entity.DocBoleta, Unidades: 3},
		{SKU: "77", Nombre: "Muestra", TipoDocumento: entity.DocNotaCredito, Unidades: 3},
	}

	r := CalcularConsumo(lineas, 10, 10)

	// aunque venta y devolución se anulen, el SKU se movió y se reporta
	assert.Equal(t, []string{"77"}, r.SKUsSinMapear)
}

func TestCalcularConsumo_SinMapearIgnoraSKUVacio(t *testing.T) {
	lineas := []LineaVenta{
		{SKU: "  ", Nombre: "Ajuste manual", TipoDocumento: entity.DocBoleta, Unidades: 1},
		{SKU: " 42 ", Nombre: "Promo", TipoDocumento: entity.DocBoleta, Unidades: 1},
		{SKU: "88", Nombre: "Granel", TipoDocumento: entity.DocBoleta, Unidades: 0},
	}

	r := CalcularConsumo(lineas, 10, 10)

	// el SKU vacío no se reporta, el resto se recorta; sin unidades tampoco cuenta
	assert.Equal(t, []string{"42"}, r.SKUsSinMapear)
}

func TestCalcularConsumo_SinVentas(t *testing.T) {
	r := CalcularConsumo(nil, 1091, 854)

	assert.Equal(t, int64(1091), r.Stock8)
	assert.Equal(t, int64(854), r.Stock20)
	assert.Empty(t, r.Detalle)
	assert.Empty(t, r.SKUsSinMapear)
}

func TestProyectarStock(t *testing.T) {
	p := ProyectarStock(decimal.NewFromInt(1500), decimal.RequireFromString("48.5"))

	require.NotNil(t, p.DiasStock)
	// 1500 / 48.5 = 30.92... → 30.9
	assert.True(t, decimal.RequireFromString("30.9").Equal(*p.DiasStock))
}

func TestProyectarStock_SinVentas(t *testing.T) {
	p := ProyectarStock(decimal.NewFromInt(1500), decimal.Zero)

	assert.Nil(t, p.DiasStock)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.KilosDisponibles))
}
