// Package inventario implementa el cálculo puro de consumo de bolsas de
// envasado y la proyección de stock. No toca la base de datos: recibe los
// agregados ya consultados y devuelve los resultados del cálculo.
package inventario

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// Bolsas cantidad de bolsas de 8 kg y de 20 kg que consume una unidad
// vendida de un producto.
type Bolsas struct {
	B8  int64
	B20 int64
}

// MapaSKUBolsas tabla de equivalencia SKU → bolsas por unidad. Los formatos
// grandes se arman combinando bolsas de 8 y de 20 kg. Es una foto de la
// operación actual, no se deriva de los productos.
var MapaSKUBolsas = map[string]Bolsas{
	"1": {B8: 1, B20: 0}, // 8 kg
	"2": {B8: 2, B20: 0}, // 16 kg
	"3": {B8: 0, B20: 1}, // 20 kg
	"4": {B8: 3, B20: 0}, // 24 kg
	"5": {B8: 1, B20: 1}, // 28 kg
	"6": {B8: 4, B20: 0}, // 32 kg
	"7": {B8: 0, B20: 2}, // 40 kg
	"8": {B8: 5, B20: 0}, // 48 kg
}

// LineaVenta unidades vendidas de un SKU en un tipo de documento, ya
// agrupadas por la consulta.
type LineaVenta struct {
	SKU           string
	Nombre        string
	TipoDocumento string
	Unidades      int64
}

// ConsumoDetalle consumo de bolsas de una línea (SKU, tipo de documento).
// Las notas de crédito aparecen con signo negativo.
type ConsumoDetalle struct {
	SKU           string
	Nombre        string
	TipoDocumento string
	Unidades      int64
	Bolsas8       int64
	Bolsas20      int64
}

// ResultadoConsumo resultado del cálculo de consumo sobre una ventana.
type ResultadoConsumo struct {
	Consumo8      int64
	Consumo20     int64
	Stock8        int64
	Stock20       int64
	Detalle       []ConsumoDetalle
	SKUsSinMapear []string
}

// CalcularConsumo acumula el consumo de bolsas de las líneas dadas y lo
// descuenta de los stocks iniciales. Las notas de crédito devuelven bolsas
// (signo negativo). Los SKUs sin equivalencia no consumen y se reportan una
// sola vez, ordenados: basta que cualquier línea del SKU traiga unidades,
// aunque una venta y su nota de crédito se anulen entre sí. El SKU vacío no
// se reporta.
func CalcularConsumo(lineas []LineaVenta, stockInicial8, stockInicial20 int64) ResultadoConsumo {
	resultado := ResultadoConsumo{
		Detalle: make([]ConsumoDetalle, 0, len(lineas)),
	}
	sinMapear := make(map[string]struct{})

	for _, linea := range lineas {
		sku := strings.TrimSpace(linea.SKU)
		unidades := linea.Unidades
		if linea.TipoDocumento == entity.DocNotaCredito {
			unidades = -unidades
		}

		bolsas, ok := MapaSKUBolsas[sku]
		if !ok {
			if unidades != 0 {
				sinMapear[sku] = struct{}{}
			}
			continue
		}

		b8 := unidades * bolsas.B8
		b20 := unidades * bolsas.B20
		resultado.Consumo8 += b8
		resultado.Consumo20 += b20
		resultado.Detalle = append(resultado.Detalle, ConsumoDetalle{
			SKU:           sku,
			Nombre:        linea.Nombre,
			TipoDocumento: linea.TipoDocumento,
			Unidades:      unidades,
			Bolsas8:       b8,
			Bolsas20:      b20,
		})
	}

	for sku := range sinMapear {
		if sku != "" {
			resultado.SKUsSinMapear = append(resultado.SKUsSinMapear, sku)
		}
	}
	sort.Strings(resultado.SKUsSinMapear)

	// mayor consumo absoluto primero, SKU como desempate estable
	sort.SliceStable(resultado.Detalle, func(i, j int) bool {
		di := abs(resultado.Detalle[i].Bolsas8) + abs(resultado.Detalle[i].Bolsas20)
		dj := abs(resultado.Detalle[j].Bolsas8) + abs(resultado.Detalle[j].Bolsas20)
		if di != dj {
			return di > dj
		}
		return resultado.Detalle[i].SKU < resultado.Detalle[j].SKU
	})

	resultado.Stock8 = stockInicial8 - resultado.Consumo8
	resultado.Stock20 = stockInicial20 - resultado.Consumo20
	return resultado
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Proyeccion días de venta que cubre el stock disponible. DiasStock queda en
// nil cuando la tasa de venta es cero: el stock no se agota nunca.
type Proyeccion struct {
	KilosDisponibles decimal.Decimal
	VentaDiariaKg    decimal.Decimal
	DiasStock        *decimal.Decimal
}

// ProyectarStock estima cuántos días de venta cubre el stock disponible.
// ventaDiariaKg es el promedio de kilos vendidos por día en la ventana de
// referencia. DiasStock se entrega con un decimal de precisión.
func ProyectarStock(kilosDisponibles, ventaDiariaKg decimal.Decimal) Proyeccion {
	p := Proyeccion{
		KilosDisponibles: kilosDisponibles,
		VentaDiariaKg:    ventaDiariaKg,
	}
	if !ventaDiariaKg.IsPositive() {
		return p
	}
	dias := kilosDisponibles.Div(ventaDiariaKg).Round(1)
	p.DiasStock = &dias
	return p
}
