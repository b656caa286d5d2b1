package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Importacion lote de mercadería comprado. Los kilos útiles son los
// ingresados menos la merma; KilosRestantes ya la tiene descontada.
type Importacion struct {
	ID              string
	Fecha           time.Time
	KilosIngresados decimal.Decimal
	MermaKg         decimal.Decimal
	CostoTotal      decimal.Decimal
	KilosRestantes  decimal.Decimal
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// KilosNetos kilos útiles del lote (ingresados − merma).
func (i *Importacion) KilosNetos() decimal.Decimal {
	return i.KilosIngresados.Sub(i.MermaKg)
}

// CostoPorKg costo unitario del lote sobre kilos netos; cero si no hay kilos.
func (i *Importacion) CostoPorKg() decimal.Decimal {
	netos := i.KilosNetos()
	if !netos.IsPositive() {
		return decimal.Zero
	}
	return i.CostoTotal.Div(netos).Round(2)
}
