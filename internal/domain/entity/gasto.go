package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto operacional, en el orden en que se reportan.
var TiposGasto = []string{"arriendo", "sueldos", "transporte", "insumos", "marketing", "otros"}

// GastoOperacional gasto del período. El IVA solo se contabiliza cuando
// AplicaIVA es verdadero.
type GastoOperacional struct {
	ID        string
	Fecha     time.Time
	Tipo      string
	Glosa     string
	MontoNeto decimal.Decimal
	AplicaIVA bool
	IVA       decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
