package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto formato de venta (combinación de bolsas) identificado por SKU.
type Producto struct {
	ID        string
	SKU       string
	Nombre    string
	PesoKg    decimal.Decimal // peso unitario
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
