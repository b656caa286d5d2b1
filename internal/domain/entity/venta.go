package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de una venta. Una nota de crédito reversa una venta
// anterior: los agregados la restan en vez de sumarla.
const (
	DocBoleta      = "boleta"
	DocFactura     = "factura"
	DocNotaCredito = "nota_credito"
)

// Canales de venta conocidos, en el orden en que se reportan.
var Canales = []string{"whatsapp", "web", "presencial", "mayorista"}

// Venta representa una transacción: monto bruto (IVA incluido) y kilos totales.
type Venta struct {
	ID            string
	ClienteID     string
	Fecha         time.Time
	TipoDocumento string
	Canal         string
	MontoTotal    decimal.Decimal // bruto, IVA incluido
	KilosTotal    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EsNotaCredito indica si la venta reversa (resta) en los agregados.
func (v *Venta) EsNotaCredito() bool {
	return v.TipoDocumento == DocNotaCredito
}

// VentaItem línea de una venta. Kilos = Cantidad × peso unitario del producto.
type VentaItem struct {
	ID         string
	VentaID    string
	ProductoID string
	Cantidad   int
	CreatedAt  time.Time
}
