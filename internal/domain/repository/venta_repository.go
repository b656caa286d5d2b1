package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// VentaFiltro filtros del listado de ventas.
type VentaFiltro struct {
	TipoDocumento string
	Canal         string
	MinKilos      decimal.Decimal
	MaxKilos      decimal.Decimal
	BuscarCliente string // subcadena del nombre del cliente
	OrdenID       string // asc | desc (default desc)
	Limit         int
	Offset        int
}

// VentaConCliente venta con el nombre del cliente resuelto para el listado.
type VentaConCliente struct {
	entity.Venta
	ClienteNombre string
}

// ItemConProducto línea de venta con SKU, nombre y peso del producto.
type ItemConProducto struct {
	entity.VentaItem
	SKU            string
	ProductoNombre string
	PesoKg         decimal.Decimal
}

// VentaRepository persistencia de ventas y sus líneas.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	List(filtro VentaFiltro) ([]VentaConCliente, int, error)
	Update(venta *entity.Venta) error
	Delete(id string) error

	// Items listados por venta, en orden de inserción.
	ItemsByVenta(ventaID string) ([]ItemConProducto, error)
	CreateItem(item *entity.VentaItem) error
	GetItem(itemID string) (*entity.VentaItem, error)
	DeleteItem(itemID string) error
}
