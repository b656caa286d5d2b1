package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVentaRequest cuerpo de POST /api/ventas.
type CreateVentaRequest struct {
	ClienteID     string          `json:"cliente_id"`
	Fecha         time.Time       `json:"fecha"`
	TipoDocumento string          `json:"tipo_documento"`
	Canal         string          `json:"canal"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
}

// UpdateVentaRequest cuerpo de PUT /api/ventas/:id.
type UpdateVentaRequest = CreateVentaRequest

// VentaListRequest filtros de GET /api/ventas.
type VentaListRequest struct {
	TipoDocumento string `query:"tipo_documento"`
	Canal         string `query:"canal"`
	MinKilos      string `query:"min_kilos"`
	MaxKilos      string `query:"max_kilos"`
	BuscarCliente string `query:"buscar_cliente"`
	OrdenID       string `query:"orden_id"`
	PageRequest
}

// VentaResponse venta con el nombre del cliente.
type VentaResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre,omitempty"`
	Fecha         time.Time       `json:"fecha"`
	TipoDocumento string          `json:"tipo_documento"`
	Canal         string          `json:"canal"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	KilosTotal    decimal.Decimal `json:"kilos_total"`
}

// VentaListResponse página de ventas.
type VentaListResponse struct {
	Ventas []VentaResponse `json:"ventas"`
	Page   PageResponse    `json:"page"`
}

// AddItemRequest cuerpo de POST /api/ventas/:id/items.
type AddItemRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// VentaItemResponse línea de venta con el producto resuelto.
type VentaItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	SKU            string          `json:"sku"`
	ProductoNombre string          `json:"producto_nombre"`
	Cantidad       int             `json:"cantidad"`
	Kilos          decimal.Decimal `json:"kilos"` // cantidad × peso unitario
}

// VentaDetalleResponse venta con sus líneas.
type VentaDetalleResponse struct {
	Venta VentaResponse       `json:"venta"`
	Items []VentaItemResponse `json:"items"`
}
