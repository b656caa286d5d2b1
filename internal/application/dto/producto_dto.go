package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest cuerpo de POST /api/productos.
type CreateProductoRequest struct {
	SKU    string          `json:"sku"`
	Nombre string          `json:"nombre"`
	PesoKg decimal.Decimal `json:"peso_kg"`
}

// UpdateProductoRequest cuerpo de PUT /api/productos/:id.
type UpdateProductoRequest struct {
	Nombre string          `json:"nombre"`
	PesoKg decimal.Decimal `json:"peso_kg"`
	Activo *bool           `json:"activo"`
}

// ProductoResponse producto serializado.
type ProductoResponse struct {
	ID     string          `json:"id"`
	SKU    string          `json:"sku"`
	Nombre string          `json:"nombre"`
	PesoKg decimal.Decimal `json:"peso_kg"`
	Activo bool            `json:"activo"`
}
