package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClienteRequest cuerpo de POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Comuna    string `json:"comuna"`
	Segmento  string `json:"segmento"`
	Direccion string `json:"direccion"`
	Notas     string `json:"notas"`
}

// UpdateClienteRequest cuerpo de PUT /api/clientes/:id.
type UpdateClienteRequest = CreateClienteRequest

// ClienteListRequest filtros de GET /api/clientes.
type ClienteListRequest struct {
	Buscar   string `query:"buscar"`
	Comuna   string `query:"comuna"`
	Segmento string `query:"segmento"`
	MinKilos string `query:"min_kilos"`
	Orden    string `query:"orden"`
	PageRequest
}

// ClienteResponse cliente con los agregados de sus ventas.
type ClienteResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Telefono        string          `json:"telefono"`
	Email           string          `json:"email"`
	Comuna          string          `json:"comuna"`
	Segmento        string          `json:"segmento"`
	Direccion       string          `json:"direccion"`
	Notas           string          `json:"notas"`
	KilosAcumulados decimal.Decimal `json:"kilos_acumulados"`
	GastoTotal      decimal.Decimal `json:"gasto_total"`
	UltimaCompra    *time.Time      `json:"ultima_compra"`
	Frecuencia      int             `json:"frecuencia"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ClienteListResponse página de clientes más las comunas disponibles para filtrar.
type ClienteListResponse struct {
	Clientes []ClienteResponse `json:"clientes"`
	Comunas  []string          `json:"comunas"`
	Page     PageResponse      `json:"page"`
}
