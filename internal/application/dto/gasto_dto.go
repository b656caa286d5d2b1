package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGastoRequest cuerpo de POST /api/gastos. El IVA se calcula como el
// 19% del neto cuando AplicaIVA es verdadero.
type CreateGastoRequest struct {
	Fecha     time.Time       `json:"fecha"`
	Tipo      string          `json:"tipo"`
	Glosa     string          `json:"glosa"`
	MontoNeto decimal.Decimal `json:"monto_neto"`
	AplicaIVA bool            `json:"aplica_iva"`
}

// UpdateGastoRequest cuerpo de PUT /api/gastos/:id.
type UpdateGastoRequest = CreateGastoRequest

// GastoListRequest filtros de GET /api/gastos.
type GastoListRequest struct {
	Tipo  string `query:"tipo"`
	Desde string `query:"desde"`
	Hasta string `query:"hasta"`
	PageRequest
}

// GastoResponse gasto serializado.
type GastoResponse struct {
	ID        string          `json:"id"`
	Fecha     time.Time       `json:"fecha"`
	Tipo      string          `json:"tipo"`
	Glosa     string          `json:"glosa"`
	MontoNeto decimal.Decimal `json:"monto_neto"`
	AplicaIVA bool            `json:"aplica_iva"`
	IVA       decimal.Decimal `json:"iva"`
	Total     decimal.Decimal `json:"total"`
}

// GastoListResponse página de gastos.
type GastoListResponse struct {
	Gastos []GastoResponse `json:"gastos"`
	Page   PageResponse    `json:"page"`
}
