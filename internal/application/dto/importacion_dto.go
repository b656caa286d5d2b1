package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateImportacionRequest cuerpo de POST /api/importaciones.
type CreateImportacionRequest struct {
	Fecha           time.Time       `json:"fecha"`
	KilosIngresados decimal.Decimal `json:"kilos_ingresados"`
	MermaKg         decimal.Decimal `json:"merma_kg"`
	CostoTotal      decimal.Decimal `json:"costo_total"`
}

// UpdateImportacionRequest cuerpo de PUT /api/importaciones/:id.
type UpdateImportacionRequest struct {
	Fecha           time.Time       `json:"fecha"`
	KilosIngresados decimal.Decimal `json:"kilos_ingresados"`
	MermaKg         decimal.Decimal `json:"merma_kg"`
	CostoTotal      decimal.Decimal `json:"costo_total"`
	Activo          *bool           `json:"activo"`
}

// ImportacionResponse importación con sus derivados.
type ImportacionResponse struct {
	ID              string          `json:"id"`
	Fecha           time.Time       `json:"fecha"`
	KilosIngresados decimal.Decimal `json:"kilos_ingresados"`
	MermaKg         decimal.Decimal `json:"merma_kg"`
	KilosNetos      decimal.Decimal `json:"kilos_netos"`
	CostoTotal      decimal.Decimal `json:"costo_total"`
	CostoPorKg      decimal.Decimal `json:"costo_por_kg"`
	Activo          bool            `json:"activo"`
}
