package repository

import (
	"time"

	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// GastoFiltro filtros del listado de gastos operacionales.
type GastoFiltro struct {
	Tipo   string
	Desde  *time.Time
	Hasta  *time.Time
	Limit  int
	Offset int
}

// GastoRepository persistencia de gastos operacionales.
type GastoRepository interface {
	Create(gasto *entity.GastoOperacional) error
	GetByID(id string) (*entity.GastoOperacional, error)
	// List más recientes primero.
	List(filtro GastoFiltro) ([]*entity.GastoOperacional, int, error)
	Update(gasto *entity.GastoOperacional) error
	Delete(id string) error
}
