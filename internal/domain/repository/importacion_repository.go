package repository

import "github.com/jorge052011/crm-distribuidora/internal/domain/entity"

// ImportacionRepository persistencia de importaciones de mercadería.
type ImportacionRepository interface {
	Create(importacion *entity.Importacion) error
	GetByID(id string) (*entity.Importacion, error)
	// List más recientes primero; soloActivas restringe a lotes activos.
	List(soloActivas bool) ([]*entity.Importacion, error)
	Update(importacion *entity.Importacion) error
}
