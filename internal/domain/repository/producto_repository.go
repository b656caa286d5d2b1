package repository

import "github.com/jorge052011/crm-distribuidora/internal/domain/entity"

// ProductoRepository persistencia de productos (formatos de bolsas).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetBySKU(sku string) (*entity.Producto, error)
	// ListActivos productos activos ordenados por nombre.
	ListActivos() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
}
