package usecase

import (
	"fmt"
	"strings"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

// ProductoUseCase CRUD de productos (formatos de venta).
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear registra un producto nuevo; el SKU debe ser único.
func (uc *ProductoUseCase) Crear(req dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	sku := strings.TrimSpace(req.SKU)
	if sku == "" || strings.TrimSpace(req.Nombre) == "" {
		return nil, fmt.Errorf("%w: sku y nombre requeridos", domain.ErrInvalidInput)
	}
	if !req.PesoKg.IsPositive() {
		return nil, fmt.Errorf("%w: peso_kg debe ser positivo", domain.ErrInvalidInput)
	}
	existente, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, fmt.Errorf("producto por sku: %w", err)
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: sku %s", domain.ErrDuplicate, sku)
	}

	producto := &entity.Producto{
		SKU:    sku,
		Nombre: strings.TrimSpace(req.Nombre),
		PesoKg: req.PesoKg,
		Activo: true,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return productoResponse(producto), nil
}

// Obtener busca un producto por id.
func (uc *ProductoUseCase) Obtener(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return productoResponse(producto), nil
}

// ListarActivos devuelve los productos activos ordenados por nombre.
func (uc *ProductoUseCase) ListarActivos() ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.ListActivos()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductoResponse, len(productos))
	for i, p := range productos {
		out[i] = *productoResponse(p)
	}
	return out, nil
}

// Actualizar modifica nombre, peso y estado. El SKU no cambia: las líneas de
// venta históricas dependen de él.
func (uc *ProductoUseCase) Actualizar(id string, req dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(req.Nombre) != "" {
		producto.Nombre = strings.TrimSpace(req.Nombre)
	}
	if req.PesoKg.IsPositive() {
		producto.PesoKg = req.PesoKg
	}
	if req.Activo != nil {
		producto.Activo = *req.Activo
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return productoResponse(producto), nil
}

func productoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:     p.ID,
		SKU:    p.SKU,
		Nombre: p.Nombre,
		PesoKg: p.PesoKg,
		Activo: p.Activo,
	}
}
