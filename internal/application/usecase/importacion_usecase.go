package usecase

import (
	"fmt"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

// ImportacionUseCase CRUD de importaciones. No hay borrado: un lote que ya no
// participa del costo promedio se desactiva.
type ImportacionUseCase struct {
	repo repository.ImportacionRepository
}

// NewImportacionUseCase construye el caso de uso.
func NewImportacionUseCase(repo repository.ImportacionRepository) *ImportacionUseCase {
	return &ImportacionUseCase{repo: repo}
}

// Crear registra un lote nuevo, activo y con los kilos restantes iguales a
// los netos.
func (uc *ImportacionUseCase) Crear(req dto.CreateImportacionRequest) (*dto.ImportacionResponse, error) {
	if err := validarImportacion(req); err != nil {
		return nil, err
	}

	imp := &entity.Importacion{
		Fecha:           req.Fecha,
		KilosIngresados: req.KilosIngresados,
		MermaKg:         req.MermaKg,
		CostoTotal:      req.CostoTotal,
		Activo:          true,
	}
	imp.KilosRestantes = imp.KilosNetos()

	if err := uc.repo.Create(imp); err != nil {
		return nil, fmt.Errorf("crear importación: %w", err)
	}
	return importacionResponse(imp), nil
}

// Obtener busca un lote por id.
func (uc *ImportacionUseCase) Obtener(id string) (*dto.ImportacionResponse, error) {
	imp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener importación: %w", err)
	}
	if imp == nil {
		return nil, domain.ErrNotFound
	}
	return importacionResponse(imp), nil
}

// Listar devuelve los lotes, más recientes primero.
func (uc *ImportacionUseCase) Listar(soloActivas bool) ([]dto.ImportacionResponse, error) {
	imps, err := uc.repo.List(soloActivas)
	if err != nil {
		return nil, fmt.Errorf("listar importaciones: %w", err)
	}
	out := make([]dto.ImportacionResponse, len(imps))
	for i, imp := range imps {
		out[i] = *importacionResponse(imp)
	}
	return out, nil
}

// Actualizar modifica el lote.
func (uc *ImportacionUseCase) Actualizar(id string, req dto.UpdateImportacionRequest) (*dto.ImportacionResponse, error) {
	if err := validarImportacion(dto.CreateImportacionRequest{
		Fecha:           req.Fecha,
		KilosIngresados: req.KilosIngresados,
		MermaKg:         req.MermaKg,
		CostoTotal:      req.CostoTotal,
	}); err != nil {
		return nil, err
	}
	imp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener importación: %w", err)
	}
	if imp == nil {
		return nil, domain.ErrNotFound
	}

	imp.Fecha = req.Fecha
	imp.KilosIngresados = req.KilosIngresados
	imp.MermaKg = req.MermaKg
	imp.CostoTotal = req.CostoTotal
	if req.Activo != nil {
		imp.Activo = *req.Activo
	}

	if err := uc.repo.Update(imp); err != nil {
		return nil, fmt.Errorf("actualizar importación: %w", err)
	}
	return importacionResponse(imp), nil
}

func validarImportacion(req dto.CreateImportacionRequest) error {
	if req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha requerida", domain.ErrInvalidInput)
	}
	if !req.KilosIngresados.IsPositive() {
		return fmt.Errorf("%w: kilos_ingresados debe ser positivo", domain.ErrInvalidInput)
	}
	if req.MermaKg.IsNegative() || req.MermaKg.GreaterThan(req.KilosIngresados) {
		return fmt.Errorf("%w: merma_kg fuera de rango", domain.ErrInvalidInput)
	}
	if req.CostoTotal.IsNegative() {
		return fmt.Errorf("%w: costo_total no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func importacionResponse(i *entity.Importacion) *dto.ImportacionResponse {
	return &dto.ImportacionResponse{
		ID:              i.ID,
		Fecha:           i.Fecha,
		KilosIngresados: i.KilosIngresados,
		MermaKg:         i.MermaKg,
		KilosNetos:      i.KilosNetos(),
		CostoTotal:      i.CostoTotal,
		CostoPorKg:      i.CostoPorKg(),
		Activo:          i.Activo,
	}
}
