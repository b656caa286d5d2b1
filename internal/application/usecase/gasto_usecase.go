package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var tasaIVA = decimal.RequireFromString("0.19")

// GastoUseCase CRUD de gastos operacionales. El IVA se calcula al registrar:
// 19% del neto cuando el gasto lo lleva, cero si no.
type GastoUseCase struct {
	repo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(repo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{repo: repo}
}

// Crear registra un gasto.
func (uc *GastoUseCase) Crear(req dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	if err := validarGasto(req); err != nil {
		return nil, err
	}

	gasto := &entity.GastoOperacional{
		Fecha:     req.Fecha,
		Tipo:      req.Tipo,
		Glosa:     req.Glosa,
		MontoNeto: req.MontoNeto,
		AplicaIVA: req.AplicaIVA,
		IVA:       ivaGasto(req.MontoNeto, req.AplicaIVA),
	}
	if err := uc.repo.Create(gasto); err != nil {
		return nil, fmt.Errorf("crear gasto: %w", err)
	}
	return gastoResponse(gasto), nil
}

// Obtener busca un gasto por id.
func (uc *GastoUseCase) Obtener(id string) (*dto.GastoResponse, error) {
	gasto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener gasto: %w", err)
	}
	if gasto == nil {
		return nil, domain.ErrNotFound
	}
	return gastoResponse(gasto), nil
}

// Listar devuelve la página filtrada, más recientes primero.
func (uc *GastoUseCase) Listar(req dto.GastoListRequest) (*dto.GastoListResponse, error) {
	req.DefaultPage()

	filtro := repository.GastoFiltro{
		Tipo:   req.Tipo,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	var err error
	if filtro.Desde, err = fechaOpcional(req.Desde, "desde"); err != nil {
		return nil, err
	}
	if filtro.Hasta, err = fechaOpcional(req.Hasta, "hasta"); err != nil {
		return nil, err
	}

	gastos, total, err := uc.repo.List(filtro)
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}

	out := &dto.GastoListResponse{
		Gastos: make([]dto.GastoResponse, len(gastos)),
		Page:   dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: total},
	}
	for i, g := range gastos {
		out.Gastos[i] = *gastoResponse(g)
	}
	return out, nil
}

// Actualizar reemplaza los datos del gasto y recalcula el IVA.
func (uc *GastoUseCase) Actualizar(id string, req dto.UpdateGastoRequest) (*dto.GastoResponse, error) {
	if err := validarGasto(req); err != nil {
		return nil, err
	}
	gasto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener gasto: %w", err)
	}
	if gasto == nil {
		return nil, domain.ErrNotFound
	}

	gasto.Fecha = req.Fecha
	gasto.Tipo = req.Tipo
	gasto.Glosa = req.Glosa
	gasto.MontoNeto = req.MontoNeto
	gasto.AplicaIVA = req.AplicaIVA
	gasto.IVA = ivaGasto(req.MontoNeto, req.AplicaIVA)

	if err := uc.repo.Update(gasto); err != nil {
		return nil, fmt.Errorf("actualizar gasto: %w", err)
	}
	return gastoResponse(gasto), nil
}

// Eliminar borra el gasto.
func (uc *GastoUseCase) Eliminar(id string) error {
	gasto, err := uc.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("obtener gasto: %w", err)
	}
	if gasto == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar gasto: %w", err)
	}
	return nil
}

func validarGasto(req dto.CreateGastoRequest) error {
	tipoOK := false
	for _, t := range entity.TiposGasto {
		if t == req.Tipo {
			tipoOK = true
			break
		}
	}
	if !tipoOK {
		return fmt.Errorf("%w: tipo de gasto desconocido %q", domain.ErrInvalidInput, req.Tipo)
	}
	if req.MontoNeto.IsNegative() {
		return fmt.Errorf("%w: monto_neto no puede ser negativo", domain.ErrInvalidInput)
	}
	if req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha requerida", domain.ErrInvalidInput)
	}
	return nil
}

func ivaGasto(neto decimal.Decimal, aplica bool) decimal.Decimal {
	if !aplica {
		return decimal.Zero
	}
	return neto.Mul(tasaIVA).Round(2)
}

func fechaOpcional(s, campo string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(formatoFecha, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s inválido (se espera YYYY-MM-DD)", domain.ErrInvalidInput, campo)
	}
	return &t, nil
}

func gastoResponse(g *entity.GastoOperacional) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:        g.ID,
		Fecha:     g.Fecha,
		Tipo:      g.Tipo,
		Glosa:     g.Glosa,
		MontoNeto: g.MontoNeto,
		AplicaIVA: g.AplicaIVA,
		IVA:       g.IVA,
		Total:     g.MontoNeto.Add(g.IVA),
	}
}
