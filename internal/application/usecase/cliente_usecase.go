package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var segmentosValidos = map[string]bool{
	entity.SegmentoHogar:      true,
	entity.SegmentoRestaurant: true,
	entity.SegmentoRevendedor: true,
}

// ClienteUseCase CRUD de clientes con estadísticas de compra.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Crear registra un cliente nuevo. El teléfono, si viene, debe ser único.
func (uc *ClienteUseCase) Crear(req dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validarCliente(req); err != nil {
		return nil, err
	}
	if req.Telefono != "" {
		existente, err := uc.repo.GetByTelefono(req.Telefono)
		if err != nil {
			return nil, fmt.Errorf("cliente por teléfono: %w", err)
		}
		if existente != nil {
			return nil, fmt.Errorf("%w: ya existe un cliente con ese teléfono", domain.ErrDuplicate)
		}
	}

	cliente := &entity.Cliente{
		Nombre:    strings.TrimSpace(req.Nombre),
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     strings.TrimSpace(req.Email),
		Comuna:    strings.TrimSpace(req.Comuna),
		Segmento:  req.Segmento,
		Direccion: req.Direccion,
		Notas:     req.Notas,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return clienteSinStats(cliente), nil
}

// Obtener busca un cliente por id.
func (uc *ClienteUseCase) Obtener(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return clienteSinStats(cliente), nil
}

// Listar devuelve la página filtrada más las comunas disponibles.
func (uc *ClienteUseCase) Listar(req dto.ClienteListRequest) (*dto.ClienteListResponse, error) {
	req.DefaultPage()

	filtro := repository.ClienteFiltro{
		Buscar:   req.Buscar,
		Comuna:   req.Comuna,
		Segmento: req.Segmento,
		Orden:    req.Orden,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.MinKilos != "" {
		min, err := decimal.NewFromString(req.MinKilos)
		if err != nil {
			return nil, fmt.Errorf("%w: min_kilos inválido", domain.ErrInvalidInput)
		}
		filtro.MinKilos = min
	}

	clientes, total, err := uc.repo.List(filtro)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	comunas, err := uc.repo.Comunas()
	if err != nil {
		return nil, fmt.Errorf("listar comunas: %w", err)
	}

	out := &dto.ClienteListResponse{
		Clientes: make([]dto.ClienteResponse, len(clientes)),
		Comunas:  comunas,
		Page:     dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: total},
	}
	for i, c := range clientes {
		out.Clientes[i] = dto.ClienteResponse{
			ID:              c.ID,
			Nombre:          c.Nombre,
			Telefono:        c.Telefono,
			Email:           c.Email,
			Comuna:          c.Comuna,
			Segmento:        c.Segmento,
			Direccion:       c.Direccion,
			Notas:           c.Notas,
			KilosAcumulados: c.KilosAcumulados,
			GastoTotal:      c.GastoTotal,
			UltimaCompra:    c.UltimaCompra,
			Frecuencia:      c.Frecuencia,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
		}
	}
	return out, nil
}

// Actualizar reemplaza los datos del cliente.
func (uc *ClienteUseCase) Actualizar(id string, req dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validarCliente(req); err != nil {
		return nil, err
	}
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	cliente.Nombre = strings.TrimSpace(req.Nombre)
	cliente.Telefono = strings.TrimSpace(req.Telefono)
	cliente.Email = strings.TrimSpace(req.Email)
	cliente.Comuna = strings.TrimSpace(req.Comuna)
	cliente.Segmento = req.Segmento
	cliente.Direccion = req.Direccion
	cliente.Notas = req.Notas

	if err := uc.repo.Update(cliente); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return clienteSinStats(cliente), nil
}

// Eliminar borra el cliente. Falla si tiene ventas asociadas (restricción de
// integridad en la base).
func (uc *ClienteUseCase) Eliminar(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}

func validarCliente(req dto.CreateClienteRequest) error {
	if strings.TrimSpace(req.Nombre) == "" {
		return fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if req.Segmento != "" && !segmentosValidos[req.Segmento] {
		return fmt.Errorf("%w: segmento desconocido %q", domain.ErrInvalidInput, req.Segmento)
	}
	return nil
}

func clienteSinStats(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Comuna:    c.Comuna,
		Segmento:  c.Segmento,
		Direccion: c.Direccion,
		Notas:     c.Notas,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
