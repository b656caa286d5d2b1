package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var tiposDocumento = map[string]bool{
	entity.DocBoleta:      true,
	entity.DocFactura:     true,
	entity.DocNotaCredito: true,
}

// VentaUseCase CRUD de ventas y sus líneas. Las operaciones sobre líneas
// recalculan los kilos totales de la venta dentro de una transacción.
type VentaUseCase struct {
	ventas   repository.VentaRepository
	clientes repository.ClienteRepository
	tx       repository.TxRunner
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventas repository.VentaRepository, clientes repository.ClienteRepository, tx repository.TxRunner) *VentaUseCase {
	return &VentaUseCase{ventas: ventas, clientes: clientes, tx: tx}
}

// Crear registra una venta sin líneas. Los kilos parten en cero y se
// actualizan al agregar líneas.
func (uc *VentaUseCase) Crear(req dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if err := validarVenta(req); err != nil {
		return nil, err
	}
	cliente, err := uc.clientes.GetByID(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente de la venta: %w", err)
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, req.ClienteID)
	}

	venta := &entity.Venta{
		ClienteID:     req.ClienteID,
		Fecha:         req.Fecha,
		TipoDocumento: req.TipoDocumento,
		Canal:         req.Canal,
		MontoTotal:    req.MontoTotal,
		KilosTotal:    decimal.Zero,
	}
	if err := uc.ventas.Create(venta); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	return ventaResponse(venta, cliente.Nombre), nil
}

// Obtener devuelve la venta con sus líneas.
func (uc *VentaUseCase) Obtener(id string) (*dto.VentaDetalleResponse, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.ventas.ItemsByVenta(id)
	if err != nil {
		return nil, fmt.Errorf("líneas de la venta: %w", err)
	}

	out := &dto.VentaDetalleResponse{
		Venta: *ventaResponse(venta, ""),
		Items: make([]dto.VentaItemResponse, len(items)),
	}
	for i, item := range items {
		out.Items[i] = dto.VentaItemResponse{
			ID:             item.ID,
			ProductoID:     item.ProductoID,
			SKU:            item.SKU,
			ProductoNombre: item.ProductoNombre,
			Cantidad:       item.Cantidad,
			Kilos:          item.PesoKg.Mul(decimal.NewFromInt(int64(item.Cantidad))),
		}
	}
	return out, nil
}

// Listar devuelve la página filtrada de ventas.
func (uc *VentaUseCase) Listar(req dto.VentaListRequest) (*dto.VentaListResponse, error) {
	req.DefaultPage()

	filtro := repository.VentaFiltro{
		TipoDocumento: req.TipoDocumento,
		Canal:         req.Canal,
		BuscarCliente: req.BuscarCliente,
		OrdenID:       req.OrdenID,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}
	var err error
	if filtro.MinKilos, err = decimalOpcional(req.MinKilos, "min_kilos"); err != nil {
		return nil, err
	}
	if filtro.MaxKilos, err = decimalOpcional(req.MaxKilos, "max_kilos"); err != nil {
		return nil, err
	}

	ventas, total, err := uc.ventas.List(filtro)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}

	out := &dto.VentaListResponse{
		Ventas: make([]dto.VentaResponse, len(ventas)),
		Page:   dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: total},
	}
	for i, v := range ventas {
		out.Ventas[i] = *ventaResponse(&v.Venta, v.ClienteNombre)
	}
	return out, nil
}

// Actualizar reemplaza los datos de la venta (no toca las líneas).
func (uc *VentaUseCase) Actualizar(id string, req dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	if err := validarVenta(req); err != nil {
		return nil, err
	}
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}

	venta.ClienteID = req.ClienteID
	venta.Fecha = req.Fecha
	venta.TipoDocumento = req.TipoDocumento
	venta.Canal = req.Canal
	venta.MontoTotal = req.MontoTotal

	if err := uc.ventas.Update(venta); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}
	return ventaResponse(venta, ""), nil
}

// Eliminar borra la venta y sus líneas (cascada en la base).
func (uc *VentaUseCase) Eliminar(id string) error {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return domain.ErrNotFound
	}
	if err := uc.ventas.Delete(id); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}

// AgregarItem agrega una línea y suma sus kilos al total de la venta, todo
// dentro de una transacción.
func (uc *VentaUseCase) AgregarItem(ctx context.Context, ventaID string, req dto.AddItemRequest) (*dto.VentaItemResponse, error) {
	if req.Cantidad <= 0 {
		return nil, fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
	}

	var out dto.VentaItemResponse
	err := uc.tx.WithinTx(ctx, func(tx repository.TxRepos) error {
		venta, err := tx.Ventas.GetByID(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, ventaID)
		}
		producto, err := tx.Productos.GetByID(req.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductoID)
		}

		item := &entity.VentaItem{
			VentaID:    ventaID,
			ProductoID: req.ProductoID,
			Cantidad:   req.Cantidad,
		}
		if err := tx.Ventas.CreateItem(item); err != nil {
			return err
		}

		kilos := producto.PesoKg.Mul(decimal.NewFromInt(int64(req.Cantidad)))
		venta.KilosTotal = venta.KilosTotal.Add(kilos)
		if err := tx.Ventas.Update(venta); err != nil {
			return err
		}

		out = dto.VentaItemResponse{
			ID:             item.ID,
			ProductoID:     producto.ID,
			SKU:            producto.SKU,
			ProductoNombre: producto.Nombre,
			Cantidad:       req.Cantidad,
			Kilos:          kilos,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("agregar línea: %w", err)
	}
	return &out, nil
}

// EliminarItem borra una línea y descuenta sus kilos del total de la venta.
func (uc *VentaUseCase) EliminarItem(ctx context.Context, ventaID, itemID string) error {
	err := uc.tx.WithinTx(ctx, func(tx repository.TxRepos) error {
		item, err := tx.Ventas.GetItem(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.VentaID != ventaID {
			return fmt.Errorf("%w: línea %s", domain.ErrNotFound, itemID)
		}
		venta, err := tx.Ventas.GetByID(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, ventaID)
		}
		producto, err := tx.Productos.GetByID(item.ProductoID)
		if err != nil {
			return err
		}

		if err := tx.Ventas.DeleteItem(itemID); err != nil {
			return err
		}
		if producto != nil {
			kilos := producto.PesoKg.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			venta.KilosTotal = venta.KilosTotal.Sub(kilos)
			if err := tx.Ventas.Update(venta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("eliminar línea: %w", err)
	}
	return nil
}

func validarVenta(req dto.CreateVentaRequest) error {
	if req.ClienteID == "" {
		return fmt.Errorf("%w: cliente_id requerido", domain.ErrInvalidInput)
	}
	if !tiposDocumento[req.TipoDocumento] {
		return fmt.Errorf("%w: tipo_documento desconocido %q", domain.ErrInvalidInput, req.TipoDocumento)
	}
	canalOK := false
	for _, c := range entity.Canales {
		if c == req.Canal {
			canalOK = true
			break
		}
	}
	if !canalOK {
		return fmt.Errorf("%w: canal desconocido %q", domain.ErrInvalidInput, req.Canal)
	}
	if req.MontoTotal.IsNegative() {
		return fmt.Errorf("%w: monto_total no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func decimalOpcional(s, campo string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, campo)
	}
	return d, nil
}

func ventaResponse(v *entity.Venta, clienteNombre string) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:            v.ID,
		ClienteID:     v.ClienteID,
		ClienteNombre: clienteNombre,
		Fecha:         v.Fecha,
		TipoDocumento: v.TipoDocumento,
		Canal:         v.Canal,
		MontoTotal:    v.MontoTotal,
		KilosTotal:    v.KilosTotal,
	}
}
