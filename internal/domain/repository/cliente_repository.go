package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
)

// ClienteFiltro filtros del listado de clientes.
type ClienteFiltro struct {
	Buscar   string          // subcadena del nombre, case-insensitive
	Comuna   string
	Segmento string
	MinKilos decimal.Decimal // solo clientes con kilos acumulados >= MinKilos
	Orden    string          // kilos_desc | kilos_asc | gasto_desc | gasto_asc | "" (por id)
	Limit    int
	Offset   int
}

// ClienteConStats cliente con los agregados de sus ventas.
type ClienteConStats struct {
	entity.Cliente
	KilosAcumulados decimal.Decimal
	GastoTotal      decimal.Decimal
	UltimaCompra    *time.Time
	Frecuencia      int
}

// ClienteRepository persistencia de clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	// GetByTelefono búsqueda exacta por teléfono; nil si no existe.
	GetByTelefono(telefono string) (*entity.Cliente, error)
	// List devuelve la página filtrada junto con el total de filas que calzan.
	List(filtro ClienteFiltro) ([]ClienteConStats, int, error)
	// Comunas lista las comunas distintas no vacías, ordenadas.
	Comunas() ([]string, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
