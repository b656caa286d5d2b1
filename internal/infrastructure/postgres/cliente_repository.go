package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jorge052011/crm-distribuidora/internal/domain"
	"github.com/jorge052011/crm-distribuidora/internal/domain/entity"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente nuevo, asignando id y timestamps.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	cliente.ID = uuid.NewString()
	now := time.Now()
	cliente.CreatedAt = now
	cliente.UpdatedAt = now

	query := `
		INSERT INTO clientes (id, nombre, telefono, email, comuna, segmento, direccion, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Telefono, cliente.Email, cliente.Comuna,
		cliente.Segmento, cliente.Direccion, cliente.Notas, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id; nil si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, telefono, email, comuna, segmento, direccion, notas, created_at, updated_at
		FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByTelefono búsqueda exacta por teléfono; nil si no existe.
func (r *ClienteRepo) GetByTelefono(telefono string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, telefono, email, comuna, segmento, direccion, notas, created_at, updated_at
		FROM clientes WHERE telefono = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, telefono))
}

func (r *ClienteRepo) scanOne(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.Comuna,
		&c.Segmento, &c.Direccion, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List devuelve la página filtrada de clientes con sus estadísticas de
// compra, más el total de filas que calzan con el filtro.
func (r *ClienteRepo) List(filtro repository.ClienteFiltro) ([]repository.ClienteConStats, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filtro.Buscar != "" {
		where += ` AND c.nombre ILIKE ` + arg("%"+filtro.Buscar+"%")
	}
	if filtro.Comuna != "" {
		where += ` AND c.comuna = ` + arg(filtro.Comuna)
	}
	if filtro.Segmento != "" {
		where += ` AND c.segmento = ` + arg(filtro.Segmento)
	}

	having := ``
	if filtro.MinKilos.IsPositive() {
		having = ` HAVING COALESCE(SUM(CASE WHEN v.tipo_documento = 'nota_credito' THEN -v.kilos_total ELSE v.kilos_total END), 0) >= ` + arg(filtro.MinKilos)
	}

	orden := ` ORDER BY c.nombre`
	switch filtro.Orden {
	case "kilos_desc":
		orden = ` ORDER BY kilos_acumulados DESC`
	case "kilos_asc":
		orden = ` ORDER BY kilos_acumulados ASC`
	case "gasto_desc":
		orden = ` ORDER BY gasto_total DESC`
	case "gasto_asc":
		orden = ` ORDER BY gasto_total ASC`
	}

	base := `
		FROM clientes c
		LEFT JOIN ventas v ON v.cliente_id = c.id` + where + `
		GROUP BY c.id` + having

	countQuery := `SELECT COUNT(*) FROM (SELECT c.id ` + base + `) sub`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	query := `
		SELECT c.id, c.nombre, c.telefono, c.email, c.comuna, c.segmento, c.direccion, c.notas,
		       c.created_at, c.updated_at,
		       COALESCE(SUM(CASE WHEN v.tipo_documento = 'nota_credito' THEN -v.kilos_total ELSE v.kilos_total END), 0) AS kilos_acumulados,
		       COALESCE(SUM(CASE WHEN v.tipo_documento = 'nota_credito' THEN -v.monto_total ELSE v.monto_total END), 0) AS gasto_total,
		       MAX(v.fecha) AS ultima_compra,
		       COUNT(v.id) FILTER (WHERE v.tipo_documento <> 'nota_credito') AS frecuencia ` +
		base + orden + ` LIMIT ` + arg(filtro.Limit) + ` OFFSET ` + arg(filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []repository.ClienteConStats
	for rows.Next() {
		var c repository.ClienteConStats
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.Comuna, &c.Segmento,
			&c.Direccion, &c.Notas, &c.CreatedAt, &c.UpdatedAt,
			&c.KilosAcumulados, &c.GastoTotal, &c.UltimaCompra, &c.Frecuencia); err != nil {
			return nil, 0, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Comunas lista las comunas distintas no vacías, ordenadas.
func (r *ClienteRepo) Comunas() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT comuna FROM clientes WHERE comuna <> '' ORDER BY comuna`)
	if err != nil {
		return nil, fmt.Errorf("list comunas: %w", err)
	}
	defer rows.Close()

	var comunas []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan comuna: %w", err)
		}
		comunas = append(comunas, c)
	}
	return comunas, rows.Err()
}

// Update actualiza los datos del cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	cliente.UpdatedAt = time.Now()
	query := `
		UPDATE clientes
		SET nombre = $2, telefono = $3, email = $4, comuna = $5, segmento = $6,
		    direccion = $7, notas = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Telefono, cliente.Email, cliente.Comuna,
		cliente.Segmento, cliente.Direccion, cliente.Notas, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina el cliente. Con ventas asociadas la base rechaza el borrado.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene ventas asociadas", domain.ErrInvalidInput)
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
