package repository

import "context"

// TxRepos repositorios ligados a una misma transacción.
type TxRepos struct {
	Ventas    VentaRepository
	Productos ProductoRepository
}

// TxRunner ejecuta un callback dentro de una transacción: commit si devuelve
// nil, rollback si devuelve error.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx TxRepos) error) error
}
