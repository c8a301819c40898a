package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/canastillas-api/internal/application/tracking"
	"github.com/jhoicas/canastillas-api/internal/application/usecase"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

var (
	_ tracking.TxRunner     = (*TxRunner)(nil)
	_ usecase.AdminTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// adquisición con alcance acotado del recurso: Commit en el camino feliz,
// Rollback diferido en cualquier otro camino de salida.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de estado
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	canRepo repository.CanastillaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimientoRepository(tx), NewCanastillaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdmin inicia una transacción con los tres repositorios (para las
// eliminaciones que cuentan movimientos dependientes antes de borrar).
func (r *TxRunner) RunAdmin(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	canRepo repository.CanastillaRepository,
	userRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimientoRepository(tx), NewCanastillaRepository(tx), NewUsuarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
