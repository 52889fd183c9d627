package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Compras-api/internal/application/lists"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ lists.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunLists inicia una transacción, ejecuta fn con los repos del ciclo de vida
// de listas atados a la tx y hace Commit o Rollback. La reserva de correlativo
// de serie solo es segura dentro de este runner.
func (r *TxRunner) RunLists(ctx context.Context, fn func(
	listRepo repository.PurchaseListRepository,
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
	restaurantRepo repository.RestaurantRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listRepo := NewPurchaseListRepository(tx)
	unitRepo := NewUnitRepository(tx)
	productRepo := NewProductRepository(tx)
	restaurantRepo := NewRestaurantRepository(tx)

	if err := fn(listRepo, unitRepo, productRepo, restaurantRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
