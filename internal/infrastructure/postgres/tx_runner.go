package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// Ensure TxRunner implements inventorycheck.TxRunner.
var _ inventorycheck.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido es inocuo tras un Commit exitoso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	inspectionRepo repository.InspectionRepository,
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	logRepo repository.LocationLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	inspectionRepo := NewInspectionRepository(tx)
	packageRepo := NewPackageRepository(tx)
	locationRepo := NewLocationRepository(tx)
	logRepo := NewLocationLogRepository(tx)

	if err := fn(orderRepo, inspectionRepo, packageRepo, locationRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
