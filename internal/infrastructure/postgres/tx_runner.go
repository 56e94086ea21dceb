package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ facturacion.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunFacturacion inicia una transacción, ejecuta fn con los repos de
// facturación atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunFacturacion(ctx context.Context, fn func(
	caiRepo repository.CAIRepository,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	quotationRepo repository.QuotationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	caiRepo := NewCAIRepository(tx)
	docRepo := NewDocumentRepository(tx)
	productRepo := NewProductRepository(tx)
	movRepo := NewInventoryMovementRepository(tx)
	quotationRepo := NewQuotationRepository(tx)

	if err := fn(caiRepo, docRepo, productRepo, movRepo, quotationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
