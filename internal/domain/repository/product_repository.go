package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos del inventario.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto mientras se ajusta su
	// stock dentro de la transacción de emisión o anulación.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// UpdateStock fija el stock absoluto del producto (el caller calcula el
	// nuevo valor bajo el lock de GetByIDForUpdate).
	UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error
}
