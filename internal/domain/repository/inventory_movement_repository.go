package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// MovementFilter filtros del listado de kardex.
type MovementFilter struct {
	ProductoID string
	DocumentID string
	Limit      int
	Offset     int
}

// InventoryMovementRepository puerto de persistencia del kardex.
type InventoryMovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) error
	ListByDocument(ctx context.Context, documentID string) ([]*entity.InventoryMovement, error)
	List(ctx context.Context, f MovementFilter) ([]*entity.InventoryMovement, error)
}
