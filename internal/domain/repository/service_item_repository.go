package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// ServiceItemRepository puerto del catálogo de servicios del taller.
type ServiceItemRepository interface {
	Create(ctx context.Context, s *entity.ServiceItem) error
	GetByID(ctx context.Context, id string) (*entity.ServiceItem, error)
	List(ctx context.Context) ([]*entity.ServiceItem, error)
}
