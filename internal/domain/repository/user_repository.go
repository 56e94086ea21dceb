package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios del taller.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}
