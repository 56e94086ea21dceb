package repository

import (
	"context"
	"time"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos del taller.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Expense, error)
}
