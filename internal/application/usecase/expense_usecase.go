package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// ExpenseUseCase libro de gastos operativos del taller.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto. Fecha vacía usa hoy.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Categoria == "" || in.Descripcion == "" {
		return nil, domain.ErrCamposRequeridos
	}
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	fecha := time.Now()
	if in.Fecha != "" {
		f, err := time.Parse(fechaLayout, in.Fecha)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fecha = f
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       fecha,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// List lista gastos, opcionalmente acotados por rango de fechas (YYYY-MM-DD).
func (uc *ExpenseUseCase) List(ctx context.Context, from, to string, limit, offset int) ([]*dto.ExpenseResponse, error) {
	var fromT, toT *time.Time
	if from != "" {
		f, err := time.Parse(fechaLayout, from)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fromT = &f
	}
	if to != "" {
		t, err := time.Parse(fechaLayout, to)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		toT = &t
	}
	expenses, err := uc.expenseRepo.List(ctx, fromT, toT, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Categoria:   e.Categoria,
		Descripcion: e.Descripcion,
		Monto:       e.Monto,
		Fecha:       e.Fecha.Format(fechaLayout),
	}
}
