package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementa ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	const q = `
		INSERT INTO gastos (id, categoria, descripcion, monto, fecha, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, q,
		e.ID, e.Categoria, e.Descripcion, e.Monto, e.Fecha, nullIfEmpty(e.CreatedBy), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	const q = `
		SELECT id, categoria, descripcion, monto, fecha, created_by, created_at
		FROM gastos WHERE id = $1`
	e, err := scanExpense(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return e, nil
}

// List lista gastos, acotables por rango de fechas inclusivo.
func (r *ExpenseRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Expense, error) {
	const q = `
		SELECT id, categoria, descripcion, monto, fecha, created_by, created_at
		FROM gastos
		WHERE ($1::date IS NULL OR fecha >= $1)
		  AND ($2::date IS NULL OR fecha <= $2)
		ORDER BY fecha DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, q, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExpense(row pgxScanner) (*entity.Expense, error) {
	var e entity.Expense
	var createdBy *string
	err := row.Scan(&e.ID, &e.Categoria, &e.Descripcion, &e.Monto, &e.Fecha, &createdBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.CreatedBy = derefStr(createdBy)
	return &e, nil
}
