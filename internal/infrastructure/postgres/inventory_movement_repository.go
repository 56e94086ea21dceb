package postgres

import (
	"context"
	"fmt"

	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementa el kardex sobre PostgreSQL.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	const q = `
		INSERT INTO movimientos_inventario
			(id, producto_id, tipo, cantidad, motivo, documento_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, q,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.Motivo,
		nullIfEmpty(m.DocumentID), m.CreatedAt, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func (r *InventoryMovementRepo) ListByDocument(ctx context.Context, documentID string) ([]*entity.InventoryMovement, error) {
	const q = `
		SELECT id, producto_id, tipo, cantidad, motivo, documento_id, created_at, created_by
		FROM movimientos_inventario WHERE documento_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, q, documentID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por documento: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// List lista el kardex con filtros opcionales de producto y documento.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	const q = `
		SELECT id, producto_id, tipo, cantidad, motivo, documento_id, created_at, created_by
		FROM movimientos_inventario
		WHERE ($1 = '' OR producto_id = $1)
		  AND ($2 = '' OR documento_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, q, f.ProductoID, f.DocumentID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*entity.InventoryMovement, error) {
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var documentID, createdBy *string
		err := rows.Scan(&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.Motivo, &documentID, &m.CreatedAt, &createdBy)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.DocumentID = derefStr(documentID)
		m.CreatedBy = derefStr(createdBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}
