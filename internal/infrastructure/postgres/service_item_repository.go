package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.ServiceItemRepository = (*ServiceItemRepo)(nil)

// ServiceItemRepo implementa ServiceItemRepository sobre PostgreSQL.
type ServiceItemRepo struct {
	q Querier
}

// NewServiceItemRepository construye el adaptador.
func NewServiceItemRepository(q Querier) *ServiceItemRepo {
	return &ServiceItemRepo{q: q}
}

func (r *ServiceItemRepo) Create(ctx context.Context, s *entity.ServiceItem) error {
	const q = `
		INSERT INTO servicios
			(id, nombre, descripcion, precio_base, tasa_isv, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, q,
		s.ID, s.Nombre, nullIfEmpty(s.Descripcion), s.PrecioBase, s.TasaISV,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

func (r *ServiceItemRepo) GetByID(ctx context.Context, id string) (*entity.ServiceItem, error) {
	const q = `
		SELECT id, nombre, descripcion, precio_base, tasa_isv, created_at, updated_at
		FROM servicios WHERE id = $1`
	s, err := scanServiceItem(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return s, nil
}

func (r *ServiceItemRepo) List(ctx context.Context) ([]*entity.ServiceItem, error) {
	const q = `
		SELECT id, nombre, descripcion, precio_base, tasa_isv, created_at, updated_at
		FROM servicios ORDER BY nombre`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceItem
	for rows.Next() {
		s, err := scanServiceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanServiceItem(row pgxScanner) (*entity.ServiceItem, error) {
	var s entity.ServiceItem
	var descripcion *string
	err := row.Scan(&s.ID, &s.Nombre, &descripcion, &s.PrecioBase, &s.TasaISV, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Descripcion = derefStr(descripcion)
	return &s, nil
}
