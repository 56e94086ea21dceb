package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.CAIRepository = (*CAIRepo)(nil)

// CAIRepo implementa CAIRepository sobre PostgreSQL (usable con pool o tx).
type CAIRepo struct {
	q Querier
}

// NewCAIRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCAIRepository(q Querier) *CAIRepo {
	return &CAIRepo{q: q}
}

const caiColumns = `id, codigo, establecimiento, punto_emision, tipo_documento,
	rango_desde, rango_hasta, fecha_limite, estado, created_at, updated_at`

func (r *CAIRepo) Create(ctx context.Context, cai *entity.CAI) error {
	const q = `
		INSERT INTO cai
			(id, codigo, establecimiento, punto_emision, tipo_documento,
			 rango_desde, rango_hasta, fecha_limite, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, q,
		cai.ID, cai.Codigo, cai.Establecimiento, cai.PuntoEmision, cai.TipoDocumento,
		cai.RangoDesde, cai.RangoHasta, cai.FechaLimite, cai.Estado,
		cai.CreatedAt, cai.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicado, "insert cai")
		}
		return fmt.Errorf("insert cai: %w", err)
	}
	return nil
}

func (r *CAIRepo) GetByID(ctx context.Context, id string) (*entity.CAI, error) {
	q := `SELECT ` + caiColumns + ` FROM cai WHERE id = $1`
	cai, err := scanCAI(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cai: %w", err)
	}
	return cai, nil
}

// GetByIDForUpdate bloquea la fila del CAI: sección crítica del asignador de
// secuencias. Solo tiene sentido dentro de una transacción.
func (r *CAIRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CAI, error) {
	q := `SELECT ` + caiColumns + ` FROM cai WHERE id = $1 FOR UPDATE`
	cai, err := scanCAI(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cai for update: %w", err)
	}
	return cai, nil
}

func (r *CAIRepo) List(ctx context.Context) ([]*entity.CAI, error) {
	q := `SELECT ` + caiColumns + ` FROM cai ORDER BY fecha_limite DESC`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list cai: %w", err)
	}
	defer rows.Close()
	var list []*entity.CAI
	for rows.Next() {
		cai, err := scanCAI(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cai: %w", err)
		}
		list = append(list, cai)
	}
	return list, rows.Err()
}

func (r *CAIRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	const q = `UPDATE cai SET estado = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, q, id, estado); err != nil {
		return fmt.Errorf("update cai estado: %w", err)
	}
	return nil
}

func scanCAI(row pgxScanner) (*entity.CAI, error) {
	var cai entity.CAI
	err := row.Scan(
		&cai.ID, &cai.Codigo, &cai.Establecimiento, &cai.PuntoEmision, &cai.TipoDocumento,
		&cai.RangoDesde, &cai.RangoHasta, &cai.FechaLimite, &cai.Estado,
		&cai.CreatedAt, &cai.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cai, nil
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar los scan helpers.
type pgxScanner interface {
	Scan(dest ...any) error
}
