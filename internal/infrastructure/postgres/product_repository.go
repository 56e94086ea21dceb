package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, nombre, descripcion, tipo, precio, tasa_isv, stock,
	created_at, updated_at`

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	const q = `
		INSERT INTO productos
			(id, sku, nombre, descripcion, tipo, precio, tasa_isv, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, q,
		p.ID, p.SKU, p.Nombre, nullIfEmpty(p.Descripcion), p.Tipo,
		p.Precio, p.TasaISV, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicado, "insert producto sku %s", p.SKU)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	q := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate bloquea la fila del producto mientras se ajusta stock.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	q := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto for update: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	q := `SELECT ` + productColumns + ` FROM productos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	const q = `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, tasa_isv = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q, p.ID, p.Nombre, nullIfEmpty(p.Descripcion), p.Precio, p.TasaISV, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	const q = `UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, q, id, stock); err != nil {
		return fmt.Errorf("update producto stock: %w", err)
	}
	return nil
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	var descripcion *string
	err := row.Scan(
		&p.ID, &p.SKU, &p.Nombre, &descripcion, &p.Tipo,
		&p.Precio, &p.TasaISV, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Descripcion = derefStr(descripcion)
	return &p, nil
}
