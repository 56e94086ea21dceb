package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementa QuotationRepository sobre PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

func (r *QuotationRepo) Create(ctx context.Context, quotation *entity.Quotation, lineas []*entity.QuotationLine) error {
	const q = `
		INSERT INTO cotizaciones
			(id, cliente_nombre, cliente_rtn, estado, documento_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULL, $5, $6)`
	_, err := r.q.Exec(ctx, q,
		quotation.ID, quotation.ClienteNombre, nullIfEmpty(quotation.ClienteRTN),
		quotation.Estado, quotation.CreatedAt, quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	const ql = `
		INSERT INTO cotizacion_lineas
			(id, cotizacion_id, producto_id, descripcion, cantidad, precio_unitario, descuento, tasa_isv)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, l := range lineas {
		_, err := r.q.Exec(ctx, ql,
			l.ID, l.QuotationID, nullIfEmpty(l.ProductoID), l.Descripcion,
			l.Cantidad, l.PrecioUnitario, l.Descuento, l.TasaISV,
		)
		if err != nil {
			return fmt.Errorf("insert cotizacion linea: %w", err)
		}
	}
	return nil
}

func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	const q = `
		SELECT id, cliente_nombre, cliente_rtn, estado, documento_id, created_at, updated_at
		FROM cotizaciones WHERE id = $1`
	quotation, err := scanQuotation(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	return quotation, nil
}

func (r *QuotationRepo) GetLines(ctx context.Context, quotationID string) ([]*entity.QuotationLine, error) {
	const q = `
		SELECT id, cotizacion_id, producto_id, descripcion, cantidad, precio_unitario, descuento, tasa_isv
		FROM cotizacion_lineas WHERE cotizacion_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, q, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list cotizacion lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationLine
	for rows.Next() {
		var l entity.QuotationLine
		var productoID *string
		err := rows.Scan(
			&l.ID, &l.QuotationID, &productoID, &l.Descripcion,
			&l.Cantidad, &l.PrecioUnitario, &l.Descuento, &l.TasaISV,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cotizacion linea: %w", err)
		}
		l.ProductoID = derefStr(productoID)
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *QuotationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Quotation, error) {
	const q = `
		SELECT id, cliente_nombre, cliente_rtn, estado, documento_id, created_at, updated_at
		FROM cotizaciones ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		quotation, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		list = append(list, quotation)
	}
	return list, rows.Err()
}

// MarkConverted liga la cotización al documento emitido. El guard vive en el
// WHERE: si otra transacción ya la ligó, RowsAffected es 0 y el caller
// revierte la emisión completa.
func (r *QuotationRepo) MarkConverted(ctx context.Context, id, documentID string) (bool, error) {
	const q = `
		UPDATE cotizaciones
		SET documento_id = $2, estado = $3, updated_at = now()
		WHERE id = $1 AND documento_id IS NULL`
	tag, err := r.q.Exec(ctx, q, id, documentID, entity.QuotationStatusConvertida)
	if err != nil {
		return false, fmt.Errorf("mark cotizacion convertida: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanQuotation(row pgxScanner) (*entity.Quotation, error) {
	var q entity.Quotation
	var clienteRTN, documentID *string
	err := row.Scan(&q.ID, &q.ClienteNombre, &clienteRTN, &q.Estado, &documentID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	q.ClienteRTN = derefStr(clienteRTN)
	q.DocumentID = derefStr(documentID)
	return &q, nil
}
