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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementa DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, tipo, cai_id, secuencia, correlativo, fecha_emision, moneda,
	emisor_rtn, emisor_nombre, emisor_direccion, cliente_rtn, cliente_nombre,
	gravado, exento, isv15, isv18, descuento_total, total, estado, cotizacion_id,
	created_at, updated_at`

// Create inserta la cabecera. La constraint única (cai_id, secuencia) es el
// árbitro final contra secuencias duplicadas si algo evade el lock del CAI.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	const q = `
		INSERT INTO documentos
			(id, tipo, cai_id, secuencia, correlativo, fecha_emision, moneda,
			 emisor_rtn, emisor_nombre, emisor_direccion, cliente_rtn, cliente_nombre,
			 gravado, exento, isv15, isv18, descuento_total, total, estado, cotizacion_id,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, q,
		doc.ID, doc.Tipo, doc.CAIID, doc.Secuencia, doc.Correlativo, doc.FechaEmision, doc.Moneda,
		doc.EmisorRTN, doc.EmisorNombre, nullIfEmpty(doc.EmisorDireccion),
		nullIfEmpty(doc.ClienteRTN), doc.ClienteNombre,
		doc.Gravado, doc.Exento, doc.ISV15, doc.ISV18, doc.DescuentoTotal, doc.Total,
		doc.Estado, nullIfEmpty(doc.CotizacionID),
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicado, "insert documento %s", doc.Correlativo)
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

func (r *DocumentRepo) CreateLine(ctx context.Context, line *entity.DocumentLine) error {
	const q = `
		INSERT INTO documento_lineas
			(id, documento_id, producto_id, descripcion, cantidad, precio_unitario,
			 descuento, tasa_isv, base_imponible, impuesto, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, q,
		line.ID, line.DocumentID, nullIfEmpty(line.ProductoID), line.Descripcion,
		line.Cantidad, line.PrecioUnitario, line.Descuento, line.TasaISV,
		line.BaseImponible, line.Impuesto, line.TotalLinea,
	)
	if err != nil {
		return fmt.Errorf("insert documento linea: %w", err)
	}
	return nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documentos WHERE id = $1`
	doc, err := scanDocument(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return doc, nil
}

// GetByIDForUpdate bloquea la cabecera durante la anulación.
func (r *DocumentRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documentos WHERE id = $1 FOR UPDATE`
	doc, err := scanDocument(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento for update: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepo) GetLinesByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentLine, error) {
	const q = `
		SELECT id, documento_id, producto_id, descripcion, cantidad, precio_unitario,
		       descuento, tasa_isv, base_imponible, impuesto, total_linea
		FROM documento_lineas WHERE documento_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, q, documentID)
	if err != nil {
		return nil, fmt.Errorf("list documento lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		var productoID *string
		err := rows.Scan(
			&l.ID, &l.DocumentID, &productoID, &l.Descripcion, &l.Cantidad,
			&l.PrecioUnitario, &l.Descuento, &l.TasaISV,
			&l.BaseImponible, &l.Impuesto, &l.TotalLinea,
		)
		if err != nil {
			return nil, fmt.Errorf("scan documento linea: %w", err)
		}
		l.ProductoID = derefStr(productoID)
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *DocumentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documentos
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

// MaxSequence devuelve la secuencia máxima asignada al CAI. ok=false cuando
// el CAI aún no tiene documentos.
func (r *DocumentRepo) MaxSequence(ctx context.Context, caiID string) (int64, bool, error) {
	const q = `SELECT MAX(secuencia) FROM documentos WHERE cai_id = $1`
	var max *int64
	if err := r.q.QueryRow(ctx, q, caiID).Scan(&max); err != nil {
		return 0, false, fmt.Errorf("max secuencia: %w", err)
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

func (r *DocumentRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	const q = `UPDATE documentos SET estado = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, q, id, estado); err != nil {
		return fmt.Errorf("update documento estado: %w", err)
	}
	return nil
}

func scanDocument(row pgxScanner) (*entity.Document, error) {
	var doc entity.Document
	var emisorDireccion, clienteRTN, cotizacionID *string
	err := row.Scan(
		&doc.ID, &doc.Tipo, &doc.CAIID, &doc.Secuencia, &doc.Correlativo,
		&doc.FechaEmision, &doc.Moneda,
		&doc.EmisorRTN, &doc.EmisorNombre, &emisorDireccion,
		&clienteRTN, &doc.ClienteNombre,
		&doc.Gravado, &doc.Exento, &doc.ISV15, &doc.ISV18,
		&doc.DescuentoTotal, &doc.Total, &doc.Estado, &cotizacionID,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.EmisorDireccion = derefStr(emisorDireccion)
	doc.ClienteRTN = derefStr(clienteRTN)
	doc.CotizacionID = derefStr(cotizacionID)
	return &doc, nil
}
