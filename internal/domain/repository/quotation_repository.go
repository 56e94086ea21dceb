package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// QuotationRepository puerto de persistencia para cotizaciones.
type QuotationRepository interface {
	Create(ctx context.Context, q *entity.Quotation, lineas []*entity.QuotationLine) error
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	GetLines(ctx context.Context, quotationID string) ([]*entity.QuotationLine, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Quotation, error)
	// MarkConverted marca la cotización como convertida y la liga al
	// documento emitido. Devuelve false si ya estaba ligada a un documento:
	// el guard se evalúa en el UPDATE mismo (WHERE document_id IS NULL) para
	// que dos conversiones concurrentes no produzcan dos documentos.
	MarkConverted(ctx context.Context, id, documentID string) (bool, error)
}
