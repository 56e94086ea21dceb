package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para documentos fiscales.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	CreateLine(ctx context.Context, line *entity.DocumentLine) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	// GetByIDForUpdate bloquea la cabecera durante la anulación para que dos
	// anulaciones concurrentes no dupliquen la reposición de inventario.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error)
	GetLinesByDocumentID(ctx context.Context, documentID string) ([]*entity.DocumentLine, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Document, error)
	// MaxSequence devuelve la secuencia máxima ya asignada para un CAI.
	// ok es false cuando el CAI aún no tiene documentos.
	MaxSequence(ctx context.Context, caiID string) (max int64, ok bool, err error)
	UpdateEstado(ctx context.Context, id, estado string) error
}
