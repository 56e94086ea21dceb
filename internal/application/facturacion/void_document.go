package facturacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// VoidDocumentUseCase anula un documento emitido y revierte los descuentos de
// inventario que causó, como una sola unidad atómica. La secuencia asignada
// nunca se libera ni se reutiliza: el documento anulado conserva su número
// para auditoría sin huecos.
type VoidDocumentUseCase struct {
	txRunner TxRunner
	docRepo  repository.DocumentRepository
}

// NewVoidDocumentUseCase construye el caso de uso.
func NewVoidDocumentUseCase(txRunner TxRunner, docRepo repository.DocumentRepository) *VoidDocumentUseCase {
	return &VoidDocumentUseCase{txRunner: txRunner, docRepo: docRepo}
}

// Void anula el documento: estado → ANULADA y, por cada línea ligada a un
// producto con control de stock, repone el stock e inserta el movimiento IN
// compensatorio referenciando el documento original. Anular un documento ya
// anulado falla con DOCUMENTO_YA_ANULADO sin tocar inventario.
func (uc *VoidDocumentUseCase) Void(ctx context.Context, userID, documentID string) (*dto.DocumentResponse, error) {
	if documentID == "" {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	var doc *entity.Document
	var lines []*entity.DocumentLine

	err := uc.txRunner.RunFacturacion(ctx, func(
		_ repository.CAIRepository,
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.QuotationRepository,
	) error {
		var err error
		// Lock de la cabecera: dos anulaciones concurrentes del mismo
		// documento no deben duplicar la reposición.
		doc, err = docRepo.GetByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrDocumentoNoEncontrado
		}
		if doc.Estado == entity.DocumentStatusAnulada {
			return domain.ErrDocumentoYaAnulado
		}

		if err := docRepo.UpdateEstado(ctx, doc.ID, entity.DocumentStatusAnulada); err != nil {
			return err
		}
		doc.Estado = entity.DocumentStatusAnulada
		doc.UpdatedAt = now

		lines, err = docRepo.GetLinesByDocumentID(ctx, doc.ID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if line.ProductoID == "" {
				continue
			}
			p, err := productRepo.GetByIDForUpdate(ctx, line.ProductoID)
			if err != nil {
				return err
			}
			if p == nil || !p.ControlaStock() {
				continue
			}
			if err := productRepo.UpdateStock(ctx, p.ID, p.Stock.Add(line.Cantidad)); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:         uuid.New().String(),
				ProductoID: p.ID,
				Tipo:       entity.MovementTypeIN,
				Cantidad:   line.Cantidad,
				Motivo:     "Anulación " + doc.Correlativo,
				DocumentID: doc.ID,
				CreatedAt:  now,
				CreatedBy:  userID,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("documento_id", doc.ID).
		Str("correlativo", doc.Correlativo).
		Msg("documento anulado")

	return toDocumentResponse(doc, lines, nil), nil
}
