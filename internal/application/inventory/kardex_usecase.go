package inventory

import (
	"context"

	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// KardexUseCase consulta del kardex. Los movimientos solo los generan la
// facturación (OUT) y la anulación (IN); este caso de uso es de lectura.
type KardexUseCase struct {
	movRepo repository.InventoryMovementRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(movRepo repository.InventoryMovementRepository) *KardexUseCase {
	return &KardexUseCase{movRepo: movRepo}
}

// List lista movimientos filtrables por producto y documento.
func (uc *KardexUseCase) List(ctx context.Context, productoID, documentID string, limit, offset int) ([]*dto.MovementResponse, error) {
	movs, err := uc.movRepo.List(ctx, repository.MovementFilter{
		ProductoID: productoID,
		DocumentID: documentID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, &dto.MovementResponse{
			ID:         m.ID,
			ProductoID: m.ProductoID,
			Tipo:       m.Tipo,
			Cantidad:   m.Cantidad,
			Motivo:     m.Motivo,
			DocumentID: m.DocumentID,
			Fecha:      m.CreatedAt.Format("2006-01-02"),
		})
	}
	return out, nil
}
