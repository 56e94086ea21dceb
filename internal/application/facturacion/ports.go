package facturacion

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una única transacción con los
// repositorios atados a esa transacción. Emisión y anulación dependen de
// esto: o se confirma el conjunto completo de filas (cabecera, líneas,
// movimientos, ajustes de stock, marca de cotización) o nada.
type TxRunner interface {
	RunFacturacion(ctx context.Context, fn func(
		caiRepo repository.CAIRepository,
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		quotationRepo repository.QuotationRepository,
	) error) error
}

// DocumentPDFGenerator genera la representación gráfica imprimible de un
// documento emitido. El CAI acompaña al documento: código, rango autorizado
// y fecha límite deben figurar en la cara impresa.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.Document, cai *entity.CAI, lines []*entity.DocumentLine) ([]byte, error)
}
