package facturacion

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica imprimible de un documento
// (GET /api/documentos/:id/print). No participa en la corrección fiscal: es
// solo presentación de datos ya persistidos.
type PDFUseCase struct {
	docRepo   repository.DocumentRepository
	caiRepo   repository.CAIRepository
	generator DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(docRepo repository.DocumentRepository, caiRepo repository.CAIRepository, generator DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{docRepo: docRepo, caiRepo: caiRepo, generator: generator}
}

// GetDocumentPDF devuelve los bytes del PDF del documento.
func (uc *PDFUseCase) GetDocumentPDF(ctx context.Context, id string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentoNoEncontrado
	}
	cai, err := uc.caiRepo.GetByID(ctx, doc.CAIID)
	if err != nil {
		return nil, err
	}
	if cai == nil {
		return nil, domain.ErrCAINoEncontrado
	}
	lines, err := uc.docRepo.GetLinesByDocumentID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateDocumentPDF(ctx, doc, cai, lines)
}
