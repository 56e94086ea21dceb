package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/pkg/config"
)

// DocumentHandler maneja emisión, consulta, anulación e impresión de
// documentos fiscales (protegido).
type DocumentHandler struct {
	issueUC *facturacion.IssueDocumentUseCase
	voidUC  *facturacion.VoidDocumentUseCase
	pdfUC   *facturacion.PDFUseCase
	emisor  config.EmisorConfig
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(
	issueUC *facturacion.IssueDocumentUseCase,
	voidUC *facturacion.VoidDocumentUseCase,
	pdfUC *facturacion.PDFUseCase,
	emisor config.EmisorConfig,
) *DocumentHandler {
	return &DocumentHandler{issueUC: issueUC, voidUC: voidUC, pdfUC: pdfUC, emisor: emisor}
}

// fillEmisor completa el emisor con la identidad fiscal configurada del
// taller cuando la petición no lo trae.
func (h *DocumentHandler) fillEmisor(in *dto.IssueDocumentRequest) {
	if in.Emisor.RTN == "" && in.Emisor.Nombre == "" {
		in.Emisor = dto.PartyDTO{RTN: h.emisor.RTN, Nombre: h.emisor.Nombre, Direccion: h.emisor.Direccion}
	}
}

// Issue godoc
// @Summary      Emitir documento fiscal (factura, nota de crédito o débito)
// @Tags         documentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueDocumentRequest  true  "Datos del documento"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documentos [post]
func (h *DocumentHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	h.fillEmisor(&in)
	out, err := h.issueUC.Issue(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// IssueFromQuotation godoc
// @Summary      Emitir documento desde una cotización
// @Tags         documentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cotización"
// @Param        body  body  dto.IssueDocumentRequest  true  "CAI y datos de emisión; las líneas vienen de la cotización"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documentos/desde-cotizacion/{id} [post]
func (h *DocumentHandler) IssueFromQuotation(c *fiber.Ctx) error {
	var in dto.IssueDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	h.fillEmisor(&in)
	out, err := h.issueUC.IssueFromQuotation(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar documentos emitidos
// @Tags         documentos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/documentos [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.issueUC.ListDocuments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento con detalle y referencias de inventario
// @Tags         documentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documentos/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.issueUC.GetDocument(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular documento y revertir inventario
// @Tags         documentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documentos/{id}/anular [post]
func (h *DocumentHandler) Void(c *fiber.Ctx) error {
	out, err := h.voidUC.Void(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Print godoc
// @Summary      Representación gráfica imprimible (PDF)
// @Tags         documentos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documentos/{id}/print [get]
func (h *DocumentHandler) Print(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.GetDocumentPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="documento.pdf"`)
	return c.Send(pdfBytes)
}
