package facturacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// IssueDocumentUseCase emite documentos fiscales bajo un CAI: valida la
// autorización, resuelve cada línea contra el inventario o el catálogo de
// servicios, calcula montos, asigna la siguiente secuencia del rango bajo
// lock de fila y persiste cabecera, líneas, movimientos de inventario y la
// marca de conversión de cotización en una sola transacción.
type IssueDocumentUseCase struct {
	txRunner      TxRunner
	caiRepo       repository.CAIRepository
	docRepo       repository.DocumentRepository
	productRepo   repository.ProductRepository
	serviceRepo   repository.ServiceItemRepository
	quotationRepo repository.QuotationRepository
	movRepo       repository.InventoryMovementRepository
}

// NewIssueDocumentUseCase construye el caso de uso.
func NewIssueDocumentUseCase(
	txRunner TxRunner,
	caiRepo repository.CAIRepository,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceItemRepository,
	quotationRepo repository.QuotationRepository,
	movRepo repository.InventoryMovementRepository,
) *IssueDocumentUseCase {
	return &IssueDocumentUseCase{
		txRunner:      txRunner,
		caiRepo:       caiRepo,
		docRepo:       docRepo,
		productRepo:   productRepo,
		serviceRepo:   serviceRepo,
		quotationRepo: quotationRepo,
		movRepo:       movRepo,
	}
}

// resolvedLine línea ya resuelta contra catálogo, lista para calcular.
type resolvedLine struct {
	producto    *entity.Product // nil en líneas de texto libre o servicio
	descripcion string
	cantidad    decimal.Decimal
	precio      decimal.Decimal
	descuento   decimal.Decimal
	tasa        decimal.Decimal
}

// Issue emite un documento fiscal. Orden de validación (fail fast, cada paso
// con su error nominal): CAI existe → CAI activo → fecha de emisión dentro de
// la vigencia → hoy dentro de la vigencia → emisor completo → al menos una
// línea → (si convierte) cotización existe y no está facturada.
func (uc *IssueDocumentUseCase) Issue(ctx context.Context, userID string, in dto.IssueDocumentRequest) (*dto.DocumentResponse, error) {
	return uc.issue(ctx, userID, in, "")
}

// IssueFromQuotation emite un documento tomando las líneas de una cotización
// y la marca como convertida dentro de la misma transacción.
func (uc *IssueDocumentUseCase) IssueFromQuotation(ctx context.Context, userID, quotationID string, in dto.IssueDocumentRequest) (*dto.DocumentResponse, error) {
	if quotationID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	q, err := uc.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrCotizacionNoEncontrada
	}
	if q.Estado == entity.QuotationStatusConvertida || q.DocumentID != "" {
		return nil, domain.ErrCotizacionYaFacturada
	}
	qLines, err := uc.quotationRepo.GetLines(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if len(qLines) == 0 {
		return nil, domain.ErrCotizacionSinLineas
	}

	// Las líneas vienen de la cotización; el cliente también, salvo que la
	// petición lo sobreescriba.
	in.Items = make([]dto.DocumentItemRequest, 0, len(qLines))
	for _, l := range qLines {
		precio := l.PrecioUnitario
		tasa := l.TasaISV
		in.Items = append(in.Items, dto.DocumentItemRequest{
			ProductoID:     l.ProductoID,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: &precio,
			Descuento:      l.Descuento,
			TasaISV:        &tasa,
		})
	}
	if in.Cliente.Nombre == "" {
		in.Cliente = dto.PartyDTO{RTN: q.ClienteRTN, Nombre: q.ClienteNombre}
	}
	return uc.issue(ctx, userID, in, quotationID)
}

func (uc *IssueDocumentUseCase) issue(ctx context.Context, userID string, in dto.IssueDocumentRequest, quotationID string) (*dto.DocumentResponse, error) {
	switch in.Tipo {
	case entity.DocTipoFactura, entity.DocTipoNotaCredito, entity.DocTipoNotaDebito:
	default:
		return nil, domain.ErrEntradaInvalida
	}

	hoy := time.Now()
	fechaEmision := hoy
	if in.FechaEmision != "" {
		f, err := time.Parse(fechaLayout, in.FechaEmision)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fechaEmision = f
	}

	// Validación preliminar del CAI (fail fast sin abrir transacción). La
	// validación vinculante se repite bajo lock dentro de la transacción.
	cai, err := uc.caiRepo.GetByID(ctx, in.CAIID)
	if err != nil {
		return nil, err
	}
	if err := validateCAI(cai, fechaEmision, hoy); err != nil {
		return nil, err
	}

	if in.Emisor.RTN == "" || in.Emisor.Nombre == "" {
		return nil, domain.ErrCamposRequeridos
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrSinLineas
	}

	moneda := in.Moneda
	if moneda == "" {
		moneda = "HNL"
	}

	// Resolución de líneas contra catálogos (solo lectura, fuera de la tx).
	resolved, err := uc.resolveLines(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	// Cálculo fiscal puro: montos por línea y totales del documento.
	amounts := make([]fiscal.LineAmounts, len(resolved))
	for i, r := range resolved {
		amounts[i] = fiscal.ComputeLine(r.cantidad, r.precio, r.descuento, r.tasa)
	}
	totals := fiscal.Aggregate(amounts)

	now := time.Now()
	docID := uuid.New().String()
	var doc *entity.Document
	var lines []*entity.DocumentLine
	var movs []*entity.InventoryMovement

	err = uc.txRunner.RunFacturacion(ctx, func(
		caiRepo repository.CAIRepository,
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		quotationRepo repository.QuotationRepository,
	) error {
		// 1) Asignador de secuencias. El lock de fila sobre el CAI
		// serializa emisiones concurrentes; la constraint única
		// (cai_id, secuencia) es el árbitro final si algo lo evade.
		caiTx, err := caiRepo.GetByIDForUpdate(ctx, in.CAIID)
		if err != nil {
			return err
		}
		if err := validateCAI(caiTx, fechaEmision, hoy); err != nil {
			return err
		}
		next, err := nextSequence(ctx, docRepo, caiTx)
		if err != nil {
			return err
		}

		// 2) Cabecera con el correlativo derivado del CAI y la secuencia.
		doc = &entity.Document{
			ID:              docID,
			Tipo:            in.Tipo,
			CAIID:           caiTx.ID,
			Secuencia:       next,
			Correlativo:     fiscal.FormatCorrelativo(caiTx.Establecimiento, caiTx.PuntoEmision, caiTx.TipoDocumento, next),
			FechaEmision:    fechaEmision,
			Moneda:          moneda,
			EmisorRTN:       in.Emisor.RTN,
			EmisorNombre:    in.Emisor.Nombre,
			EmisorDireccion: in.Emisor.Direccion,
			ClienteRTN:      in.Cliente.RTN,
			ClienteNombre:   in.Cliente.Nombre,
			Gravado:         totals.Gravado,
			Exento:          totals.Exento,
			ISV15:           totals.ISV15,
			ISV18:           totals.ISV18,
			DescuentoTotal:  totals.DescuentoTotal,
			Total:           totals.Total,
			Estado:          entity.DocumentStatusEmitida,
			CotizacionID:    quotationID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := docRepo.Create(ctx, doc); err != nil {
			return err
		}

		// 3) Líneas y, por cada línea con producto de inventario, salida
		// OUT del kardex y descuento de stock bajo lock de producto.
		lines = make([]*entity.DocumentLine, 0, len(resolved))
		for i, r := range resolved {
			line := &entity.DocumentLine{
				ID:             uuid.New().String(),
				DocumentID:     doc.ID,
				Descripcion:    r.descripcion,
				Cantidad:       amounts[i].Cantidad,
				PrecioUnitario: amounts[i].PrecioUnitario,
				Descuento:      amounts[i].Descuento,
				TasaISV:        amounts[i].TasaISV,
				BaseImponible:  amounts[i].BaseImponible,
				Impuesto:       amounts[i].Impuesto,
				TotalLinea:     amounts[i].TotalLinea,
			}
			if r.producto != nil {
				line.ProductoID = r.producto.ID
			}
			if err := docRepo.CreateLine(ctx, line); err != nil {
				return err
			}
			lines = append(lines, line)

			if r.producto == nil || !r.producto.ControlaStock() {
				continue
			}
			p, err := productRepo.GetByIDForUpdate(ctx, r.producto.ID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrProductoNoEncontrado
			}
			if p.Stock.LessThan(r.cantidad) {
				return domain.ErrStockInsuficiente
			}
			if err := productRepo.UpdateStock(ctx, p.ID, p.Stock.Sub(r.cantidad)); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:         uuid.New().String(),
				ProductoID: p.ID,
				Tipo:       entity.MovementTypeOUT,
				Cantidad:   r.cantidad,
				Motivo:     "Venta " + doc.Correlativo,
				DocumentID: doc.ID,
				CreatedAt:  now,
				CreatedBy:  userID,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			movs = append(movs, mov)
		}

		// 4) Rango consumido por completo: el CAI queda agotado en la misma
		// transacción.
		if next == caiTx.RangoHasta {
			if err := caiRepo.UpdateEstado(ctx, caiTx.ID, entity.CAIStatusAgotada); err != nil {
				return err
			}
		}

		// 5) Conversión de cotización: el guard vive en el UPDATE, por lo
		// que una segunda conversión concurrente falla aquí y revierte todo.
		if quotationID != "" {
			ok, err := quotationRepo.MarkConverted(ctx, quotationID, doc.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrCotizacionYaFacturada
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
		Int64("secuencia", doc.Secuencia).
		Str("cai_id", doc.CAIID).
		Msg("documento emitido")

	return toDocumentResponse(doc, lines, movs), nil
}

// validateCAI valida que la autorización permita emitir: existe, activa y
// dentro de su vigencia tanto para la fecha de emisión como para hoy. La
// vigencia se compara a granularidad de día: la fecha límite se persiste como
// fecha (medianoche), y el último día de vigencia todavía emite.
func validateCAI(cai *entity.CAI, fechaEmision, hoy time.Time) error {
	if cai == nil {
		return domain.ErrCAINoEncontrado
	}
	if cai.Estado != entity.CAIStatusActiva {
		return domain.ErrCAINoActivo
	}
	if excedeLimite(fechaEmision, cai.FechaLimite) {
		return domain.ErrFechaExcedeLimite
	}
	if excedeLimite(hoy, cai.FechaLimite) {
		return domain.ErrCAIVencido
	}
	return nil
}

// excedeLimite compara días calendario, no instantes: YYYY-MM-DD ordena
// lexicográficamente.
func excedeLimite(fecha, limite time.Time) bool {
	return fecha.Format(fechaLayout) > limite.Format(fechaLayout)
}

// nextSequence lee la secuencia máxima asignada al CAI y calcula la
// siguiente. Falla con RANGO_AGOTADO sin asignar cuando el rango se consumió.
// El caller inserta el documento con esta secuencia dentro de la misma
// transacción en la que se tomó el lock del CAI.
func nextSequence(ctx context.Context, docRepo repository.DocumentRepository, cai *entity.CAI) (int64, error) {
	max, ok, err := docRepo.MaxSequence(ctx, cai.ID)
	if err != nil {
		return 0, err
	}
	next := cai.RangoDesde
	if ok {
		next = max + 1
	}
	if next > cai.RangoHasta {
		return 0, domain.ErrRangoAgotado
	}
	return next, nil
}

// resolveLines resuelve cada ítem solicitado: los valores explícitos de la
// petición prevalecen; lo que falte se toma del producto o del servicio
// referenciado; la tasa por defecto es 15% si nadie la define.
func (uc *IssueDocumentUseCase) resolveLines(ctx context.Context, items []dto.DocumentItemRequest) ([]resolvedLine, error) {
	resolved := make([]resolvedLine, 0, len(items))
	for _, item := range items {
		r := resolvedLine{
			descripcion: item.Descripcion,
			cantidad:    item.Cantidad,
			descuento:   item.Descuento,
		}
		var catalogPrecio, catalogTasa *decimal.Decimal

		switch {
		case item.ProductoID != "":
			p, err := uc.productRepo.GetByID(ctx, item.ProductoID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, domain.ErrProductoNoEncontrado
			}
			r.producto = p
			if r.descripcion == "" {
				r.descripcion = p.Nombre
			}
			catalogPrecio = &p.Precio
			catalogTasa = &p.TasaISV
		case item.ServicioID != "":
			s, err := uc.serviceRepo.GetByID(ctx, item.ServicioID)
			if err != nil {
				return nil, err
			}
			if s == nil {
				return nil, domain.ErrServicioNoEncontrado
			}
			if r.descripcion == "" {
				r.descripcion = s.Nombre
			}
			catalogPrecio = &s.PrecioBase
			catalogTasa = &s.TasaISV
		}

		switch {
		case item.PrecioUnitario != nil:
			r.precio = *item.PrecioUnitario
		case catalogPrecio != nil:
			r.precio = *catalogPrecio
		default:
			r.precio = decimal.Zero
		}

		switch {
		case item.TasaISV != nil:
			r.tasa = *item.TasaISV
		case catalogTasa != nil:
			r.tasa = *catalogTasa
		default:
			r.tasa = fiscal.Tasa15
		}

		if r.descripcion == "" {
			return nil, domain.ErrLineaInvalida
		}
		if !r.cantidad.GreaterThan(decimal.Zero) || r.precio.IsNegative() || r.descuento.IsNegative() {
			return nil, domain.ErrLineaInvalida
		}
		if !fiscal.TasaSoportada(r.tasa) {
			return nil, domain.ErrTasaNoSoportada
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// GetDocument obtiene un documento con detalle y referencias de inventario.
func (uc *IssueDocumentUseCase) GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentoNoEncontrado
	}
	lines, err := uc.docRepo.GetLinesByDocumentID(ctx, id)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.ListByDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, lines, movs), nil
}

// ListDocuments lista documentos emitidos (sin detalle, más recientes primero).
func (uc *IssueDocumentUseCase) ListDocuments(ctx context.Context, limit, offset int) ([]*dto.DocumentResponse, error) {
	docs, err := uc.docRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDocumentResponse(doc, nil, nil))
	}
	return out, nil
}

func toDocumentResponse(doc *entity.Document, lines []*entity.DocumentLine, movs []*entity.InventoryMovement) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:           doc.ID,
		Tipo:         doc.Tipo,
		CAIID:        doc.CAIID,
		Secuencia:    doc.Secuencia,
		Correlativo:  doc.Correlativo,
		FechaEmision: doc.FechaEmision.Format(fechaLayout),
		Moneda:       doc.Moneda,
		Emisor: dto.PartyDTO{
			RTN:       doc.EmisorRTN,
			Nombre:    doc.EmisorNombre,
			Direccion: doc.EmisorDireccion,
		},
		Cliente: dto.PartyDTO{
			RTN:    doc.ClienteRTN,
			Nombre: doc.ClienteNombre,
		},
		Gravado:        doc.Gravado,
		Exento:         doc.Exento,
		ISV15:          doc.ISV15,
		ISV18:          doc.ISV18,
		DescuentoTotal: doc.DescuentoTotal,
		Total:          doc.Total,
		Estado:         doc.Estado,
		CotizacionID:   doc.CotizacionID,
		Items:          make([]dto.DocumentLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.DocumentLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Descuento:      l.Descuento,
			TasaISV:        l.TasaISV,
			BaseImponible:  l.BaseImponible,
			Impuesto:       l.Impuesto,
			TotalLinea:     l.TotalLinea,
		})
	}
	for _, m := range movs {
		resp.Referencias = append(resp.Referencias, dto.MovementResponse{
			ID:         m.ID,
			ProductoID: m.ProductoID,
			Tipo:       m.Tipo,
			Cantidad:   m.Cantidad,
			Motivo:     m.Motivo,
			DocumentID: m.DocumentID,
			Fecha:      m.CreatedAt.Format(fechaLayout),
		})
	}
	return resp
}
