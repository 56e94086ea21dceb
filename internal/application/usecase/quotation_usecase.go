package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// QuotationUseCase gestiona cotizaciones de trabajo. Las líneas se congelan
// al crear: precio y tasa quedan resueltos contra el catálogo en ese momento,
// de modo que la conversión posterior a documento no dependa de cambios de
// precio intermedios.
type QuotationUseCase struct {
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
	serviceRepo   repository.ServiceItemRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceItemRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		serviceRepo:   serviceRepo,
	}
}

// Create registra una cotización con sus líneas resueltas contra catálogo.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.Cliente.Nombre == "" {
		return nil, domain.ErrCamposRequeridos
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrSinLineas
	}

	now := time.Now()
	q := &entity.Quotation{
		ID:            uuid.New().String(),
		ClienteNombre: in.Cliente.Nombre,
		ClienteRTN:    in.Cliente.RTN,
		Estado:        entity.QuotationStatusPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	lineas := make([]*entity.QuotationLine, 0, len(in.Items))
	for _, item := range in.Items {
		l, err := uc.resolveLine(ctx, q.ID, item)
		if err != nil {
			return nil, err
		}
		lineas = append(lineas, l)
	}

	if err := uc.quotationRepo.Create(ctx, q, lineas); err != nil {
		return nil, err
	}
	return toQuotationResponse(q, lineas), nil
}

// resolveLine congela una línea: descripción, precio y tasa explícitos
// prevalecen; lo que falte viene del producto o servicio referenciado y la
// tasa por defecto es 15%.
func (uc *QuotationUseCase) resolveLine(ctx context.Context, quotationID string, item dto.DocumentItemRequest) (*entity.QuotationLine, error) {
	l := &entity.QuotationLine{
		ID:          uuid.New().String(),
		QuotationID: quotationID,
		ProductoID:  item.ProductoID,
		Descripcion: item.Descripcion,
		Cantidad:    item.Cantidad,
		Descuento:   item.Descuento,
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
		if l.Descripcion == "" {
			l.Descripcion = p.Nombre
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
		if l.Descripcion == "" {
			l.Descripcion = s.Nombre
		}
		catalogPrecio = &s.PrecioBase
		catalogTasa = &s.TasaISV
	}

	switch {
	case item.PrecioUnitario != nil:
		l.PrecioUnitario = *item.PrecioUnitario
	case catalogPrecio != nil:
		l.PrecioUnitario = *catalogPrecio
	}

	switch {
	case item.TasaISV != nil:
		l.TasaISV = *item.TasaISV
	case catalogTasa != nil:
		l.TasaISV = *catalogTasa
	default:
		l.TasaISV = fiscal.Tasa15
	}

	if l.Descripcion == "" {
		return nil, domain.ErrLineaInvalida
	}
	if !l.Cantidad.GreaterThan(decimal.Zero) || l.PrecioUnitario.IsNegative() || l.Descuento.IsNegative() {
		return nil, domain.ErrLineaInvalida
	}
	if !fiscal.TasaSoportada(l.TasaISV) {
		return nil, domain.ErrTasaNoSoportada
	}
	return l, nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *QuotationUseCase) GetByID(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrCotizacionNoEncontrada
	}
	lineas, err := uc.quotationRepo.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, lineas), nil
}

// List lista cotizaciones paginadas, sin detalle.
func (uc *QuotationUseCase) List(ctx context.Context, limit, offset int) ([]*dto.QuotationResponse, error) {
	quotations, err := uc.quotationRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, toQuotationResponse(q, nil))
	}
	return out, nil
}

func toQuotationResponse(q *entity.Quotation, lineas []*entity.QuotationLine) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:            q.ID,
		ClienteNombre: q.ClienteNombre,
		ClienteRTN:    q.ClienteRTN,
		Estado:        q.Estado,
		DocumentID:    q.DocumentID,
	}
	for _, l := range lineas {
		resp.Items = append(resp.Items, dto.QuotationLineResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Descuento:      l.Descuento,
			TasaISV:        l.TasaISV,
		})
	}
	return resp
}
