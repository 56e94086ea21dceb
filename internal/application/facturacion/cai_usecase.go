package facturacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// CAIUseCase administración de autorizaciones CAI: alta, listado y anulación
// administrativa. El estado AGOTADA solo lo fija el asignador de secuencias.
type CAIUseCase struct {
	caiRepo repository.CAIRepository
}

// NewCAIUseCase construye el caso de uso.
func NewCAIUseCase(caiRepo repository.CAIRepository) *CAIUseCase {
	return &CAIUseCase{caiRepo: caiRepo}
}

// Create registra un CAI nuevo en estado ACTIVA.
func (uc *CAIUseCase) Create(ctx context.Context, in dto.CreateCAIRequest) (*dto.CAIResponse, error) {
	if in.Codigo == "" || in.Establecimiento == "" || in.PuntoEmision == "" {
		return nil, domain.ErrEntradaInvalida
	}
	switch in.TipoDocumento {
	case entity.DocTipoFactura, entity.DocTipoNotaCredito, entity.DocTipoNotaDebito:
	default:
		return nil, domain.ErrEntradaInvalida
	}
	if in.RangoDesde <= 0 || in.RangoHasta < in.RangoDesde {
		return nil, domain.ErrEntradaInvalida
	}
	fechaLimite, err := time.Parse(fechaLayout, in.FechaLimite)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	cai := &entity.CAI{
		ID:              uuid.New().String(),
		Codigo:          in.Codigo,
		Establecimiento: in.Establecimiento,
		PuntoEmision:    in.PuntoEmision,
		TipoDocumento:   in.TipoDocumento,
		RangoDesde:      in.RangoDesde,
		RangoHasta:      in.RangoHasta,
		FechaLimite:     fechaLimite,
		Estado:          entity.CAIStatusActiva,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.caiRepo.Create(ctx, cai); err != nil {
		return nil, err
	}
	return toCAIResponse(cai), nil
}

// List lista todas las autorizaciones registradas.
func (uc *CAIUseCase) List(ctx context.Context) ([]*dto.CAIResponse, error) {
	cais, err := uc.caiRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CAIResponse, 0, len(cais))
	for _, c := range cais {
		out = append(out, toCAIResponse(c))
	}
	return out, nil
}

// Cancel anula administrativamente un CAI; ningún documento más puede
// emitirse bajo él.
func (uc *CAIUseCase) Cancel(ctx context.Context, id string) (*dto.CAIResponse, error) {
	cai, err := uc.caiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cai == nil {
		return nil, domain.ErrCAINoEncontrado
	}
	if cai.Estado == entity.CAIStatusAnulada {
		return nil, domain.ErrCAINoActivo
	}
	if err := uc.caiRepo.UpdateEstado(ctx, id, entity.CAIStatusAnulada); err != nil {
		return nil, err
	}
	cai.Estado = entity.CAIStatusAnulada
	return toCAIResponse(cai), nil
}

func toCAIResponse(c *entity.CAI) *dto.CAIResponse {
	return &dto.CAIResponse{
		ID:              c.ID,
		Codigo:          c.Codigo,
		Establecimiento: c.Establecimiento,
		PuntoEmision:    c.PuntoEmision,
		TipoDocumento:   c.TipoDocumento,
		RangoDesde:      c.RangoDesde,
		RangoHasta:      c.RangoHasta,
		FechaLimite:     c.FechaLimite.Format(fechaLayout),
		Estado:          c.Estado,
	}
}
