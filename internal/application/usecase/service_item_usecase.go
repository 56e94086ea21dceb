package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
	"github.com/tallerpro/taller-api/internal/domain/repository"
)

// ServiceItemUseCase catálogo de mano de obra del taller.
type ServiceItemUseCase struct {
	serviceRepo repository.ServiceItemRepository
}

// NewServiceItemUseCase construye el caso de uso.
func NewServiceItemUseCase(serviceRepo repository.ServiceItemRepository) *ServiceItemUseCase {
	return &ServiceItemUseCase{serviceRepo: serviceRepo}
}

// Create da de alta un servicio del catálogo.
func (uc *ServiceItemUseCase) Create(ctx context.Context, in dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrCamposRequeridos
	}
	if in.PrecioBase.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if !fiscal.TasaSoportada(in.TasaISV) {
		return nil, domain.ErrTasaNoSoportada
	}
	now := time.Now()
	s := &entity.ServiceItem{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioBase:  in.PrecioBase,
		TasaISV:     in.TasaISV,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.serviceRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toServiceItemResponse(s), nil
}

// GetByID obtiene un servicio del catálogo.
func (uc *ServiceItemUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceItemResponse, error) {
	s, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrServicioNoEncontrado
	}
	return toServiceItemResponse(s), nil
}

// List lista el catálogo completo.
func (uc *ServiceItemUseCase) List(ctx context.Context) ([]*dto.ServiceItemResponse, error) {
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceItemResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceItemResponse(s))
	}
	return out, nil
}

func toServiceItemResponse(s *entity.ServiceItem) *dto.ServiceItemResponse {
	return &dto.ServiceItemResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		PrecioBase:  s.PrecioBase,
		TasaISV:     s.TasaISV,
	}
}
