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

// ProductUseCase CRUD del catálogo de repuestos e insumos del taller.
// El stock no se edita por aquí: solo lo mutan la facturación, la anulación
// y los movimientos de inventario explícitos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create da de alta un producto. El SKU es único; el duplicado lo detecta la
// constraint y llega como ErrDuplicado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Nombre == "" {
		return nil, domain.ErrCamposRequeridos
	}
	switch in.Tipo {
	case entity.ProductTipoProducto, entity.ProductTipoServicio:
	case "":
		in.Tipo = entity.ProductTipoProducto
	default:
		return nil, domain.ErrEntradaInvalida
	}
	if in.Precio.IsNegative() || in.Stock.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if !fiscal.TasaSoportada(in.TasaISV) {
		return nil, domain.ErrTasaNoSoportada
	}

	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Tipo:        in.Tipo,
		Precio:      in.Precio,
		TasaISV:     in.TasaISV,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	return toProductResponse(p), nil
}

// List lista el catálogo paginado.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update modifica nombre, descripción, precio o tasa. Los campos nil no se
// tocan; SKU, tipo y stock son inmutables por esta vía.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNoEncontrado
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Descripcion != "" {
		p.Descripcion = in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		p.Precio = *in.Precio
	}
	if in.TasaISV != nil {
		if !fiscal.TasaSoportada(*in.TasaISV) {
			return nil, domain.ErrTasaNoSoportada
		}
		p.TasaISV = *in.TasaISV
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Tipo:        p.Tipo,
		Precio:      p.Precio,
		TasaISV:     p.TasaISV,
		Stock:       p.Stock,
	}
}
