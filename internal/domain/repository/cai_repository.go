package repository

import (
	"context"

	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// CAIRepository puerto de persistencia para autorizaciones CAI.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type CAIRepository interface {
	Create(ctx context.Context, cai *entity.CAI) error
	GetByID(ctx context.Context, id string) (*entity.CAI, error)
	// GetByIDForUpdate bloquea la fila del CAI durante la transacción actual
	// (SELECT ... FOR UPDATE). Es la sección crítica del asignador de
	// secuencias: serializa emisiones concurrentes contra el mismo CAI.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.CAI, error)
	List(ctx context.Context) ([]*entity.CAI, error)
	UpdateEstado(ctx context.Context, id, estado string) error
}
