package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios del taller (solo admin). No emite
// tokens: la autenticación la resuelve la capa de transporte con el JWT ya
// emitido por el tooling del operador.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create da de alta un usuario con password hasheado con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Nombre == "" || len(in.Password) < 8 {
		return nil, domain.ErrCamposRequeridos
	}
	switch in.Role {
	case entity.RoleAdmin, entity.RoleCajero, entity.RoleMecanico:
	default:
		return nil, domain.ErrEntradaInvalida
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Nombre:       in.Nombre,
		PasswordHash: string(hash),
		Role:         in.Role,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario.
func (uc *UserUseCase) UpdateRole(ctx context.Context, id string, in dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	switch in.Role {
	case entity.RoleAdmin, entity.RoleCajero, entity.RoleMecanico:
	default:
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := uc.userRepo.UpdateRole(ctx, id, in.Role); err != nil {
		return nil, err
	}
	u.Role = in.Role
	return toUserResponse(u), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Nombre: u.Nombre,
		Role:   u.Role,
		Activo: u.Activo,
	}
}
