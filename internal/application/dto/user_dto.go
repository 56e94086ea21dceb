package dto

// CreateUserRequest body para POST /api/usuarios (solo admin).
type CreateUserRequest struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | cajero | mecanico
}

// UpdateUserRoleRequest body para PUT /api/usuarios/:id/rol.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
	Activo bool   `json:"activo"`
}
