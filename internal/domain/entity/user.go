package entity

import "time"

// Roles de usuario del taller.
const (
	RoleAdmin    = "admin"
	RoleCajero   = "cajero"
	RoleMecanico = "mecanico"
)

// User representa un usuario del sistema con rol para el RBAC del API.
// PasswordHash es bcrypt; nunca se serializa hacia el cliente.
type User struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	Role         string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
