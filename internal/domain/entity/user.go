package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleAnalista = "analista"
)

// User representa un usuario con acceso a los reportes del negocio.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, analista
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
