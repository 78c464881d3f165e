package entity

import "time"

// Roles válidos para User. super_admin ve todos los tenants; admin y user
// quedan restringidos a su propio OwnerID.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// User representa un usuario del sistema (pertenece a un tenant/OwnerID).
type User struct {
	ID           string
	OwnerID      string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // super_admin, admin, user
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScopeOwner devuelve el filtro de tenant que aplica a este usuario:
// cadena vacía para super_admin (sin filtro), su OwnerID para el resto.
func (u *User) ScopeOwner() string {
	if u.Role == RoleSuperAdmin {
		return ""
	}
	return u.OwnerID
}
