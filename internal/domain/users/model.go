package users

import (
	"strings"
	"time"
)

// Role define los roles soportados del backoffice.
// @Enum super_admin, admin, viewer
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleViewer     Role = "viewer"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// User es una cuenta de staff. El email se persiste siempre lowercased.
type User struct {
	ID             string
	Email          string
	HashedPassword string

	FirstName string
	LastName  string

	Role     Role
	IsActive bool

	LastLogin *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName cae al email cuando faltan nombres (igual que la UI lo espera).
func (u User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Email
}

func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// NormalizeEmail aplica la normalización con la que se indexa users.email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
