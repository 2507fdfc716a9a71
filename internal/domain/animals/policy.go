package animals

import "openadopt/internal/domain/users"

// La autorización sobre fichas se evalúa una sola vez por request vía
// estas funciones, en lugar de comparar roles en cada handler:
// ScopeFor da el filtro de visibilidad para listados/counts y CanManage
// la decisión sobre un recurso concreto ya resuelto.

// Scope filtra listados por owner. OwnerID vacío = sin filtro.
type Scope struct {
	OwnerID string
}

func (s Scope) Unrestricted() bool {
	return s.OwnerID == ""
}

func (s Scope) Matches(a Animal) bool {
	return s.Unrestricted() || a.CreatedByID == s.OwnerID
}

// ScopeFor: super_admin ve todo; cualquier otro staff solo lo propio.
func ScopeFor(u users.User) Scope {
	if u.IsSuperAdmin() {
		return Scope{}
	}
	return Scope{OwnerID: u.ID}
}

// CanManage decide lectura/mutación sobre una ficha ya resuelta. Que esto
// sea un paso separado del fetch permite distinguir "no existe" (404) de
// "existe pero no es tuya" (401) en los handlers.
func CanManage(u users.User, a Animal) bool {
	return u.IsSuperAdmin() || a.CreatedByID == u.ID
}

// IsStaff: viewer queda afuera de toda la superficie admin.
func IsStaff(u users.User) bool {
	return u.Role == users.RoleAdmin || u.Role == users.RoleSuperAdmin
}
