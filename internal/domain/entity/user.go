package entity

import "time"

// Roles disponibles. Un usuario puede tener varios (ej: admin + vendedor).
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleBodeguero = "bodeguero"
)

// User representa un perfil de usuario del sistema, siempre asociado a una
// bodega. Los trabajadores del módulo de RRHH son estos mismos perfiles.
type User struct {
	ID           string
	WarehouseID  string
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Roles        []string // ver constantes Role*
	Status       string   // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
