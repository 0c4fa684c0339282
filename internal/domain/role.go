package domain

// Role scopes every protected endpoint. There is no hierarchy: an admin token
// does not satisfy a cliente-only check, nor the other way around.
type Role string

const (
	RoleCliente     Role = "cliente"
	RoleVeterinario Role = "veterinario"
	RoleAdmin       Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleCliente, RoleVeterinario, RoleAdmin:
		return true
	}
	return false
}
