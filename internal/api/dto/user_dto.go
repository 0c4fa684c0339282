package dto

// RegisterRequest is the public registration payload. Role is never accepted
// here; registration always produces a cliente.
type RegisterRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellido  string `json:"apellido" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Telefono  string `json:"telefono" validate:"required,min=7"`
	Direccion string `json:"direccion" validate:"required,min=3"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AdminUserCreateRequest creates an account with any role. The stored password
// is an empty placeholder; the account cannot log in until one is set.
type AdminUserCreateRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellido  string `json:"apellido" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required,min=7"`
	Direccion string `json:"direccion" validate:"required,min=3"`
	Rol       string `json:"rol" validate:"required,oneof=cliente veterinario admin"`
}

// AdminUserUpdateRequest edits an account. Email and rol are the only optional
// fields; the rest stay required on update.
type AdminUserUpdateRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	Apellido  string  `json:"apellido" validate:"required,min=2"`
	Telefono  string  `json:"telefono" validate:"required,min=7"`
	Direccion string  `json:"direccion" validate:"required,min=3"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Rol       *string `json:"rol" validate:"omitempty,oneof=cliente veterinario admin"`
}

// Fields maps the supplied values to their columns for the partial update.
func (r AdminUserUpdateRequest) Fields() map[string]any {
	fields := map[string]any{
		"nombre":    r.Nombre,
		"apellido":  r.Apellido,
		"telefono":  r.Telefono,
		"direccion": r.Direccion,
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Rol != nil {
		fields["rol"] = *r.Rol
	}
	return fields
}

// ProfileUpdateRequest is the client self-service profile edit.
type ProfileUpdateRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellido  string `json:"apellido" validate:"required,min=2"`
	Telefono  string `json:"telefono" validate:"required,min=7"`
	Direccion string `json:"direccion" validate:"required,min=3"`
}
