package dto

import "github.com/vetcare/clinic-service/internal/validation"

// PatientCreateRequest is the admin payload for registering a pet. Numeric
// fields are pointers so a literal 0 still counts as supplied.
type PatientCreateRequest struct {
	IDUsuario *validation.Integer `json:"id_usuario" validate:"required"`
	Nombre    string              `json:"nombre" validate:"required,min=1"`
	Especie   string              `json:"especie" validate:"required,min=1"`
	Raza      string              `json:"raza" validate:"required,min=1"`
	Edad      *validation.Integer `json:"edad" validate:"required,gte=0"`
	Peso      *validation.Number  `json:"peso" validate:"required,gte=0"`
}

// PatientUpdateRequest edits a pet. Only the owner reference is optional.
type PatientUpdateRequest struct {
	IDUsuario *validation.Integer `json:"id_usuario"`
	Nombre    string              `json:"nombre" validate:"required,min=1"`
	Especie   string              `json:"especie" validate:"required,min=1"`
	Raza      string              `json:"raza" validate:"required,min=1"`
	Edad      *validation.Integer `json:"edad" validate:"required,gte=0"`
	Peso      *validation.Number  `json:"peso" validate:"required,gte=0"`
}

// Fields maps the supplied values to their columns for the partial update.
func (r PatientUpdateRequest) Fields() map[string]any {
	fields := map[string]any{
		"nombre":  r.Nombre,
		"especie": r.Especie,
		"raza":    r.Raza,
		"edad":    r.Edad.Int(),
		"peso":    r.Peso.Float(),
	}
	if r.IDUsuario != nil {
		fields["id_usuario"] = r.IDUsuario.Int()
	}
	return fields
}

// ClientPetCreateRequest is the client portal payload; the owner comes from
// the token, never from the body.
type ClientPetCreateRequest struct {
	Nombre  string              `json:"nombre" validate:"required,min=1"`
	Especie string              `json:"especie" validate:"required,min=1"`
	Raza    string              `json:"raza" validate:"required,min=1"`
	Edad    *validation.Integer `json:"edad" validate:"required,gte=0"`
	Peso    *validation.Number  `json:"peso" validate:"required,gte=0"`
}
