package dto

import "github.com/vetcare/clinic-service/internal/validation"

// ServiceCreateRequest is the admin payload for a billable service.
type ServiceCreateRequest struct {
	Nombre      string             `json:"nombre" validate:"required,min=1"`
	Descripcion string             `json:"descripcion" validate:"required,min=1"`
	Precio      *validation.Number `json:"precio" validate:"required,gte=0"`
}

// ServiceUpdateRequest edits a service; every field is optional.
type ServiceUpdateRequest struct {
	Nombre      *string            `json:"nombre" validate:"omitempty,min=1"`
	Descripcion *string            `json:"descripcion" validate:"omitempty,min=1"`
	Precio      *validation.Number `json:"precio" validate:"omitempty,gte=0"`
}

// Fields maps the supplied values to their columns for the partial update.
func (r ServiceUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Nombre != nil {
		fields["nombre"] = *r.Nombre
	}
	if r.Descripcion != nil {
		fields["descripcion"] = *r.Descripcion
	}
	if r.Precio != nil {
		fields["precio"] = r.Precio.Float()
	}
	return fields
}
