package dto

import "github.com/vetcare/clinic-service/internal/validation"

// ClientExamCreateRequest requests a lab exam for an owned patient. Status is
// always forced to pendiente; the request timestamp is the server clock.
type ClientExamCreateRequest struct {
	IDPaciente    *validation.Integer `json:"id_paciente" validate:"required"`
	TipoExamen    string              `json:"tipo_examen" validate:"required,min=1"`
	Observaciones string              `json:"observaciones"`
}
