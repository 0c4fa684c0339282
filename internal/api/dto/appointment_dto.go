package dto

import "github.com/vetcare/clinic-service/internal/validation"

// AppointmentCreateRequest is the admin payload; any status may be set.
type AppointmentCreateRequest struct {
	IDUsuario  *validation.Integer `json:"id_usuario" validate:"required"`
	IDPaciente *validation.Integer `json:"id_paciente" validate:"required"`
	IDServicio *validation.Integer `json:"id_servicio" validate:"required"`
	FechaCita  validation.DateTime `json:"fecha_cita" validate:"required"`
	Estado     string              `json:"estado" validate:"required,oneof=pendiente confirmada completada cancelada"`
}

// AppointmentUpdateRequest edits an appointment. The three references are
// optional; schedule and status stay required.
type AppointmentUpdateRequest struct {
	IDUsuario  *validation.Integer `json:"id_usuario"`
	IDPaciente *validation.Integer `json:"id_paciente"`
	IDServicio *validation.Integer `json:"id_servicio"`
	FechaCita  validation.DateTime `json:"fecha_cita" validate:"required"`
	Estado     string              `json:"estado" validate:"required,oneof=pendiente confirmada completada cancelada"`
}

// Fields maps the supplied values to their columns for the partial update.
func (r AppointmentUpdateRequest) Fields() map[string]any {
	fields := map[string]any{
		"fecha_cita": r.FechaCita.String(),
		"estado":     r.Estado,
	}
	if r.IDUsuario != nil {
		fields["id_usuario"] = r.IDUsuario.Int()
	}
	if r.IDPaciente != nil {
		fields["id_paciente"] = r.IDPaciente.Int()
	}
	if r.IDServicio != nil {
		fields["id_servicio"] = r.IDServicio.Int()
	}
	return fields
}

// ClientAppointmentCreateRequest books a visit from the portal. The owner
// comes from the token and the status is always forced to pendiente.
type ClientAppointmentCreateRequest struct {
	IDPaciente *validation.Integer `json:"id_paciente" validate:"required"`
	IDServicio *validation.Integer `json:"id_servicio" validate:"required"`
	FechaCita  validation.DateTime `json:"fecha_cita" validate:"required"`
}
