package domain

import "time"

// AppointmentStatus enumerates appointment lifecycle states.
type AppointmentStatus string

const (
	AppointmentPendiente  AppointmentStatus = "pendiente"
	AppointmentConfirmada AppointmentStatus = "confirmada"
	AppointmentCompletada AppointmentStatus = "completada"
	AppointmentCancelada  AppointmentStatus = "cancelada"
)

// Appointment is a booked visit. Overlapping bookings for the same patient or
// veterinarian are not prevented; a booking is a plain insert.
type Appointment struct {
	ID        int64             `json:"id_cita"`
	UserID    int64             `json:"id_usuario"`
	PatientID int64             `json:"id_paciente"`
	ServiceID int64             `json:"id_servicio"`
	FechaCita time.Time         `json:"fecha_cita"`
	Estado    AppointmentStatus `json:"estado"`
}

// AppointmentWithNames is the admin listing row, joined with client, patient and service.
type AppointmentWithNames struct {
	Appointment
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteApellido string `json:"cliente_apellido"`
	PacienteNombre  string `json:"paciente_nombre"`
	ServicioNombre  string `json:"servicio_nombre"`
}

// AppointmentForClient is the client portal row, including the service price.
type AppointmentForClient struct {
	Appointment
	PacienteNombre   string  `json:"paciente_nombre"`
	ServicioNombre   string  `json:"servicio_nombre"`
	Precio           float64 `json:"precio"`
	PrecioFormateado string  `json:"precio_formateado"`
}
