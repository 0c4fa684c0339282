package domain

import "time"

// PaymentMethod enumerates accepted payment methods.
type PaymentMethod string

const (
	PaymentEfectivo       PaymentMethod = "efectivo"
	PaymentTarjetaCredito PaymentMethod = "tarjeta_credito"
	PaymentTransferencia  PaymentMethod = "transferencia"
)

// PaymentStatus enumerates payment lifecycle states.
type PaymentStatus string

const (
	PaymentPendiente PaymentStatus = "pendiente"
	PaymentPagado    PaymentStatus = "pagado"
	PaymentFallido   PaymentStatus = "fallido"
)

// Payment is a row against one appointment. Payments are never created
// automatically from appointment completion.
type Payment struct {
	ID            int64         `json:"id_pago"`
	AppointmentID int64         `json:"id_cita"`
	MetodoPago    PaymentMethod `json:"metodo_pago"`
	Monto         float64       `json:"monto"`
	FechaPago     time.Time     `json:"fecha_pago"`
	Estado        PaymentStatus `json:"estado"`
}

// PaymentWithNames is the admin listing row, joined through the appointment chain.
type PaymentWithNames struct {
	Payment
	FechaCita      time.Time `json:"fecha_cita"`
	ClienteNombre  string    `json:"cliente_nombre"`
	PacienteNombre string    `json:"paciente_nombre"`
	ServicioNombre string    `json:"servicio_nombre"`
}

// PaymentForClient is the client portal row.
type PaymentForClient struct {
	Payment
	ServicioNombre string    `json:"servicio_nombre"`
	FechaCita      time.Time `json:"fecha_cita"`
}
