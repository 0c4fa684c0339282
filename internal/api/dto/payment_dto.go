package dto

import "github.com/vetcare/clinic-service/internal/validation"

// PaymentCreateRequest is the admin payload for recording a payment.
type PaymentCreateRequest struct {
	IDCita     *validation.Integer `json:"id_cita" validate:"required"`
	MetodoPago string              `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta_credito transferencia"`
	Monto      *validation.Number  `json:"monto" validate:"required,gte=0"`
	FechaPago  validation.DateTime `json:"fecha_pago" validate:"required"`
	Estado     string              `json:"estado" validate:"required,oneof=pendiente pagado fallido"`
}

// PaymentUpdateRequest edits a payment; every field is optional.
type PaymentUpdateRequest struct {
	IDCita     *validation.Integer  `json:"id_cita"`
	MetodoPago *string              `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta_credito transferencia"`
	Monto      *validation.Number   `json:"monto" validate:"omitempty,gte=0"`
	FechaPago  *validation.DateTime `json:"fecha_pago"`
	Estado     *string              `json:"estado" validate:"omitempty,oneof=pendiente pagado fallido"`
}

// Fields maps the supplied values to their columns for the partial update.
func (r PaymentUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.IDCita != nil {
		fields["id_cita"] = r.IDCita.Int()
	}
	if r.MetodoPago != nil {
		fields["metodo_pago"] = *r.MetodoPago
	}
	if r.Monto != nil {
		fields["monto"] = r.Monto.Float()
	}
	if r.FechaPago != nil {
		fields["fecha_pago"] = r.FechaPago.String()
	}
	if r.Estado != nil {
		fields["estado"] = *r.Estado
	}
	return fields
}
