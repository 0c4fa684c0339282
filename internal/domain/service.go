package domain

// Service is a billable clinic service, admin-managed.
type Service struct {
	ID          int64   `json:"id_servicio"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
}

// ServiceForClient adds the display price used by the client portal.
type ServiceForClient struct {
	Service
	PrecioFormateado string `json:"precio_formateado"`
}
