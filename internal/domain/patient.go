package domain

// Patient is a pet owned by exactly one user.
type Patient struct {
	ID      int64   `json:"id_paciente"`
	UserID  int64   `json:"id_usuario"`
	Nombre  string  `json:"nombre"`
	Especie string  `json:"especie"`
	Raza    string  `json:"raza"`
	Edad    int     `json:"edad"`
	Peso    float64 `json:"peso"`
}

// PatientWithOwner is the admin listing row, joined with the owning user.
type PatientWithOwner struct {
	Patient
	PropietarioNombre   string `json:"propietario_nombre"`
	PropietarioApellido string `json:"propietario_apellido"`
}
