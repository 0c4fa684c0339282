package domain

import "time"

// User is an account holder: clinic clients, veterinarians and administrators
// share the usuarios table, differentiated by Rol.
type User struct {
	ID            int64     `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	Rol           Role      `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// PublicUser is the projection returned by login: never the hash, never contact data.
type PublicUser struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      Role   `json:"rol"`
}

// Public strips the user down to its login projection.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Nombre: u.Nombre, Apellido: u.Apellido, Rol: u.Rol}
}

// Profile is the self-service view of an account, without role or hash.
type Profile struct {
	ID        int64  `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
