package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// AppointmentRepository encapsulates appointment persistence. Bookings are
// plain inserts: overlapping schedules are not detected.
type AppointmentRepository interface {
	List(ctx context.Context, searchTerm string) ([]domain.AppointmentWithNames, error)
	Create(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.AppointmentForClient, error)
}

type appointmentRepository struct {
	pool   *pgxpool.Pool
	exists existsProbe
}

// NewAppointmentRepository returns a Postgres-backed implementation.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool, exists: poolExists(pool)}
}

func (r *appointmentRepository) List(ctx context.Context, searchTerm string) ([]domain.AppointmentWithNames, error) {
	clause, pattern := searchClause(appointmentSearchColumns, searchTerm, 1)
	query := fmt.Sprintf(`
        SELECT c.id_cita, c.id_usuario, c.id_paciente, c.id_servicio, c.fecha_cita, c.estado,
               u.nombre AS cliente_nombre, u.apellido AS cliente_apellido,
               p.nombre AS paciente_nombre, s.nombre AS servicio_nombre
        FROM citas c
        JOIN usuarios u ON c.id_usuario = u.id_usuario
        JOIN pacientes p ON c.id_paciente = p.id_paciente
        JOIN servicios s ON c.id_servicio = s.id_servicio
        WHERE %s
        ORDER BY c.id_cita ASC`, clause)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []domain.AppointmentWithNames{}
	for rows.Next() {
		var a domain.AppointmentWithNames
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.PatientID,
			&a.ServiceID,
			&a.FechaCita,
			&a.Estado,
			&a.ClienteNombre,
			&a.ClienteApellido,
			&a.PacienteNombre,
			&a.ServicioNombre,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := r.checkReferences(ctx, map[string]any{
		"id_usuario":  appointment.UserID,
		"id_paciente": appointment.PatientID,
		"id_servicio": appointment.ServiceID,
	}); err != nil {
		return err
	}

	const query = `
        INSERT INTO citas (id_usuario, id_paciente, id_servicio, fecha_cita, estado)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id_cita`

	return r.pool.QueryRow(ctx, query,
		appointment.UserID,
		appointment.PatientID,
		appointment.ServiceID,
		appointment.FechaCita,
		appointment.Estado,
	).Scan(&appointment.ID)
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if err := r.checkReferences(ctx, fields); err != nil {
		return err
	}

	setClause, args := buildUpdateSet(fields)
	query := fmt.Sprintf("UPDATE citas SET %s WHERE id_cita=$%d", setClause, len(args)+1)
	args = append(args, id)

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM citas WHERE id_cita=$1", id)
	return err
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.AppointmentForClient, error) {
	const query = `
        SELECT c.id_cita, c.id_usuario, c.id_paciente, c.id_servicio, c.fecha_cita, c.estado,
               p.nombre AS paciente_nombre, s.nombre AS servicio_nombre, s.precio
        FROM citas c
        JOIN pacientes p ON c.id_paciente = p.id_paciente
        JOIN servicios s ON c.id_servicio = s.id_servicio
        WHERE c.id_usuario=$1
        ORDER BY c.fecha_cita DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []domain.AppointmentForClient{}
	for rows.Next() {
		var a domain.AppointmentForClient
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.PatientID,
			&a.ServiceID,
			&a.FechaCita,
			&a.Estado,
			&a.PacienteNombre,
			&a.ServicioNombre,
			&a.Precio,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

var appointmentReferences = []struct {
	field, table, column, resource string
}{
	{"id_usuario", "usuarios", "id_usuario", "Usuario"},
	{"id_paciente", "pacientes", "id_paciente", "Paciente"},
	{"id_servicio", "servicios", "id_servicio", "Servicio"},
}

func (r *appointmentRepository) checkReferences(ctx context.Context, fields map[string]any) error {
	for _, ref := range appointmentReferences {
		id, ok := fields[ref.field].(int64)
		if !ok {
			continue
		}
		exists, err := r.exists(ctx, ref.table, ref.column, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewBadReference(ref.resource)
		}
	}
	return nil
}
