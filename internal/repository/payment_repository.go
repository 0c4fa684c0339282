package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// PaymentRepository encapsulates payment persistence. Payments have no
// idempotency or reconciliation; a payment is a row with a status.
type PaymentRepository interface {
	List(ctx context.Context, searchTerm string) ([]domain.PaymentWithNames, error)
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentForClient, error)
}

type paymentRepository struct {
	pool   *pgxpool.Pool
	exists existsProbe
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool, exists: poolExists(pool)}
}

func (r *paymentRepository) List(ctx context.Context, searchTerm string) ([]domain.PaymentWithNames, error) {
	clause, pattern := searchClause(paymentSearchColumns, searchTerm, 1)
	query := fmt.Sprintf(`
        SELECT pa.id_pago, pa.id_cita, pa.metodo_pago, pa.monto, pa.fecha_pago, pa.estado,
               c.fecha_cita, u.nombre AS cliente_nombre,
               p.nombre AS paciente_nombre, s.nombre AS servicio_nombre
        FROM pagos pa
        JOIN citas c ON pa.id_cita = c.id_cita
        JOIN usuarios u ON c.id_usuario = u.id_usuario
        JOIN pacientes p ON c.id_paciente = p.id_paciente
        JOIN servicios s ON c.id_servicio = s.id_servicio
        WHERE %s
        ORDER BY pa.id_pago ASC`, clause)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.PaymentWithNames{}
	for rows.Next() {
		var p domain.PaymentWithNames
		if err := rows.Scan(
			&p.ID,
			&p.AppointmentID,
			&p.MetodoPago,
			&p.Monto,
			&p.FechaPago,
			&p.Estado,
			&p.FechaCita,
			&p.ClienteNombre,
			&p.PacienteNombre,
			&p.ServicioNombre,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	citaExists, err := r.exists(ctx, "citas", "id_cita", payment.AppointmentID)
	if err != nil {
		return err
	}
	if !citaExists {
		return apperrors.NewBadReference("Cita")
	}

	const query = `
        INSERT INTO pagos (id_cita, metodo_pago, monto, fecha_pago, estado)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id_pago`

	return r.pool.QueryRow(ctx, query,
		payment.AppointmentID,
		payment.MetodoPago,
		payment.Monto,
		payment.FechaPago,
		payment.Estado,
	).Scan(&payment.ID)
}

func (r *paymentRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if citaID, ok := fields["id_cita"].(int64); ok {
		citaExists, err := r.exists(ctx, "citas", "id_cita", citaID)
		if err != nil {
			return err
		}
		if !citaExists {
			return apperrors.NewBadReference("Cita")
		}
	}

	setClause, args := buildUpdateSet(fields)
	query := fmt.Sprintf("UPDATE pagos SET %s WHERE id_pago=$%d", setClause, len(args)+1)
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

// Delete checks the row first: a missing payment is a 404, unlike the
// unconditional deletes on the other entities.
func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	exists, err := r.exists(ctx, "pagos", "id_pago", id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Pago")
	}
	_, err = r.pool.Exec(ctx, "DELETE FROM pagos WHERE id_pago=$1", id)
	return err
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentForClient, error) {
	const query = `
        SELECT pa.id_pago, pa.id_cita, pa.metodo_pago, pa.monto, pa.fecha_pago, pa.estado,
               s.nombre AS servicio_nombre, c.fecha_cita
        FROM pagos pa
        JOIN citas c ON pa.id_cita = c.id_cita
        JOIN servicios s ON c.id_servicio = s.id_servicio
        WHERE c.id_usuario=$1
        ORDER BY pa.fecha_pago DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.PaymentForClient{}
	for rows.Next() {
		var p domain.PaymentForClient
		if err := rows.Scan(
			&p.ID,
			&p.AppointmentID,
			&p.MetodoPago,
			&p.Monto,
			&p.FechaPago,
			&p.Estado,
			&p.ServicioNombre,
			&p.FechaCita,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
