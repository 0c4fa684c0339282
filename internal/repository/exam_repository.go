package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
)

// ExamRepository encapsulates lab-exam persistence. Exams are client-created
// only; ownership of the referenced patient is enforced a level up.
type ExamRepository interface {
	Create(ctx context.Context, exam *domain.Exam) error
	ListByOwner(ctx context.Context, userID int64) ([]domain.ExamForClient, error)
}

type examRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository returns a Postgres-backed implementation.
func NewExamRepository(pool *pgxpool.Pool) ExamRepository {
	return &examRepository{pool: pool}
}

func (r *examRepository) Create(ctx context.Context, exam *domain.Exam) error {
	const query = `
        INSERT INTO examenes (id_paciente, tipo_examen, fecha_examen, resultado, observaciones, estado)
        VALUES ($1, $2, NOW(), $3, $4, $5)
        RETURNING id_examen, fecha_examen`

	return r.pool.QueryRow(ctx, query,
		exam.PatientID,
		exam.TipoExamen,
		exam.Resultado,
		exam.Observaciones,
		exam.Estado,
	).Scan(&exam.ID, &exam.FechaExamen)
}

func (r *examRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.ExamForClient, error) {
	const query = `
        SELECT e.id_examen, e.id_paciente, e.tipo_examen, e.fecha_examen,
               e.resultado, e.observaciones, e.estado,
               p.nombre AS paciente_nombre
        FROM examenes e
        JOIN pacientes p ON e.id_paciente = p.id_paciente
        WHERE p.id_usuario=$1
        ORDER BY e.fecha_examen DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []domain.ExamForClient{}
	for rows.Next() {
		var e domain.ExamForClient
		if err := rows.Scan(
			&e.ID,
			&e.PatientID,
			&e.TipoExamen,
			&e.FechaExamen,
			&e.Resultado,
			&e.Observaciones,
			&e.Estado,
			&e.PacienteNombre,
		); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
