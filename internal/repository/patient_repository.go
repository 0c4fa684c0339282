package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// PatientRepository encapsulates pet persistence.
type PatientRepository interface {
	List(ctx context.Context, searchTerm string) ([]domain.PatientWithOwner, error)
	Create(ctx context.Context, patient *domain.Patient) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, userID int64) ([]domain.Patient, error)
	OwnedBy(ctx context.Context, patientID, userID int64) (bool, error)
}

type patientRepository struct {
	pool   *pgxpool.Pool
	exists existsProbe
}

// NewPatientRepository returns a Postgres-backed implementation.
func NewPatientRepository(pool *pgxpool.Pool) PatientRepository {
	return &patientRepository{pool: pool, exists: poolExists(pool)}
}

func (r *patientRepository) List(ctx context.Context, searchTerm string) ([]domain.PatientWithOwner, error) {
	clause, pattern := searchClause(patientSearchColumns, searchTerm, 1)
	query := fmt.Sprintf(`
        SELECT p.id_paciente, p.id_usuario, p.nombre, p.especie, p.raza, p.edad, p.peso,
               u.nombre AS propietario_nombre, u.apellido AS propietario_apellido
        FROM pacientes p
        JOIN usuarios u ON p.id_usuario = u.id_usuario
        WHERE %s
        ORDER BY p.id_paciente ASC`, clause)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []domain.PatientWithOwner{}
	for rows.Next() {
		var p domain.PatientWithOwner
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Nombre,
			&p.Especie,
			&p.Raza,
			&p.Edad,
			&p.Peso,
			&p.PropietarioNombre,
			&p.PropietarioApellido,
		); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	ownerExists, err := r.exists(ctx, "usuarios", "id_usuario", patient.UserID)
	if err != nil {
		return err
	}
	if !ownerExists {
		return apperrors.NewBadReference("Usuario")
	}

	const query = `
        INSERT INTO pacientes (id_usuario, nombre, especie, raza, edad, peso)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id_paciente`

	return r.pool.QueryRow(ctx, query,
		patient.UserID,
		patient.Nombre,
		patient.Especie,
		patient.Raza,
		patient.Edad,
		patient.Peso,
	).Scan(&patient.ID)
}

func (r *patientRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if ownerID, ok := fields["id_usuario"].(int64); ok {
		ownerExists, err := r.exists(ctx, "usuarios", "id_usuario", ownerID)
		if err != nil {
			return err
		}
		if !ownerExists {
			return apperrors.NewBadReference("Usuario")
		}
	}

	setClause, args := buildUpdateSet(fields)
	query := fmt.Sprintf("UPDATE pacientes SET %s WHERE id_paciente=$%d", setClause, len(args)+1)
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

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM pacientes WHERE id_paciente=$1", id)
	return err
}

func (r *patientRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.Patient, error) {
	const query = `
        SELECT id_paciente, id_usuario, nombre, especie, raza, edad, peso
        FROM pacientes WHERE id_usuario=$1
        ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.UserID, &p.Nombre, &p.Especie, &p.Raza, &p.Edad, &p.Peso); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// OwnedBy reports whether the patient exists and belongs to the user.
func (r *patientRepository) OwnedBy(ctx context.Context, patientID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM pacientes WHERE id_paciente=$1 AND id_usuario=$2)`
	var owned bool
	if err := r.pool.QueryRow(ctx, query, patientID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}
