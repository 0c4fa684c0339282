package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
)

// ServiceRepository encapsulates the billable-service catalog.
type ServiceRepository interface {
	List(ctx context.Context, searchTerm string) ([]domain.Service, error)
	ListAll(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository returns a Postgres-backed implementation.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) List(ctx context.Context, searchTerm string) ([]domain.Service, error) {
	clause, pattern := searchClause(serviceSearchColumns, searchTerm, 1)
	query := fmt.Sprintf(`
        SELECT id_servicio, nombre, descripcion, precio
        FROM servicios
        WHERE %s
        ORDER BY id_servicio ASC`, clause)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

// ListAll is the client catalog view, ordered by name.
func (r *serviceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	const query = `
        SELECT id_servicio, nombre, descripcion, precio
        FROM servicios
        ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
        INSERT INTO servicios (nombre, descripcion, precio)
        VALUES ($1, $2, $3)
        RETURNING id_servicio`

	return r.pool.QueryRow(ctx, query,
		service.Nombre,
		service.Descripcion,
		service.Precio,
	).Scan(&service.ID)
}

func (r *serviceRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	setClause, args := buildUpdateSet(fields)
	query := fmt.Sprintf("UPDATE servicios SET %s WHERE id_servicio=$%d", setClause, len(args)+1)
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

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM servicios WHERE id_servicio=$1", id)
	return err
}

func scanServices(rows pgx.Rows) ([]domain.Service, error) {
	services := []domain.Service{}
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.Precio); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}
