package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/clinic-service/internal/domain"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	List(ctx context.Context, searchTerm string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetProfile(ctx context.Context, id int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id int64, nombre, apellido, telefono, direccion string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) List(ctx context.Context, searchTerm string) ([]domain.User, error) {
	clause, pattern := searchClause(userSearchColumns, searchTerm, 1)
	query := fmt.Sprintf(`
        SELECT id_usuario, nombre, apellido, email, telefono, direccion, rol, fecha_registro
        FROM usuarios
        WHERE %s
        ORDER BY id_usuario ASC`, clause)

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID,
			&u.Nombre,
			&u.Apellido,
			&u.Email,
			&u.Telefono,
			&u.Direccion,
			&u.Rol,
			&u.FechaRegistro,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO usuarios (nombre, apellido, email, password, telefono, direccion, rol, fecha_registro)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id_usuario, fecha_registro`

	return r.pool.QueryRow(ctx, query,
		user.Nombre,
		user.Apellido,
		user.Email,
		user.PasswordHash,
		user.Telefono,
		user.Direccion,
		user.Rol,
	).Scan(&user.ID, &user.FechaRegistro)
}

func (r *userRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	setClause, args := buildUpdateSet(fields)
	query := fmt.Sprintf("UPDATE usuarios SET %s WHERE id_usuario=$%d", setClause, len(args)+1)
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

// Delete removes the row unconditionally. A second delete of the same id is a
// no-op, never an error.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM usuarios WHERE id_usuario=$1", id)
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id_usuario, nombre, apellido, email, password, telefono, direccion, rol, fecha_registro
        FROM usuarios WHERE email=$1`

	var u domain.User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.Email,
		&u.PasswordHash,
		&u.Telefono,
		&u.Direccion,
		&u.Rol,
		&u.FechaRegistro,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	const query = `
        SELECT id_usuario, nombre, apellido, email, telefono, direccion
        FROM usuarios WHERE id_usuario=$1`

	var p domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Nombre,
		&p.Apellido,
		&p.Email,
		&p.Telefono,
		&p.Direccion,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, nombre, apellido, telefono, direccion string) error {
	const query = `
        UPDATE usuarios SET nombre=$1, apellido=$2, telefono=$3, direccion=$4
        WHERE id_usuario=$5`

	cmd, err := r.pool.Exec(ctx, query, nombre, apellido, telefono, direccion, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
