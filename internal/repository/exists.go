package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// existsProbe answers keyed existence questions for the reference checks. The
// repositories hold it as a seam, so check-then-write semantics can be
// exercised apart from the store.
type existsProbe func(ctx context.Context, table, idColumn string, id int64) (bool, error)

// poolExists binds the probe to a live pool.
func poolExists(pool *pgxpool.Pool) existsProbe {
	return func(ctx context.Context, table, idColumn string, id int64) (bool, error) {
		return rowExists(ctx, pool, table, idColumn, id)
	}
}

// rowExists runs a keyed existence probe. Reference checks before writes go
// through here; the FK constraints at the store close the remaining race.
func rowExists(ctx context.Context, pool *pgxpool.Pool, table, idColumn string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s=$1)", table, idColumn)
	var exists bool
	if err := pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
