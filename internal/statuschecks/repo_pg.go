package statuschecks

import (
	"context"
	"database/sql"
)

// PGRepo stores status checks in the status_checks table.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, check StatusCheck) error {
	const query = `
INSERT INTO status_checks (id, client_name, created_at)
VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp)
	return err
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	const query = `
SELECT id, client_name, created_at FROM (
  SELECT seq, id, client_name, created_at
  FROM status_checks
  ORDER BY seq DESC
  LIMIT $1
) recent
ORDER BY seq ASC`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make([]StatusCheck, 0)
	for rows.Next() {
		var check StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, err
		}
		check.Timestamp = check.Timestamp.UTC()
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return checks, nil
}

// Ping reports whether the database is reachable.
func (r *PGRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
