package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRecorder writes audit entries to the console's own database.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

func NewPostgresRecorder(pool *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{pool: pool}
}

func (r *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log (admin_id, admin_email, action, resource, resource_id, request_id, detail, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
		e.AdminID, e.AdminEmail, e.Action, e.Resource, e.ResourceID, e.RequestID, e.Detail)
	return err
}

func (r *PostgresRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, admin_id, admin_email, action, resource, resource_id, request_id, detail, created_at
		 FROM audit_log ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminEmail, &e.Action, &e.Resource,
			&e.ResourceID, &e.RequestID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
