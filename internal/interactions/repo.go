package interactions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// Repository defines persistence for the interaction log. Entries are written
// once and never updated or deleted.
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	List(ctx context.Context, page shared.PageQuery) ([]Entry, error)
	ListByUsername(ctx context.Context, username string, page shared.PageQuery) ([]Entry, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert persists one log entry.
func (r *PGRepository) Insert(ctx context.Context, entry Entry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_interaction_logs (url, http_method, username, remote_address, occurred_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.URL, entry.HTTPMethod, entry.Username, entry.RemoteAddress, entry.OccurredAt)
	return err
}

// List returns entries ordered by most recent first.
func (r *PGRepository) List(ctx context.Context, page shared.PageQuery) ([]Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, url, http_method, username, remote_address, occurred_at
		 FROM user_interaction_logs
		 ORDER BY occurred_at DESC, id DESC
		 OFFSET $1 LIMIT $2`,
		page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListByUsername returns entries for one username, most recent first.
func (r *PGRepository) ListByUsername(ctx context.Context, username string, page shared.PageQuery) ([]Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, url, http_method, username, remote_address, occurred_at
		 FROM user_interaction_logs
		 WHERE username = $1
		 ORDER BY occurred_at DESC, id DESC
		 OFFSET $2 LIMIT $3`,
		username, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgRows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.URL, &entry.HTTPMethod, &entry.Username, &entry.RemoteAddress, &entry.OccurredAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ Repository = (*PGRepository)(nil)
