package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// Repository defines the credential-store lookup used during login and by
// the request authentication gate.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByUsername fetches a user, its role, and the role's permission names.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	const userQuery = `
		SELECT u.id, u.username, u.password_hash, r.name,
		       u.account_expired, u.account_locked, u.credentials_expired, u.enabled
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.username = $1`

	var (
		user     User
		roleName string
	)
	err := r.pool.QueryRow(ctx, userQuery, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&roleName,
		&user.AccountExpired,
		&user.AccountLocked,
		&user.CredentialsExpired,
		&user.Enabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	user.Role.Name = RoleName(roleName)

	const permQuery = `
		SELECT p.name
		FROM granted_permissions gp
		JOIN permissions p ON p.id = gp.permission_id
		JOIN roles r ON r.id = gp.role_id
		WHERE r.name = $1
		ORDER BY p.name`

	rows, err := r.pool.Query(ctx, permQuery, roleName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var perm string
		if err := rows.Scan(&perm); err != nil {
			return nil, err
		}
		user.Role.Permissions = append(user.Role.Permissions, perm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ Repository = (*PGRepository)(nil)
