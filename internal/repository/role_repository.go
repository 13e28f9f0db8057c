package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// RoleRepository exposes role membership lookups. Scope checks always read
// current rows; role data is never cached.
type RoleRepository interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Role, error)
	RoleMap(ctx context.Context, userIDs []string) (map[string]domain.RoleSet, error)
	Grant(ctx context.Context, userID string, role domain.Role) error
	Revoke(ctx context.Context, userID string, role domain.Role) error
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) ListForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	const query = `SELECT role FROM user_roles WHERE user_id=$1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) RoleMap(ctx context.Context, userIDs []string) (map[string]domain.RoleSet, error) {
	result := make(map[string]domain.RoleSet, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	const query = `SELECT user_id, role FROM user_roles WHERE user_id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var role domain.Role
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, err
		}
		set, ok := result[userID]
		if !ok {
			set = make(domain.RoleSet)
			result[userID] = set
		}
		set[role] = struct{}{}
	}
	return result, rows.Err()
}

func (r *roleRepository) Grant(ctx context.Context, userID string, role domain.Role) error {
	const query = `
        INSERT INTO user_roles (user_id, role)
        VALUES ($1, $2)
        ON CONFLICT (user_id, role) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, userID, role)
	return err
}

func (r *roleRepository) Revoke(ctx context.Context, userID string, role domain.Role) error {
	const query = `DELETE FROM user_roles WHERE user_id=$1 AND role=$2`
	_, err := r.pool.Exec(ctx, query, userID, role)
	return err
}
