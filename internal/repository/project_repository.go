package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// ProjectRepository encapsulates project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Project, error)
	CountOpenByIDs(ctx context.Context, ids []string) (int, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, client_id, name, description, budget, status, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (client_id, name, description, budget, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		project.ClientID,
		project.Name,
		project.Description,
		project.Budget,
		project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET client_id=$1, name=$2, description=$3, budget=$4, status=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		project.ClientID,
		project.Name,
		project.Description,
		project.Budget,
		project.Status,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	var project domain.Project
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.ClientID,
		&project.Name,
		&project.Description,
		&project.Budget,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

func (r *projectRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Project, error) {
	if len(clientIDs) == 0 {
		return []domain.Project{}, nil
	}
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE client_id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

func (r *projectRepository) CountOpenByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const query = `
        SELECT COUNT(*) FROM projects
        WHERE id = ANY($1) AND status = ANY($2)`
	statuses := make([]string, len(domain.OpenProjectStatuses))
	for i, status := range domain.OpenProjectStatuses {
		statuses[i] = string(status)
	}
	var count int
	if err := r.pool.QueryRow(ctx, query, ids, statuses).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	var result []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.ClientID,
			&project.Name,
			&project.Description,
			&project.Budget,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}
