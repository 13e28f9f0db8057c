package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// ContentRepository serves the public content collections. All collections
// share one column shape, so a single implementation covers every table;
// the kind is validated before it reaches the query text.
type ContentRepository interface {
	ListByKind(ctx context.Context, kind domain.ContentKind, publishedOnly bool) ([]domain.ContentItem, error)
	GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
	SetPublished(ctx context.Context, kind domain.ContentKind, id string, published bool) error
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository instantiates repository.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) ListByKind(ctx context.Context, kind domain.ContentKind, publishedOnly bool) ([]domain.ContentItem, error) {
	if !domain.ValidContentKind(kind) {
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	query := fmt.Sprintf(`SELECT id, title, slug, body, published, created_at, updated_at FROM %s`, kind)
	if publishedOnly {
		query += ` WHERE published IS TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContentItem
	for rows.Next() {
		item := domain.ContentItem{Kind: kind}
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Slug,
			&item.Body,
			&item.Published,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *contentRepository) GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	if !domain.ValidContentKind(kind) {
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	query := fmt.Sprintf(`SELECT id, title, slug, body, published, created_at, updated_at FROM %s WHERE id=$1`, kind)

	item := domain.ContentItem{Kind: kind}
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.Body,
		&item.Published,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository) SetPublished(ctx context.Context, kind domain.ContentKind, id string, published bool) error {
	if !domain.ValidContentKind(kind) {
		return fmt.Errorf("unknown content kind %q", kind)
	}
	query := fmt.Sprintf(`UPDATE %s SET published=$1, updated_at=NOW() WHERE id=$2`, kind)
	cmd, err := r.pool.Exec(ctx, query, published, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
