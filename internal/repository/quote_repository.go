package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// QuoteRepository encapsulates quote persistence.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	Update(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context) ([]domain.Quote, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Quote, error)
	CountPendingByClientIDs(ctx context.Context, clientIDs []string) (int, error)
}

type quoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository instantiates repository.
func NewQuoteRepository(pool *pgxpool.Pool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

const quoteColumns = `id, client_id, title, description, estimated_cost, status, metadata, created_at, updated_at`

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	const query = `
        INSERT INTO quotes (client_id, title, description, estimated_cost, status, metadata)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		quote.ClientID,
		quote.Title,
		quote.Description,
		quote.EstimatedCost,
		quote.Status,
		quote.Metadata,
	).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt)
}

func (r *quoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	const query = `
        UPDATE quotes SET client_id=$1, title=$2, description=$3, estimated_cost=$4,
            status=$5, metadata=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		quote.ClientID,
		quote.Title,
		quote.Description,
		quote.EstimatedCost,
		quote.Status,
		quote.Metadata,
		quote.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE id=$1`
	var quote domain.Quote
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&quote.ID,
		&quote.ClientID,
		&quote.Title,
		&quote.Description,
		&quote.EstimatedCost,
		&quote.Status,
		&quote.Metadata,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context) ([]domain.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func (r *quoteRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Quote, error) {
	if len(clientIDs) == 0 {
		return []domain.Quote{}, nil
	}
	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE client_id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func (r *quoteRepository) CountPendingByClientIDs(ctx context.Context, clientIDs []string) (int, error) {
	if len(clientIDs) == 0 {
		return 0, nil
	}
	const query = `SELECT COUNT(*) FROM quotes WHERE client_id = ANY($1) AND status=$2`
	var count int
	if err := r.pool.QueryRow(ctx, query, clientIDs, domain.QuoteStatusPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanQuotes(rows pgx.Rows) ([]domain.Quote, error) {
	var result []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		if err := rows.Scan(
			&quote.ID,
			&quote.ClientID,
			&quote.Title,
			&quote.Description,
			&quote.EstimatedCost,
			&quote.Status,
			&quote.Metadata,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, quote)
	}
	return result, rows.Err()
}
