package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// InvoiceRepository encapsulates invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

const invoiceColumns = `id, client_id, number, amount, status, due_date, created_at, updated_at`

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        INSERT INTO invoices (client_id, number, amount, status, due_date)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		invoice.ClientID,
		invoice.Number,
		invoice.Amount,
		invoice.Status,
		invoice.DueDate,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        UPDATE invoices SET client_id=$1, number=$2, amount=$3, status=$4, due_date=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		invoice.ClientID,
		invoice.Number,
		invoice.Amount,
		invoice.Status,
		invoice.DueDate,
		invoice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1`
	var invoice domain.Invoice
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.ClientID,
		&invoice.Number,
		&invoice.Amount,
		&invoice.Status,
		&invoice.DueDate,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func (r *invoiceRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Invoice, error) {
	if len(clientIDs) == 0 {
		return []domain.Invoice{}, nil
	}
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func scanInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	var result []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.ClientID,
			&invoice.Number,
			&invoice.Amount,
			&invoice.Status,
			&invoice.DueDate,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, invoice)
	}
	return result, rows.Err()
}
