package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// AccountRepository defines persistence access for profiles.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Account, error)
	CountCreatedSince(ctx context.Context, ids []string, since time.Time) (int, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

const accountColumns = `id, email, full_name, client_code, password_hash, created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO profiles (email, full_name, client_code, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.FullName,
		account.ClientCode,
		account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE profiles SET email=$1, full_name=$2, client_code=$3, password_hash=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		account.Email,
		account.FullName,
		account.ClientCode,
		account.PasswordHash,
		account.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM profiles WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.FullName,
		&account.ClientCode,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (r *accountRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Account, error) {
	if len(ids) == 0 {
		return []domain.Account{}, nil
	}
	const query = `SELECT ` + accountColumns + ` FROM profiles WHERE id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (r *accountRepository) CountCreatedSince(ctx context.Context, ids []string, since time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	const query = `SELECT COUNT(*) FROM profiles WHERE id = ANY($1) AND created_at >= $2`
	var count int
	if err := r.pool.QueryRow(ctx, query, ids, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanAccounts(rows pgx.Rows) ([]domain.Account, error) {
	var result []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.FullName,
			&account.ClientCode,
			&account.PasswordHash,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}
