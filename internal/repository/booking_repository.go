package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// BookingRepository encapsulates booking persistence. Bookings list soonest
// first, unlike the other entities.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, client_id, topic, scheduled_at, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (client_id, topic, scheduled_at, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.ClientID,
		booking.Topic,
		booking.ScheduledAt,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings SET client_id=$1, topic=$2, scheduled_at=$3, status=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		booking.ClientID,
		booking.Topic,
		booking.ScheduledAt,
		booking.Status,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.Topic,
		&booking.ScheduledAt,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY scheduled_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Booking, error) {
	if len(clientIDs) == 0 {
		return []domain.Booking{}, nil
	}
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE client_id = ANY($1) ORDER BY scheduled_at ASC`
	rows, err := r.pool.Query(ctx, query, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.ClientID,
			&booking.Topic,
			&booking.ScheduledAt,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
