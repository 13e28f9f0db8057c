package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// TicketFilter captures listing parameters for tickets.
type TicketFilter struct {
	AssignedTo *string
	ClientIDs  []string
	Statuses   []domain.TicketStatus
	Priorities []domain.TicketPriority
}

// TicketRepository encapsulates ticket persistence. Tickets drive scope
// derivation, so listing by assignee is a first-class operation.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByAssignee(ctx context.Context, assigneeID string, statuses ...domain.TicketStatus) ([]domain.Ticket, error)
	ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, client_id, project_id, assigned_to, subject, body, status, priority, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (client_id, project_id, assigned_to, subject, body, status, priority)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.ClientID,
		ticket.ProjectID,
		ticket.AssignedTo,
		ticket.Subject,
		ticket.Body,
		ticket.Status,
		ticket.Priority,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET client_id=$1, project_id=$2, assigned_to=$3, subject=$4, body=$5,
            status=$6, priority=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.ClientID,
		ticket.ProjectID,
		ticket.AssignedTo,
		ticket.Subject,
		ticket.Body,
		ticket.Status,
		ticket.Priority,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ClientID,
		&ticket.ProjectID,
		&ticket.AssignedTo,
		&ticket.Subject,
		&ticket.Body,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	return r.ListWithFilter(ctx, TicketFilter{})
}

func (r *ticketRepository) ListByAssignee(ctx context.Context, assigneeID string, statuses ...domain.TicketStatus) ([]domain.Ticket, error) {
	return r.ListWithFilter(ctx, TicketFilter{AssignedTo: &assigneeID, Statuses: statuses})
}

func (r *ticketRepository) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Ticket, error) {
	if len(clientIDs) == 0 {
		return []domain.Ticket{}, nil
	}
	return r.ListWithFilter(ctx, TicketFilter{ClientIDs: clientIDs})
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	base := `SELECT ` + ticketColumns + ` FROM tickets`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		clauses = append(clauses, fmt.Sprintf("assigned_to=$%d", len(args)))
	}
	if len(filter.ClientIDs) > 0 {
		args = append(args, filter.ClientIDs)
		clauses = append(clauses, fmt.Sprintf("client_id = ANY($%d)", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, pr := range filter.Priorities {
			args = append(args, pr)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.ClientID,
			&ticket.ProjectID,
			&ticket.AssignedTo,
			&ticket.Subject,
			&ticket.Body,
			&ticket.Status,
			&ticket.Priority,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
