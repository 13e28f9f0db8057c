package dto

import (
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// TicketResponse is the back-office ticket row.
type TicketResponse struct {
	ID         string                `json:"id"`
	ClientID   *string               `json:"client_id"`
	ProjectID  *string               `json:"project_id"`
	AssignedTo *string               `json:"assigned_to"`
	Subject    string                `json:"subject"`
	Status     domain.TicketStatus   `json:"status"`
	Priority   domain.TicketPriority `json:"priority"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// QuoteResponse is the back-office quote row.
type QuoteResponse struct {
	ID            string             `json:"id"`
	ClientID      *string            `json:"client_id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	EstimatedCost int64              `json:"estimated_cost"`
	Status        domain.QuoteStatus `json:"status"`
	Metadata      map[string]any     `json:"metadata,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// InvoiceResponse is the back-office invoice row.
type InvoiceResponse struct {
	ID        string               `json:"id"`
	ClientID  *string              `json:"client_id"`
	Number    string               `json:"number"`
	Amount    int64                `json:"amount"`
	Status    domain.InvoiceStatus `json:"status"`
	DueDate   *time.Time           `json:"due_date"`
	CreatedAt time.Time            `json:"created_at"`
}

// BookingResponse is the back-office booking row.
type BookingResponse struct {
	ID          string               `json:"id"`
	ClientID    *string              `json:"client_id"`
	Topic       string               `json:"topic"`
	ScheduledAt time.Time            `json:"scheduled_at"`
	Status      domain.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ProjectResponse is the back-office project row.
type ProjectResponse struct {
	ID          string               `json:"id"`
	ClientID    *string              `json:"client_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Budget      float64              `json:"budget"`
	Status      domain.ProjectStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AccountResponse is the back-office profile row. Password hashes never
// leave the service.
type AccountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	ClientCode string    `json:"client_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateStatusRequest carries a status transition for any entity.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePriorityRequest carries a ticket priority change.
type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

// AssignRequest points a ticket at a staff member; null unassigns.
type AssignRequest struct {
	StaffID *string `json:"staff_id"`
}

// AttachProjectRequest links a ticket to a project; null detaches.
type AttachProjectRequest struct {
	ProjectID *string `json:"project_id"`
}

// RescheduleRequest moves a booking.
type RescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ConvertQuoteResponse reports both halves of the conversion.
type ConvertQuoteResponse struct {
	Project ProjectResponse `json:"project"`
	Quote   QuoteResponse   `json:"quote"`
}
