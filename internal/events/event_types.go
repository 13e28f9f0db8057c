package events

import (
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketStatusChanged  EventType = "ticket_status_changed"
	EventTicketAssigned       EventType = "ticket_assigned"
	EventQuoteStatusChanged   EventType = "quote_status_changed"
	EventQuoteConverted       EventType = "quote_converted"
	EventInvoiceStatusChanged EventType = "invoice_status_changed"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventBookingRescheduled   EventType = "booking_rescheduled"
	EventContentPublishFlip   EventType = "content_publish_flipped"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssignedTo *string `json:"assigned_to,omitempty"`
	ProjectID  *string `json:"project_id,omitempty"`
}

// QuoteStatusChangedPayload payload.
type QuoteStatusChangedPayload struct {
	OldStatus domain.QuoteStatus `json:"old_status"`
	NewStatus domain.QuoteStatus `json:"new_status"`
}

// QuoteConvertedPayload payload.
type QuoteConvertedPayload struct {
	ProjectID    string  `json:"project_id"`
	ClientID     *string `json:"client_id,omitempty"`
	BudgetRupees float64 `json:"budget_rupees"`
}

// InvoiceStatusChangedPayload payload.
type InvoiceStatusChangedPayload struct {
	OldStatus domain.InvoiceStatus `json:"old_status"`
	NewStatus domain.InvoiceStatus `json:"new_status"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// BookingRescheduledPayload payload.
type BookingRescheduledPayload struct {
	OldTime time.Time `json:"old_time"`
	NewTime time.Time `json:"new_time"`
}

// ContentPublishFlipPayload payload.
type ContentPublishFlipPayload struct {
	Kind      domain.ContentKind `json:"kind"`
	Published bool               `json:"published"`
}
