package domain

import "time"

// TicketStatus enumerates ticket lifecycle states.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Ticket is the pivot entity for staff visibility: a staff member owns a
// client by holding tickets assigned to them that reference that client.
type Ticket struct {
	ID         string
	ClientID   *string
	ProjectID  *string
	AssignedTo *string
	Subject    string
	Body       string
	Status     TicketStatus
	Priority   TicketPriority
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidTicketStatus reports membership in the status enum.
func ValidTicketStatus(status TicketStatus) bool {
	switch status {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ValidTicketPriority reports membership in the priority enum.
func ValidTicketPriority(priority TicketPriority) bool {
	switch priority {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}
