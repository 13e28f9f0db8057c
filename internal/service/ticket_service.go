package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// TicketService applies single-row ticket mutations. Statuses are flat
// enums; any member may replace any other.
type TicketService struct {
	tickets    repository.TicketRepository
	roles      repository.RoleRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, roles repository.RoleRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, roles: roles, dispatcher: dispatcher}
}

// UpdateStatus writes a new status, validating enum membership first.
func (s *TicketService) UpdateStatus(ctx context.Context, actorID, ticketID string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, apperrors.NewValidationError("invalid ticket status", map[string]any{"status": status})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := ticket.Status
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventTicketStatusChanged,
		EntityID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	return ticket, nil
}

// UpdatePriority writes a new priority, validating enum membership first.
func (s *TicketService) UpdatePriority(ctx context.Context, actorID, ticketID string, priority domain.TicketPriority) (*domain.Ticket, error) {
	if !domain.ValidTicketPriority(priority) {
		return nil, apperrors.NewValidationError("invalid ticket priority", map[string]any{"priority": priority})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ticket.Priority = priority
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// Assign points a ticket at a staff member; nil unassigns. The assignee must
// currently hold the staff or admin role.
func (s *TicketService) Assign(ctx context.Context, actorID, ticketID string, staffID *string) (*domain.Ticket, error) {
	if staffID != nil {
		roles, err := s.roles.ListForUser(ctx, *staffID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		set := domain.NewRoleSet(roles)
		if !set.Has(domain.RoleStaff) && !set.Has(domain.RoleAdmin) {
			return nil, apperrors.NewValidationError("assignee is not staff", map[string]any{"staff_id": *staffID})
		}
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ticket.AssignedTo = staffID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventTicketAssigned,
		EntityID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketAssignedPayload{AssignedTo: staffID, ProjectID: ticket.ProjectID},
	})
	return ticket, nil
}

// AttachProject links a ticket to a project; nil detaches.
func (s *TicketService) AttachProject(ctx context.Context, actorID, ticketID string, projectID *string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ticket.ProjectID = projectID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
