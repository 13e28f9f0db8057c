package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// TicketsHandler manages back-office ticket endpoints.
type TicketsHandler struct {
	listing *service.ListingService
	tickets *service.TicketService
	scopes  *scope.Resolver
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(listing *service.ListingService, tickets *service.TicketService, scopes *scope.Resolver) *TicketsHandler {
	return &TicketsHandler{listing: listing, tickets: tickets, scopes: scopes}
}

// List GET /admin/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	tickets, err := h.listing.ListTickets(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	ticket, err := h.tickets.UpdateStatus(c.UserContext(), identity.UserID, c.Params("id"), domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// UpdatePriority PATCH /admin/tickets/:id/priority.
func (h *TicketsHandler) UpdatePriority(c *fiber.Ctx) error {
	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	ticket, err := h.tickets.UpdatePriority(c.UserContext(), identity.UserID, c.Params("id"), domain.TicketPriority(req.Priority))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Assign PATCH /admin/tickets/:id/assign.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	ticket, err := h.tickets.Assign(c.UserContext(), identity.UserID, c.Params("id"), req.StaffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// AttachProject PATCH /admin/tickets/:id/project.
func (h *TicketsHandler) AttachProject(c *fiber.Ctx) error {
	var req dto.AttachProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	ticket, err := h.tickets.AttachProject(c.UserContext(), identity.UserID, c.Params("id"), req.ProjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:         ticket.ID,
		ClientID:   ticket.ClientID,
		ProjectID:  ticket.ProjectID,
		AssignedTo: ticket.AssignedTo,
		Subject:    ticket.Subject,
		Status:     ticket.Status,
		Priority:   ticket.Priority,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}
