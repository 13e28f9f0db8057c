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

// BookingsHandler manages back-office booking endpoints.
type BookingsHandler struct {
	listing  *service.ListingService
	bookings *service.BookingService
	scopes   *scope.Resolver
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(listing *service.ListingService, bookings *service.BookingService, scopes *scope.Resolver) *BookingsHandler {
	return &BookingsHandler{listing: listing, bookings: bookings, scopes: scopes}
}

// List GET /admin/bookings.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	bookings, err := h.listing.ListBookings(c.UserContext(), sc)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/bookings/:id/status.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	identity := auth.IdentityFromContext(c)
	booking, err := h.bookings.UpdateStatus(c.UserContext(), identity.UserID, c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// Reschedule PATCH /admin/bookings/:id/reschedule.
func (h *BookingsHandler) Reschedule(c *fiber.Ctx) error {
	var req dto.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ScheduledAt.IsZero() {
		return apperrors.NewValidationError("scheduled_at required", nil)
	}
	identity := auth.IdentityFromContext(c)
	booking, err := h.bookings.Reschedule(c.UserContext(), identity.UserID, c.Params("id"), req.ScheduledAt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          booking.ID,
		ClientID:    booking.ClientID,
		Topic:       booking.Topic,
		ScheduledAt: booking.ScheduledAt,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}
