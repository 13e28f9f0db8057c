package service

import (
	"context"
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// BookingService applies booking mutations.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewBookingService constructs the service.
func NewBookingService(bookings repository.BookingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, dispatcher: dispatcher, now: time.Now}
}

// UpdateStatus writes a new status, validating enum membership first.
func (s *BookingService) UpdateStatus(ctx context.Context, actorID, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, apperrors.NewValidationError("invalid booking status", map[string]any{"status": status})
	}
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := booking.Status
	booking.Status = status
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventBookingStatusChanged,
		EntityID: booking.ID,
		ActorID:  actorID,
		Payload:  events.BookingStatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	return booking, nil
}

// Reschedule moves the booking to a new slot. The slot must be strictly in
// the future at submission time; otherwise the call is rejected before any
// write reaches the backend.
func (s *BookingService) Reschedule(ctx context.Context, actorID, bookingID string, newTime time.Time) (*domain.Booking, error) {
	if !newTime.After(s.now()) {
		return nil, apperrors.NewValidationError("scheduled time must be in the future",
			map[string]any{"scheduled_at": newTime})
	}
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldTime := booking.ScheduledAt
	booking.ScheduledAt = newTime
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventBookingRescheduled,
		EntityID: booking.ID,
		ActorID:  actorID,
		Payload:  events.BookingRescheduledPayload{OldTime: oldTime, NewTime: newTime},
	})
	return booking, nil
}
