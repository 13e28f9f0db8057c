package service

import (
	"context"
	"testing"
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

func newBookingFixture() (*BookingService, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"b1": {
			ID:          "b1",
			ClientID:    strPtr("client-1"),
			Topic:       "kickoff call",
			ScheduledAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
			Status:      domain.BookingStatusConfirmed,
		},
	}}
	svc := NewBookingService(bookings, &recordingDispatcher{})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, bookings
}

func TestRescheduleRejectsPastSlot(t *testing.T) {
	svc, bookings := newBookingFixture()

	past := time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC)
	if _, err := svc.Reschedule(context.Background(), "admin-1", "b1", past); err == nil {
		t.Fatal("expected validation error for a past slot")
	}
	if len(bookings.updated) != 0 {
		t.Fatalf("no write may happen on rejection, got %d", len(bookings.updated))
	}
}

func TestRescheduleRejectsExactlyNow(t *testing.T) {
	svc, bookings := newBookingFixture()

	if _, err := svc.Reschedule(context.Background(), "admin-1", "b1", svc.now()); err == nil {
		t.Fatal("the slot must be strictly in the future")
	}
	if len(bookings.updated) != 0 {
		t.Fatalf("no write may happen on rejection, got %d", len(bookings.updated))
	}
}

func TestRescheduleMovesFutureSlot(t *testing.T) {
	svc, bookings := newBookingFixture()

	future := time.Date(2025, 6, 20, 15, 0, 0, 0, time.UTC)
	booking, err := svc.Reschedule(context.Background(), "admin-1", "b1", future)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !booking.ScheduledAt.Equal(future) {
		t.Fatalf("scheduled_at = %v, want %v", booking.ScheduledAt, future)
	}
	if !bookings.bookings["b1"].ScheduledAt.Equal(future) {
		t.Fatal("new slot not persisted")
	}
}

func TestBookingUpdateStatusValidatesEnum(t *testing.T) {
	svc, bookings := newBookingFixture()

	if _, err := svc.UpdateStatus(context.Background(), "admin-1", "b1", "postponed"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if len(bookings.updated) != 0 {
		t.Fatalf("no write may reach the repository, got %d", len(bookings.updated))
	}
}
