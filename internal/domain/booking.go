package domain

import "time"

// BookingStatus enumerates consultation states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a scheduled consultation with a client.
type Booking struct {
	ID          string
	ClientID    *string
	Topic       string
	ScheduledAt time.Time
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidBookingStatus reports membership in the status enum.
func ValidBookingStatus(status BookingStatus) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
