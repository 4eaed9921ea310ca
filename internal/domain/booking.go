package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking state.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingDeclined, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	ProfileID  uuid.UUID     `json:"profile_id" db:"profile_id"`
	ClientName string        `json:"client_name" db:"client_name"`
	StartsAt   time.Time     `json:"starts_at" db:"starts_at"`
	EndsAt     time.Time     `json:"ends_at" db:"ends_at"`
	Status     BookingStatus `json:"status" db:"status"`
	Price      *float64      `json:"price" db:"price"`
	Note       *string       `json:"note" db:"note"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingStats is an aggregate over a profile's bookings.
type BookingStats struct {
	Total     int `json:"total" db:"total"`
	Pending   int `json:"pending" db:"pending"`
	Confirmed int `json:"confirmed" db:"confirmed"`
	Completed int `json:"completed" db:"completed"`
}

// AvailabilitySlot is one weekly opening window for a profile.
type AvailabilitySlot struct {
	ID        int       `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	Weekday   int       `json:"weekday" db:"weekday"`
	OpensAt   string    `json:"opens_at" db:"opens_at"`
	ClosesAt  string    `json:"closes_at" db:"closes_at"`
}
