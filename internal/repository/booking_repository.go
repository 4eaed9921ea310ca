package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

type BookingRepository interface {
	GetUpcoming(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Booking, error)
	GetStats(ctx context.Context, profileID uuid.UUID) (*domain.BookingStats, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	ReplaceWeeklyAvailability(ctx context.Context, profileID uuid.UUID, slots []domain.AvailabilitySlot) error
}
