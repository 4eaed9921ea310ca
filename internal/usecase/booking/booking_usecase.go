package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	logger      *zap.Logger
}

func NewBookingUseCase(bookingRepo repository.BookingRepository, logger *zap.Logger) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// UpdateStatus transitions a booking and reports plain success. Failures are
// logged here; the caller only needs the boolean.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) bool {
	if !domain.ValidBookingStatus(status) {
		uc.logger.Warn("rejected unknown booking status",
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)))
		return false
	}
	if err := uc.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		uc.logger.Warn("failed to update booking status",
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return false
	}
	return true
}

// SetWeeklyAvailability replaces the whole weekly schedule and reports plain
// success.
func (uc *BookingUseCase) SetWeeklyAvailability(ctx context.Context, profileID uuid.UUID, slots []domain.AvailabilitySlot) bool {
	if err := uc.bookingRepo.ReplaceWeeklyAvailability(ctx, profileID, slots); err != nil {
		uc.logger.Warn("failed to set weekly availability",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return false
	}
	return true
}
