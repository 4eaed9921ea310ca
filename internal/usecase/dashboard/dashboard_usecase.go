package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultActivityLimit = 20
	defaultBookingLimit  = 5
)

// DashboardUseCase serves the independently fetched dashboard slices. Every
// read degrades to a safe zero value on failure; the dashboard never blocks
// on a single broken widget.
type DashboardUseCase struct {
	activityRepo repository.ActivityRepository
	bookingRepo  repository.BookingRepository
	logger       *zap.Logger
}

func NewDashboardUseCase(
	activityRepo repository.ActivityRepository,
	bookingRepo repository.BookingRepository,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		activityRepo: activityRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetProfileStats returns view/love/review counters, zeroes on failure.
func (uc *DashboardUseCase) GetProfileStats(ctx context.Context, profileID uuid.UUID) *domain.ProfileStats {
	stats, err := uc.activityRepo.GetProfileStats(ctx, profileID)
	if err != nil {
		uc.logger.Warn("failed to fetch profile stats",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return &domain.ProfileStats{}
	}
	return stats
}

// GetRecentActivities returns the activity feed, empty on failure.
func (uc *DashboardUseCase) GetRecentActivities(ctx context.Context, profileID uuid.UUID) []*domain.Activity {
	activities, err := uc.activityRepo.GetRecent(ctx, profileID, defaultActivityLimit)
	if err != nil {
		uc.logger.Warn("failed to fetch recent activities",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return []*domain.Activity{}
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities
}

// GetUpcomingBookings returns the next bookings, empty on failure.
func (uc *DashboardUseCase) GetUpcomingBookings(ctx context.Context, profileID uuid.UUID) []*domain.Booking {
	bookings, err := uc.bookingRepo.GetUpcoming(ctx, profileID, defaultBookingLimit)
	if err != nil {
		uc.logger.Warn("failed to fetch upcoming bookings",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return []*domain.Booking{}
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings
}

// GetBookingStats returns booking aggregates, zeroes on failure.
func (uc *DashboardUseCase) GetBookingStats(ctx context.Context, profileID uuid.UUID) *domain.BookingStats {
	stats, err := uc.bookingRepo.GetStats(ctx, profileID)
	if err != nil {
		uc.logger.Warn("failed to fetch booking stats",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return &domain.BookingStats{}
	}
	return stats
}
