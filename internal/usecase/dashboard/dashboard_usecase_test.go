package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeActivityRepo struct {
	activities []*domain.Activity
	stats      *domain.ProfileStats
	err        error
}

func (f *fakeActivityRepo) GetRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Activity, error) {
	return f.activities, f.err
}

func (f *fakeActivityRepo) GetProfileStats(ctx context.Context, profileID uuid.UUID) (*domain.ProfileStats, error) {
	return f.stats, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	stats    *domain.BookingStats
	err      error
}

func (f *fakeBookingRepo) GetUpcoming(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeBookingRepo) GetStats(ctx context.Context, profileID uuid.UUID) (*domain.BookingStats, error) {
	return f.stats, f.err
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	return f.err
}

func (f *fakeBookingRepo) ReplaceWeeklyAvailability(ctx context.Context, profileID uuid.UUID, slots []domain.AvailabilitySlot) error {
	return f.err
}

func TestDashboardDegradesToZeroValues(t *testing.T) {
	boom := errors.New("db down")
	uc := NewDashboardUseCase(&fakeActivityRepo{err: boom}, &fakeBookingRepo{err: boom}, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()

	assert.Equal(t, &domain.ProfileStats{}, uc.GetProfileStats(ctx, id))
	assert.Empty(t, uc.GetRecentActivities(ctx, id))
	assert.Empty(t, uc.GetUpcomingBookings(ctx, id))
	assert.Equal(t, &domain.BookingStats{}, uc.GetBookingStats(ctx, id))
}

func TestDashboardReturnsFetchedSlices(t *testing.T) {
	stats := &domain.ProfileStats{Views: 120, Loves: 14, Reviews: 3}
	bookingStats := &domain.BookingStats{Total: 9, Pending: 2, Confirmed: 4, Completed: 3}
	activities := []*domain.Activity{{Kind: "love", Message: "Someone loved your profile"}}
	bookings := []*domain.Booking{{ClientName: "M.", Status: domain.BookingConfirmed}}

	uc := NewDashboardUseCase(
		&fakeActivityRepo{activities: activities, stats: stats},
		&fakeBookingRepo{bookings: bookings, stats: bookingStats},
		zap.NewNop(),
	)
	ctx := context.Background()
	id := uuid.New()

	assert.Equal(t, stats, uc.GetProfileStats(ctx, id))
	assert.Equal(t, activities, uc.GetRecentActivities(ctx, id))
	assert.Equal(t, bookings, uc.GetUpcomingBookings(ctx, id))
	assert.Equal(t, bookingStats, uc.GetBookingStats(ctx, id))
}

func TestDashboardNormalizesNilSlices(t *testing.T) {
	uc := NewDashboardUseCase(&fakeActivityRepo{}, &fakeBookingRepo{}, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()

	assert.NotNil(t, uc.GetRecentActivities(ctx, id))
	assert.NotNil(t, uc.GetUpcomingBookings(ctx, id))
}
