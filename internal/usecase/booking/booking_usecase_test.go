package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	updateErr   error
	replaceErr  error
	updateCalls int
	lastStatus  domain.BookingStatus
	lastSlots   []domain.AvailabilitySlot
}

func (f *fakeBookingRepo) GetUpcoming(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetStats(ctx context.Context, profileID uuid.UUID) (*domain.BookingStats, error) {
	return &domain.BookingStats{}, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	f.updateCalls++
	f.lastStatus = status
	return f.updateErr
}

func (f *fakeBookingRepo) ReplaceWeeklyAvailability(ctx context.Context, profileID uuid.UUID, slots []domain.AvailabilitySlot) error {
	f.lastSlots = slots
	return f.replaceErr
}

func TestUpdateStatusSuccess(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewBookingUseCase(repo, zap.NewNop())

	ok := uc.UpdateStatus(context.Background(), uuid.New(), domain.BookingConfirmed)

	assert.True(t, ok)
	assert.Equal(t, domain.BookingConfirmed, repo.lastStatus)
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewBookingUseCase(repo, zap.NewNop())

	ok := uc.UpdateStatus(context.Background(), uuid.New(), "archived")

	assert.False(t, ok)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateStatusReportsFailureAsFalse(t *testing.T) {
	repo := &fakeBookingRepo{updateErr: errors.New("db down")}
	uc := NewBookingUseCase(repo, zap.NewNop())

	assert.False(t, uc.UpdateStatus(context.Background(), uuid.New(), domain.BookingDeclined))
}

func TestSetWeeklyAvailability(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewBookingUseCase(repo, zap.NewNop())

	slots := []domain.AvailabilitySlot{{Weekday: 1, OpensAt: "10:00", ClosesAt: "22:00"}}
	assert.True(t, uc.SetWeeklyAvailability(context.Background(), uuid.New(), slots))
	assert.Equal(t, slots, repo.lastSlots)

	repo.replaceErr = errors.New("constraint violation")
	assert.False(t, uc.SetWeeklyAvailability(context.Background(), uuid.New(), slots))
}
