package advertisement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeAdRepo struct {
	status     *domain.AdvertisementStatus
	statusErr  error
	bumpStatus *domain.AdvertisementStatus
	bumpErr    error
	bumpCalls  int
}

func (f *fakeAdRepo) GetStatus(ctx context.Context, profileID uuid.UUID) (*domain.AdvertisementStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeAdRepo) Bump(ctx context.Context, profileID uuid.UUID, bumpType domain.BumpType, creditsUsed int) (*domain.AdvertisementStatus, error) {
	f.bumpCalls++
	return f.bumpStatus, f.bumpErr
}

type fakeProfileRepo struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetCounts(ctx context.Context, id uuid.UUID) (*domain.ProfileCounts, error) {
	return &domain.ProfileCounts{}, nil
}
func (f *fakeProfileRepo) SubmitVerification(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeProfileRepo) SoftClose(ctx context.Context, id uuid.UUID) error          { return nil }

func newUseCase(adRepo *fakeAdRepo, profileRepo *fakeProfileRepo) *AdvertisementUseCase {
	return NewAdvertisementUseCase(adRepo, profileRepo, nil, zap.NewNop())
}

func TestBumpCreditRejectedLocallyOnLowBalance(t *testing.T) {
	adRepo := &fakeAdRepo{}
	profileRepo := &fakeProfileRepo{profile: &domain.Profile{Credits: 4}}
	uc := newUseCase(adRepo, profileRepo)

	// The single package costs 10 credits; the balance holds 4.
	result := uc.Bump(context.Background(), BumpRequest{
		ProfileID: uuid.New(),
		Type:      domain.BumpCredit,
		PackageID: "single",
	})

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "Insufficient credits")
	assert.Equal(t, 0, adRepo.bumpCalls, "no store round trip on local rejection")
}

func TestBumpCreditSucceedsWithSufficientBalance(t *testing.T) {
	newStatus := &domain.AdvertisementStatus{Status: domain.AdStateBumped, BumpCount: 3}
	adRepo := &fakeAdRepo{bumpStatus: newStatus}
	profileRepo := &fakeProfileRepo{profile: &domain.Profile{Credits: 50}}
	uc := newUseCase(adRepo, profileRepo)

	result := uc.Bump(context.Background(), BumpRequest{
		ProfileID: uuid.New(),
		Type:      domain.BumpCredit,
		PackageID: "single",
	})

	require.True(t, result.Success)
	assert.Equal(t, 10, result.CreditsUsed)
	assert.Equal(t, newStatus, result.NewStatus)
	assert.Equal(t, 1, adRepo.bumpCalls)
}

func TestBumpFreeReportsRemaining(t *testing.T) {
	adRepo := &fakeAdRepo{bumpStatus: &domain.AdvertisementStatus{RemainingFreeBumps: 2}}
	uc := newUseCase(adRepo, &fakeProfileRepo{})

	result := uc.Bump(context.Background(), BumpRequest{ProfileID: uuid.New(), Type: domain.BumpFree})

	require.True(t, result.Success)
	assert.Equal(t, "Free bump used, 2 remaining", result.Message)
	assert.Equal(t, 0, result.CreditsUsed)
}

func TestBumpMapsExplicitErrorCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"no free bumps", domain.ErrNoFreeBumps, "No free bumps remaining this period"},
		{"insufficient credits", domain.ErrInsufficientCredits, "Insufficient credits"},
		{"missing advertisement", domain.ErrAdvertisementNotFound, "Advertisement not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adRepo := &fakeAdRepo{bumpErr: tt.err}
			uc := newUseCase(adRepo, &fakeProfileRepo{profile: &domain.Profile{Credits: 100}})

			result := uc.Bump(context.Background(), BumpRequest{ProfileID: uuid.New(), Type: domain.BumpFree})

			require.False(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestBumpSurfacesUnexpectedErrors(t *testing.T) {
	adRepo := &fakeAdRepo{bumpErr: errors.New("connection reset")}
	uc := newUseCase(adRepo, &fakeProfileRepo{})

	result := uc.Bump(context.Background(), BumpRequest{ProfileID: uuid.New(), Type: domain.BumpFree})

	require.False(t, result.Success)
	assert.Equal(t, "Error: connection reset", result.Message)
}

func TestBumpRejectsUnknownPackage(t *testing.T) {
	adRepo := &fakeAdRepo{}
	uc := newUseCase(adRepo, &fakeProfileRepo{profile: &domain.Profile{Credits: 100}})

	result := uc.Bump(context.Background(), BumpRequest{
		ProfileID: uuid.New(),
		Type:      domain.BumpCredit,
		PackageID: "mystery",
	})

	require.False(t, result.Success)
	assert.Equal(t, "Unknown bump package", result.Message)
	assert.Equal(t, 0, adRepo.bumpCalls)
}

func TestGetStatusDegradesToNil(t *testing.T) {
	adRepo := &fakeAdRepo{statusErr: errors.New("db down")}
	uc := newUseCase(adRepo, &fakeProfileRepo{})

	assert.Nil(t, uc.GetStatus(context.Background(), uuid.New()))
}

func TestGetStatusReturnsSnapshot(t *testing.T) {
	status := &domain.AdvertisementStatus{Status: domain.AdStateActive, RemainingFreeBumps: 1}
	adRepo := &fakeAdRepo{status: status}
	uc := newUseCase(adRepo, &fakeProfileRepo{})

	assert.Equal(t, status, uc.GetStatus(context.Background(), uuid.New()))
}
