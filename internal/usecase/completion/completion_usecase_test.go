package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"go.uber.org/zap"
)

type stubProfileRepo struct {
	profile    *domain.Profile
	counts     *domain.ProfileCounts
	profileErr error
	countsErr  error
}

func (s *stubProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (s *stubProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.profile, s.profileErr
}
func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profile, s.profileErr
}
func (s *stubProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (s *stubProfileRepo) GetCounts(ctx context.Context, id uuid.UUID) (*domain.ProfileCounts, error) {
	return s.counts, s.countsErr
}
func (s *stubProfileRepo) SubmitVerification(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubProfileRepo) SoftClose(ctx context.Context, id uuid.UUID) error          { return nil }

func TestGetCompletionDegradesOnProfileError(t *testing.T) {
	repo := &stubProfileRepo{profileErr: errors.New("connection refused")}
	uc := NewCompletionUseCase(repo, zap.NewNop())

	result := uc.GetCompletion(context.Background(), uuid.New())

	assert.Equal(t, DegradedResult(), result)
}

func TestGetCompletionDegradesOnCountsError(t *testing.T) {
	repo := &stubProfileRepo{profile: fullProfile(), countsErr: errors.New("timeout")}
	uc := NewCompletionUseCase(repo, zap.NewNop())

	result := uc.GetCompletion(context.Background(), uuid.New())

	assert.Equal(t, DegradedResult(), result)
}

func TestGetCompletionScoresFetchedInputs(t *testing.T) {
	repo := &stubProfileRepo{profile: fullProfile(), counts: fullCounts()}
	uc := NewCompletionUseCase(repo, zap.NewNop())

	result := uc.GetCompletion(context.Background(), uuid.New())

	assert.Equal(t, 100, result.CompletionPercentage)
	assert.Equal(t, StrengthExcellent, result.ProfileStrength)
}
