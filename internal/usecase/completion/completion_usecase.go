package completion

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

type CompletionUseCase struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewCompletionUseCase(profileRepo repository.ProfileRepository, logger *zap.Logger) *CompletionUseCase {
	return &CompletionUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetCompletion fetches the scorer inputs and computes the report. On any
// fetch failure it logs and returns the degraded zero report instead of an
// error; the dashboard renders whatever it gets.
func (uc *CompletionUseCase) GetCompletion(ctx context.Context, profileID uuid.UUID) *Result {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		uc.logger.Warn("failed to load profile for completion scoring",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return DegradedResult()
	}

	counts, err := uc.profileRepo.GetCounts(ctx, profileID)
	if err != nil {
		uc.logger.Warn("failed to load profile counts for completion scoring",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return DegradedResult()
	}

	return Score(profile, counts)
}
