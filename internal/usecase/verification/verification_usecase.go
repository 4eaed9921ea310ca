package verification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

type VerificationUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	prefRepo    repository.PreferenceRepository
	logger      *zap.Logger
}

func NewVerificationUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
	logger *zap.Logger,
) *VerificationUseCase {
	return &VerificationUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		logger:      logger,
	}
}

// Access loads the policy inputs and evaluates the gate for a user. A missing
// profile is treated as a non-seller (the gate does not apply); a preference
// read failure degrades to the zero preference rather than blocking access.
func (uc *VerificationUseCase) Access(ctx context.Context, userID uuid.UUID, opts Options) (Decision, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return Decide(nil, nil, domain.VerificationPrefs{}, opts), nil
		}
		return Decision{}, err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil && err != domain.ErrProfileNotFound {
		return Decision{}, err
	}

	prefs := domain.VerificationPrefs{}
	if stored, err := uc.prefRepo.GetVerificationPrefs(ctx, userID); err != nil {
		uc.logger.Warn("failed to read verification prefs, using defaults",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	} else {
		prefs = *stored
	}

	return Decide(user, profile, prefs, opts), nil
}

// Skip records the reduced-functionality preference with the dismissal time.
func (uc *VerificationUseCase) Skip(ctx context.Context, userID uuid.UUID) error {
	return uc.prefRepo.SetVerificationSkipped(ctx, userID, time.Now().UTC())
}

// Submit moves the seller's profile into the pending review state.
func (uc *VerificationUseCase) Submit(ctx context.Context, userID uuid.UUID) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return uc.profileRepo.SubmitVerification(ctx, profile.ID)
}
