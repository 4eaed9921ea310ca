package advertisement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
	"go.uber.org/zap"
)

// statusCacheTTL keeps the derived snapshot fresh enough for dashboard reads
// while sparing the aggregate query on rapid refreshes.
const statusCacheTTL = 30 * time.Second

type AdvertisementUseCase struct {
	adRepo      repository.AdvertisementRepository
	profileRepo repository.ProfileRepository
	cache       repository.StatusCache
	logger      *zap.Logger
}

func NewAdvertisementUseCase(
	adRepo repository.AdvertisementRepository,
	profileRepo repository.ProfileRepository,
	cache repository.StatusCache,
	logger *zap.Logger,
) *AdvertisementUseCase {
	return &AdvertisementUseCase{
		adRepo:      adRepo,
		profileRepo: profileRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetStatus returns the advertisement snapshot, or nil when it cannot be
// fetched. Errors are logged, never propagated; this mirrors the wrapper
// contract every status consumer relies on.
func (uc *AdvertisementUseCase) GetStatus(ctx context.Context, profileID uuid.UUID) *domain.AdvertisementStatus {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, profileID)
		if err != nil {
			uc.logger.Warn("advertisement status cache read failed",
				zap.String("profile_id", profileID.String()),
				zap.Error(err))
		} else if cached != nil {
			return cached
		}
	}

	status, err := uc.adRepo.GetStatus(ctx, profileID)
	if err != nil {
		uc.logger.Warn("failed to fetch advertisement status",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return nil
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, status, statusCacheTTL); err != nil {
			uc.logger.Warn("advertisement status cache write failed", zap.Error(err))
		}
	}
	return status
}

// BumpRequest selects the funding for a bump. PackageID resolves the credit
// cost for credit-funded bumps; it defaults to the single-bump package.
type BumpRequest struct {
	ProfileID uuid.UUID
	Type      domain.BumpType
	PackageID string
}

// Bump applies the bump policy: free bumps are consumed first when available,
// credit bumps are rejected locally when the balance cannot cover the cost,
// and the store performs the counter update plus credit deduction in one
// transaction whose result is authoritative.
func (uc *AdvertisementUseCase) Bump(ctx context.Context, req BumpRequest) *domain.BumpResult {
	creditsUsed := 0
	if req.Type == domain.BumpCredit || req.Type == domain.BumpPaid {
		pkgID := req.PackageID
		if pkgID == "" {
			pkgID = "single"
		}
		pkg, ok := domain.BumpPackageByID(pkgID)
		if !ok {
			return &domain.BumpResult{Success: false, Message: "Unknown bump package"}
		}
		creditsUsed = pkg.CreditCost

		profile, err := uc.profileRepo.GetByID(ctx, req.ProfileID)
		if err != nil {
			uc.logger.Warn("failed to load profile for bump pre-check",
				zap.String("profile_id", req.ProfileID.String()),
				zap.Error(err))
			return &domain.BumpResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
		}

		// Local rejection: no store round trip when the balance clearly
		// cannot cover the package.
		if profile.Credits < creditsUsed {
			return &domain.BumpResult{
				Success: false,
				Message: fmt.Sprintf("Insufficient credits: need %d, have %d", creditsUsed, profile.Credits),
			}
		}
	}

	newStatus, err := uc.adRepo.Bump(ctx, req.ProfileID, req.Type, creditsUsed)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFreeBumps):
			return &domain.BumpResult{Success: false, Message: "No free bumps remaining this period"}
		case errors.Is(err, domain.ErrInsufficientCredits):
			return &domain.BumpResult{Success: false, Message: "Insufficient credits"}
		case errors.Is(err, domain.ErrAdvertisementNotFound):
			return &domain.BumpResult{Success: false, Message: "Advertisement not found"}
		default:
			uc.logger.Error("bump failed",
				zap.String("profile_id", req.ProfileID.String()),
				zap.String("bump_type", string(req.Type)),
				zap.Error(err))
			return &domain.BumpResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.ProfileID); err != nil {
			uc.logger.Warn("failed to invalidate status cache after bump", zap.Error(err))
		}
	}

	message := "Advertisement bumped"
	if req.Type == domain.BumpFree {
		message = fmt.Sprintf("Free bump used, %d remaining", newStatus.RemainingFreeBumps)
	} else if creditsUsed > 0 {
		message = fmt.Sprintf("Advertisement bumped for %d credits", creditsUsed)
	}

	return &domain.BumpResult{
		Success:     true,
		Message:     message,
		CreditsUsed: creditsUsed,
		NewStatus:   newStatus,
	}
}

// Packages returns the static bump catalog.
func (uc *AdvertisementUseCase) Packages() []domain.BumpPackage {
	return domain.BumpPackages
}
