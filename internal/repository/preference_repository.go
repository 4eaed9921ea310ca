package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

// PreferenceRepository stores the small per-user preference record that gates
// the skipped-verification access path.
type PreferenceRepository interface {
	GetVerificationPrefs(ctx context.Context, userID uuid.UUID) (*domain.VerificationPrefs, error)
	SetVerificationSkipped(ctx context.Context, userID uuid.UUID, dismissedAt time.Time) error
}

// StatusCache is a short-lived per-profile cache for derived advertisement
// status snapshots.
type StatusCache interface {
	Get(ctx context.Context, profileID uuid.UUID) (*domain.AdvertisementStatus, error)
	Set(ctx context.Context, status *domain.AdvertisementStatus, ttl time.Duration) error
	Invalidate(ctx context.Context, profileID uuid.UUID) error
}
