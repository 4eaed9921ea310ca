package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

// AdvertisementRepository owns the advertisement row and the bump counters.
// Bump runs in a single transaction and returns the authoritative post-bump
// status, so callers never reconcile counters from a second round trip.
type AdvertisementRepository interface {
	GetStatus(ctx context.Context, profileID uuid.UUID) (*domain.AdvertisementStatus, error)
	Bump(ctx context.Context, profileID uuid.UUID, bumpType domain.BumpType, creditsUsed int) (*domain.AdvertisementStatus, error)
}
