package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

type ActivityRepository interface {
	GetRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Activity, error)
	GetProfileStats(ctx context.Context, profileID uuid.UUID) (*domain.ProfileStats, error)
}
