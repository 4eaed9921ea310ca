package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	GetCounts(ctx context.Context, profileID uuid.UUID) (*domain.ProfileCounts, error)
	SubmitVerification(ctx context.Context, profileID uuid.UUID) error
	SoftClose(ctx context.Context, profileID uuid.UUID) error
}
