package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
)

type preferenceRepository struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) repository.PreferenceRepository {
	return &preferenceRepository{client: client}
}

func prefsKey(userID uuid.UUID) string {
	return fmt.Sprintf("prefs:verification:%s", userID)
}

func (r *preferenceRepository) GetVerificationPrefs(ctx context.Context, userID uuid.UUID) (*domain.VerificationPrefs, error) {
	data, err := r.client.Get(ctx, prefsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.VerificationPrefs{}, nil
		}
		return nil, err
	}

	var prefs domain.VerificationPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode verification prefs: %w", err)
	}
	return &prefs, nil
}

func (r *preferenceRepository) SetVerificationSkipped(ctx context.Context, userID uuid.UUID, dismissedAt time.Time) error {
	prefs := domain.VerificationPrefs{
		Skipped:     true,
		DismissedAt: &dismissedAt,
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode verification prefs: %w", err)
	}
	return r.client.Set(ctx, prefsKey(userID), data, 0).Err()
}
