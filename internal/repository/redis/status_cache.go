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

type statusCache struct {
	client *redis.Client
}

func NewStatusCache(client *redis.Client) repository.StatusCache {
	return &statusCache{client: client}
}

func statusKey(profileID uuid.UUID) string {
	return fmt.Sprintf("ad:status:%s", profileID)
}

func (c *statusCache) Get(ctx context.Context, profileID uuid.UUID) (*domain.AdvertisementStatus, error) {
	data, err := c.client.Get(ctx, statusKey(profileID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var status domain.AdvertisementStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to decode cached status: %w", err)
	}
	return &status, nil
}

func (c *statusCache) Set(ctx context.Context, status *domain.AdvertisementStatus, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return c.client.Set(ctx, statusKey(status.ProfileID), data, ttl).Err()
}

func (c *statusCache) Invalidate(ctx context.Context, profileID uuid.UUID) error {
	return c.client.Del(ctx, statusKey(profileID)).Err()
}
