package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	query := `
		SELECT * FROM activities
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &activities, query, profileID, limit)
	return activities, err
}

func (r *activityRepository) GetProfileStats(ctx context.Context, profileID uuid.UUID) (*domain.ProfileStats, error) {
	var stats domain.ProfileStats
	query := `
		SELECT COALESCE(view_count, 0) AS views,
		       COALESCE(love_count, 0) AS loves,
		       COALESCE(review_count, 0) AS reviews
		FROM profile_stats
		WHERE profile_id = $1
	`
	if err := r.db.GetContext(ctx, &stats, query, profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A profile with no counters yet simply has zero stats.
			return &domain.ProfileStats{}, nil
		}
		return nil, err
	}
	return &stats, nil
}
