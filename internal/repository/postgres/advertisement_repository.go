package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
)

type advertisementRepository struct {
	db *sqlx.DB
}

func NewAdvertisementRepository(db *sqlx.DB) repository.AdvertisementRepository {
	return &advertisementRepository{db: db}
}

const statusQuery = `
	SELECT profile_id, status, expires_at, last_bumped_at, bump_count,
	       GREATEST(free_bump_allowance - free_bumps_used, 0) AS remaining_free_bumps,
	       GREATEST(FLOOR(EXTRACT(EPOCH FROM (expires_at - NOW())) / 86400)::int, 0) AS days_until_expiry,
	       GREATEST(EXTRACT(EPOCH FROM (expires_at - NOW())) / 3600.0, 0) AS hours_until_expiry,
	       (expires_at IS NULL OR expires_at <= NOW()) AS is_expired
	FROM advertisements
	WHERE profile_id = $1
`

func (r *advertisementRepository) GetStatus(ctx context.Context, profileID uuid.UUID) (*domain.AdvertisementStatus, error) {
	var status domain.AdvertisementStatus
	err := r.db.GetContext(ctx, &status, statusQuery, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdvertisementNotFound
		}
		return nil, err
	}
	return &status, nil
}

// Bump consumes a free bump or deducts credits, updates the bump counters and
// returns the post-bump status, all inside one transaction. An expired
// advertisement is reactivated with a fresh seven-day window.
func (r *advertisementRepository) Bump(ctx context.Context, profileID uuid.UUID, bumpType domain.BumpType, creditsUsed int) (*domain.AdvertisementStatus, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bump transaction: %w", err)
	}
	defer tx.Rollback()

	switch bumpType {
	case domain.BumpFree:
		result, err := tx.ExecContext(ctx, `
			UPDATE advertisements
			SET free_bumps_used = free_bumps_used + 1
			WHERE profile_id = $1 AND free_bumps_used < free_bump_allowance
		`, profileID)
		if err != nil {
			return nil, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			if exists, err := r.adExists(ctx, tx, profileID); err != nil {
				return nil, err
			} else if !exists {
				return nil, domain.ErrAdvertisementNotFound
			}
			return nil, domain.ErrNoFreeBumps
		}

	case domain.BumpPaid, domain.BumpCredit:
		result, err := tx.ExecContext(ctx, `
			UPDATE profiles
			SET credits = credits - $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2 AND credits >= $1
		`, creditsUsed, profileID)
		if err != nil {
			return nil, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, domain.ErrInsufficientCredits
		}

	default:
		return nil, domain.ErrInvalidBumpType
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE advertisements
		SET bump_count = bump_count + 1,
		    last_bumped_at = NOW(),
		    status = 'bumped',
		    expires_at = CASE
		        WHEN expires_at IS NULL OR expires_at <= NOW() THEN NOW() + INTERVAL '7 days'
		        ELSE expires_at
		    END
		WHERE profile_id = $1
	`, profileID)
	if err != nil {
		return nil, err
	}

	var status domain.AdvertisementStatus
	if err := tx.GetContext(ctx, &status, statusQuery, profileID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bump: %w", err)
	}
	return &status, nil
}

func (r *advertisementRepository) adExists(ctx context.Context, tx *sqlx.Tx, profileID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM advertisements WHERE profile_id = $1)`, profileID)
	return exists, err
}
