package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, role, membership_tier, name, description, location,
			price, age, profile_type, languages, phone_verified, credits,
			is_verified, verification_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Role, profile.MembershipTier, profile.Name,
		profile.Description, profile.Location, profile.Price, profile.Age,
		profile.ProfileType, pq.Array(profile.Languages), profile.PhoneVerified,
		profile.Credits, profile.IsVerified, profile.VerificationStatus,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

const profileColumns = `
	id, user_id, role, membership_tier, name, description, location,
	price, age, profile_type, languages, phone_verified, credits,
	is_verified, verification_status, verification_submitted_at,
	verification_reviewed_at, rejection_reason, closed_at,
	created_at, updated_at
`

func (r *profileRepository) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Role, &profile.MembershipTier,
		&profile.Name, &profile.Description, &profile.Location,
		&profile.Price, &profile.Age, &profile.ProfileType, pq.Array(&profile.Languages),
		&profile.PhoneVerified, &profile.Credits,
		&profile.IsVerified, &profile.VerificationStatus, &profile.VerificationSubmitted,
		&profile.VerificationReviewed, &profile.RejectionReason, &profile.ClosedAt,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, userID))
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, description = $2, location = $3, price = $4, age = $5,
		    profile_type = $6, languages = $7, phone_verified = $8,
		    membership_tier = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.Description, profile.Location, profile.Price,
		profile.Age, profile.ProfileType, pq.Array(profile.Languages),
		profile.PhoneVerified, profile.MembershipTier, profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) GetCounts(ctx context.Context, profileID uuid.UUID) (*domain.ProfileCounts, error) {
	var counts domain.ProfileCounts
	query := `
		SELECT
			(SELECT COUNT(*) FROM profile_photos WHERE profile_id = $1) AS photos,
			(SELECT COUNT(*) FROM profile_services WHERE profile_id = $1) AS services,
			(SELECT COUNT(*) FROM availability_slots WHERE profile_id = $1) AS availability_slots
	`
	if err := r.db.GetContext(ctx, &counts, query, profileID); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *profileRepository) SubmitVerification(ctx context.Context, profileID uuid.UUID) error {
	query := `
		UPDATE profiles
		SET verification_status = 'pending',
		    verification_submitted_at = CURRENT_TIMESTAMP,
		    rejection_reason = NULL,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND closed_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) SoftClose(ctx context.Context, profileID uuid.UUID) error {
	query := `
		UPDATE profiles
		SET closed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND closed_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
