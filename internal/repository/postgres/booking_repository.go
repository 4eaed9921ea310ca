package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/velvetdk/marketplace-backend/internal/domain"
	"github.com/velvetdk/marketplace-backend/internal/repository"
)

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetUpcoming(ctx context.Context, profileID uuid.UUID, limit int) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	query := `
		SELECT * FROM bookings
		WHERE profile_id = $1
		  AND starts_at > NOW()
		  AND status IN ('pending', 'confirmed')
		ORDER BY starts_at ASC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &bookings, query, profileID, limit)
	return bookings, err
}

func (r *bookingRepository) GetStats(ctx context.Context, profileID uuid.UUID) (*domain.BookingStats, error) {
	var stats domain.BookingStats
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		       COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
		       COUNT(*) FILTER (WHERE status = 'completed') AS completed
		FROM bookings
		WHERE profile_id = $1
	`
	if err := r.db.GetContext(ctx, &stats, query, profileID); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, bookingID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// ReplaceWeeklyAvailability swaps the whole weekly schedule in one transaction.
func (r *bookingRepository) ReplaceWeeklyAvailability(ctx context.Context, profileID uuid.UUID, slots []domain.AvailabilitySlot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin availability transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE profile_id = $1`, profileID); err != nil {
		return err
	}

	for _, slot := range slots {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO availability_slots (profile_id, weekday, opens_at, closes_at)
			VALUES ($1, $2, $3, $4)
		`, profileID, slot.Weekday, slot.OpensAt, slot.ClosesAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
