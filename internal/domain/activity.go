package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one row of the recent-activity feed on the dashboard.
type Activity struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	Kind      string    `json:"kind" db:"kind"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProfileStats is the view/love/review aggregate shown on the dashboard.
type ProfileStats struct {
	Views   int `json:"views" db:"views"`
	Loves   int `json:"loves" db:"loves"`
	Reviews int `json:"reviews" db:"reviews"`
}
