package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdvertisementState is the lifecycle state of a listing advertisement.
type AdvertisementState string

const (
	AdStateActive   AdvertisementState = "active"
	AdStateInactive AdvertisementState = "inactive"
	AdStateBumped   AdvertisementState = "bumped"
	AdStateExpired  AdvertisementState = "expired"
)

// BumpType selects how a bump is funded.
type BumpType string

const (
	BumpFree   BumpType = "free"
	BumpPaid   BumpType = "paid"
	BumpCredit BumpType = "credit"
)

// AdvertisementStatus is a derived snapshot of an advertisement, recomputed
// from the advertisements row on every read. Clients never persist it.
type AdvertisementStatus struct {
	ProfileID          uuid.UUID          `json:"profile_id" db:"profile_id"`
	Status             AdvertisementState `json:"status" db:"status"`
	ExpiresAt          *time.Time         `json:"expires_at" db:"expires_at"`
	LastBumpedAt       *time.Time         `json:"last_bumped_at" db:"last_bumped_at"`
	BumpCount          int                `json:"bump_count" db:"bump_count"`
	RemainingFreeBumps int                `json:"remaining_free_bumps" db:"remaining_free_bumps"`
	DaysUntilExpiry    int                `json:"days_until_expiry" db:"days_until_expiry"`
	HoursUntilExpiry   float64            `json:"hours_until_expiry" db:"hours_until_expiry"`
	IsExpired          bool               `json:"is_expired" db:"is_expired"`
}

// BumpResult is the authoritative outcome of a bump operation. NewStatus is
// computed in the same transaction as the bump itself, so callers never need a
// second refresh round trip.
type BumpResult struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	CreditsUsed int                  `json:"credits_used,omitempty"`
	NewStatus   *AdvertisementStatus `json:"new_status,omitempty"`
}

// BumpPackage is a static catalog entry. The catalog is compile-time data;
// there is no lifecycle behind it.
type BumpPackage struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Bumps        int     `json:"bumps"`
	ValidityDays int     `json:"validity_days"`
	CreditCost   int     `json:"credit_cost"`
	SavingsPct   int     `json:"savings_pct,omitempty"`
}

// BumpPackages is the fixed catalog offered on the dashboard.
var BumpPackages = []BumpPackage{
	{ID: "single", Name: "Single Bump", Price: 9, Bumps: 1, ValidityDays: 7, CreditCost: 10},
	{ID: "starter", Name: "Starter Pack", Price: 39, Bumps: 5, ValidityDays: 30, CreditCost: 45, SavingsPct: 10},
	{ID: "power", Name: "Power Pack", Price: 69, Bumps: 10, ValidityDays: 30, CreditCost: 80, SavingsPct: 20},
	{ID: "ultra", Name: "Ultra Pack", Price: 119, Bumps: 20, ValidityDays: 60, CreditCost: 140, SavingsPct: 30},
}

// BumpPackageByID looks up a catalog entry.
func BumpPackageByID(id string) (BumpPackage, bool) {
	for _, p := range BumpPackages {
		if p.ID == id {
			return p, true
		}
	}
	return BumpPackage{}, false
}
