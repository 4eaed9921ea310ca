package domain

import (
	"time"

	"github.com/google/uuid"
)

// MembershipTier is the subscription level gating feature access.
type MembershipTier string

const (
	TierFree    MembershipTier = "FREE"
	TierPro     MembershipTier = "PRO"
	TierProPlus MembershipTier = "PRO-PLUS"
	TierUltra   MembershipTier = "ULTRA"
)

// VerificationStatus tracks the identity-review workflow for seller profiles.
type VerificationStatus string

const (
	VerificationNotSubmitted VerificationStatus = "not_submitted"
	VerificationPending      VerificationStatus = "pending"
	VerificationVerified     VerificationStatus = "verified"
	VerificationRejected     VerificationStatus = "rejected"
)

type Profile struct {
	ID                    uuid.UUID          `json:"id" db:"id"`
	UserID                uuid.UUID          `json:"user_id" db:"user_id"`
	Role                  Role               `json:"role" db:"role"`
	MembershipTier        MembershipTier     `json:"membership_tier" db:"membership_tier"`
	Name                  string             `json:"name" db:"name"`
	Description           *string            `json:"description" db:"description"`
	Location              *string            `json:"location" db:"location"`
	Price                 *float64           `json:"price" db:"price"`
	Age                   *int               `json:"age" db:"age"`
	ProfileType           *string            `json:"profile_type" db:"profile_type"`
	Languages             []string           `json:"languages" db:"languages"`
	PhoneVerified         bool               `json:"phone_verified" db:"phone_verified"`
	Credits               int                `json:"credits" db:"credits"`
	IsVerified            bool               `json:"is_verified" db:"is_verified"`
	VerificationStatus    VerificationStatus `json:"verification_status" db:"verification_status"`
	VerificationSubmitted *time.Time         `json:"verification_submitted_at" db:"verification_submitted_at"`
	VerificationReviewed  *time.Time         `json:"verification_reviewed_at" db:"verification_reviewed_at"`
	RejectionReason       *string            `json:"rejection_reason" db:"rejection_reason"`
	ClosedAt              *time.Time         `json:"closed_at" db:"closed_at"`
	CreatedAt             time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" db:"updated_at"`
}

// IsSeller reports whether the profile belongs to an advertising account,
// the only kind gated by verification.
func (p *Profile) IsSeller() bool {
	return p.Role == RoleLady
}

// VerificationPassed is true once either the review flag or the status says so.
func (p *Profile) VerificationPassed() bool {
	return p.IsVerified || p.VerificationStatus == VerificationVerified
}

// ProfileCounts carries the related-table counts the completion scorer needs.
type ProfileCounts struct {
	Photos            int `json:"photos" db:"photos"`
	Services          int `json:"services" db:"services"`
	AvailabilitySlots int `json:"availability_slots" db:"availability_slots"`
}
