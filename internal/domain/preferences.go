package domain

import "time"

// VerificationPrefs is the per-user preference record gating the
// reduced-functionality access path. It is the only persisted state this
// layer owns directly; everything else is derived from the main store.
type VerificationPrefs struct {
	Skipped     bool       `json:"skipped"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
}
