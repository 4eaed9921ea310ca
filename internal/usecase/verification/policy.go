package verification

import "github.com/velvetdk/marketplace-backend/internal/domain"

// DecisionKind enumerates the outcomes of the access policy.
type DecisionKind string

const (
	DecisionAllow              DecisionKind = "allow"
	DecisionDefer              DecisionKind = "defer"
	DecisionRedirect           DecisionKind = "redirect"
	DecisionRenderFallback     DecisionKind = "render_fallback"
	DecisionRenderNothing      DecisionKind = "render_nothing"
	DecisionPending            DecisionKind = "pending"
	DecisionRejected           DecisionKind = "rejected"
	DecisionPromptNotSubmitted DecisionKind = "prompt_not_submitted"
)

// Decision is the policy outcome. RedirectPath and Reason are populated only
// for their respective kinds.
type Decision struct {
	Kind         DecisionKind `json:"kind"`
	RedirectPath string       `json:"redirect_path,omitempty"`
	Reason       string       `json:"reason,omitempty"`
}

// Options configure the policy per call site. ShowPrompt defaults to true.
type Options struct {
	AllowSkipped bool
	RedirectTo   string
	HasFallback  bool
	ShowPrompt   bool
}

// DefaultOptions is the configuration used when a caller supplies nothing.
func DefaultOptions() Options {
	return Options{ShowPrompt: true}
}

// Decide evaluates the verification gate. Rules apply in priority order and
// the first match wins. The skip preference arrives as an explicit value, not
// an ambient read; the policy itself performs no I/O.
func Decide(user *domain.User, profile *domain.Profile, prefs domain.VerificationPrefs, opts Options) Decision {
	// 1. Not authenticated: the upstream route guard owns this case.
	if user == nil {
		return Decision{Kind: DecisionDefer}
	}

	// 2. The gate only applies to seller accounts.
	if profile == nil || !profile.IsSeller() {
		return Decision{Kind: DecisionAllow}
	}

	// 3. Verified sellers pass regardless of any other field.
	if profile.VerificationPassed() {
		return Decision{Kind: DecisionAllow}
	}

	// 4. Reduced-functionality mode: the seller skipped and never submitted.
	if opts.AllowSkipped && prefs.Skipped && profile.VerificationStatus == domain.VerificationNotSubmitted {
		return Decision{Kind: DecisionAllow}
	}

	// 5-7. Call-site overrides, in fixed precedence.
	if opts.RedirectTo != "" {
		return Decision{Kind: DecisionRedirect, RedirectPath: opts.RedirectTo}
	}
	if opts.HasFallback {
		return Decision{Kind: DecisionRenderFallback}
	}
	if !opts.ShowPrompt {
		return Decision{Kind: DecisionRenderNothing}
	}

	// 8-9. In-flight or failed review.
	if profile.VerificationStatus == domain.VerificationPending && profile.VerificationSubmitted != nil {
		return Decision{Kind: DecisionPending}
	}
	if profile.VerificationStatus == domain.VerificationRejected {
		reason := ""
		if profile.RejectionReason != nil {
			reason = *profile.RejectionReason
		}
		return Decision{Kind: DecisionRejected, Reason: reason}
	}

	// 10. First-time state.
	return Decision{Kind: DecisionPromptNotSubmitted}
}
