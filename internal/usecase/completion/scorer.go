package completion

import (
	"sort"
	"unicode/utf8"

	"github.com/velvetdk/marketplace-backend/internal/domain"
)

// Strength buckets for the overall completion percentage.
const (
	StrengthExcellent = "Excellent"
	StrengthGood      = "Good"
	StrengthAverage   = "Average"
	StrengthWeak      = "Weak"
	StrengthUnknown   = "Unknown"
)

// attributeWeight is one scored profile attribute. The table below is the
// single source for weights and remediation texts; nothing else may redefine
// this mapping.
type attributeWeight struct {
	Field      string
	Weight     int
	Suggestion string
	Satisfied  func(p *domain.Profile, c *domain.ProfileCounts) bool
}

var attributeWeights = []attributeWeight{
	{"name", 8, "Add your display name (at least 2 characters)", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return utf8.RuneCountInString(p.Name) >= 2
	}},
	{"description", 12, "Write a description of at least 50 characters", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.Description != nil && utf8.RuneCountInString(*p.Description) >= 50
	}},
	{"location", 8, "Add your location so clients can find you", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.Location != nil && *p.Location != ""
	}},
	{"phone", 10, "Verify your phone number", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.PhoneVerified
	}},
	{"photos", 15, "Upload at least 3 photos", func(_ *domain.Profile, c *domain.ProfileCounts) bool {
		return c.Photos >= 3
	}},
	{"services", 15, "List at least one service you offer", func(_ *domain.Profile, c *domain.ProfileCounts) bool {
		return c.Services >= 1
	}},
	{"price", 8, "Set your hourly rate", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.Price != nil && *p.Price > 0
	}},
	{"availability", 8, "Add your weekly availability", func(_ *domain.Profile, c *domain.ProfileCounts) bool {
		return c.AvailabilitySlots > 0
	}},
	{"age", 6, "Add your age", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.Age != nil && *p.Age >= 18
	}},
	{"profile_type", 5, "Choose a profile type", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return p.ProfileType != nil && *p.ProfileType != ""
	}},
	{"languages", 5, "Add the languages you speak", func(p *domain.Profile, _ *domain.ProfileCounts) bool {
		return len(p.Languages) > 0
	}},
}

// Result is the completion report shown on the dashboard.
type Result struct {
	CompletionPercentage    int      `json:"completion_percentage"`
	MissingItems            []string `json:"missing_items"`
	DetailedSuggestions     []string `json:"detailed_suggestions"`
	ProfileStrength         string   `json:"profile_strength"`
	PrioritizedMissingItems []string `json:"prioritized_missing_items"`
}

// DegradedResult is returned when the scorer's inputs could not be fetched.
// Callers of the usecase never see an error from this layer.
func DegradedResult() *Result {
	return &Result{
		CompletionPercentage:    0,
		MissingItems:            []string{"Error calculating profile completion"},
		DetailedSuggestions:     []string{},
		ProfileStrength:         StrengthUnknown,
		PrioritizedMissingItems: []string{},
	}
}

// Score computes the weighted completion report for a profile snapshot.
// It is a pure function over its inputs.
func Score(profile *domain.Profile, counts *domain.ProfileCounts) *Result {
	totalWeight := 0
	earnedWeight := 0
	missing := []string{}
	suggestions := []string{}

	type missingEntry struct {
		field  string
		weight int
	}
	var unmet []missingEntry

	for _, attr := range attributeWeights {
		totalWeight += attr.Weight
		if attr.Satisfied(profile, counts) {
			earnedWeight += attr.Weight
			continue
		}
		missing = append(missing, attr.Field)
		suggestions = append(suggestions, attr.Suggestion)
		unmet = append(unmet, missingEntry{attr.Field, attr.Weight})
	}

	// Stable sort keeps the table order on equal weights.
	sort.SliceStable(unmet, func(i, j int) bool {
		return unmet[i].weight > unmet[j].weight
	})
	prioritized := make([]string, 0, len(unmet))
	for _, entry := range unmet {
		prioritized = append(prioritized, entry.field)
	}

	percentage := int(float64(earnedWeight)/float64(totalWeight)*100 + 0.5)

	return &Result{
		CompletionPercentage:    percentage,
		MissingItems:            missing,
		DetailedSuggestions:     suggestions,
		ProfileStrength:         strengthFor(percentage),
		PrioritizedMissingItems: prioritized,
	}
}

func strengthFor(percentage int) string {
	switch {
	case percentage >= 80:
		return StrengthExcellent
	case percentage >= 60:
		return StrengthGood
	case percentage >= 40:
		return StrengthAverage
	default:
		return StrengthWeak
	}
}
