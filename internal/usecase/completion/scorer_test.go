package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velvetdk/marketplace-backend/internal/domain"
)

func ptrStr(s string) *string     { return &s }
func ptrInt(n int) *int           { return &n }
func ptrFloat(f float64) *float64 { return &f }

func fullProfile() *domain.Profile {
	return &domain.Profile{
		Name:          "Amelia",
		Description:   ptrStr("An elegant and discreet companion available for dinner dates, events and private meetings."),
		Location:      ptrStr("Copenhagen"),
		Price:         ptrFloat(1500),
		Age:           ptrInt(26),
		ProfileType:   ptrStr("independent"),
		Languages:     []string{"en", "da"},
		PhoneVerified: true,
	}
}

func fullCounts() *domain.ProfileCounts {
	return &domain.ProfileCounts{Photos: 5, Services: 3, AvailabilitySlots: 4}
}

func TestWeightTableTotal(t *testing.T) {
	total := 0
	for _, attr := range attributeWeights {
		total += attr.Weight
	}
	assert.Equal(t, 106, total)
}

func TestScoreCompleteProfile(t *testing.T) {
	result := Score(fullProfile(), fullCounts())

	assert.Equal(t, 100, result.CompletionPercentage)
	assert.Equal(t, StrengthExcellent, result.ProfileStrength)
	assert.Empty(t, result.MissingItems)
	assert.Empty(t, result.DetailedSuggestions)
	assert.Empty(t, result.PrioritizedMissingItems)
}

func TestScoreEmptyProfile(t *testing.T) {
	result := Score(&domain.Profile{}, &domain.ProfileCounts{})

	assert.Equal(t, 0, result.CompletionPercentage)
	assert.Equal(t, StrengthWeak, result.ProfileStrength)
	assert.Len(t, result.MissingItems, 11)
	assert.Len(t, result.DetailedSuggestions, 11)
	assert.Len(t, result.PrioritizedMissingItems, 11)
}

func TestScorePrioritizesByWeight(t *testing.T) {
	// Missing photos (weight 15) and age (weight 6), everything else set.
	p := fullProfile()
	p.Age = nil
	c := fullCounts()
	c.Photos = 2

	result := Score(p, c)

	assert.Equal(t, []string{"photos", "age"}, result.PrioritizedMissingItems)
	// MissingItems keeps table order instead.
	assert.Equal(t, []string{"photos", "age"}, result.MissingItems)
}

func TestScorePrioritizationStableOnTies(t *testing.T) {
	// photos and services both weigh 15; the table order must survive the sort.
	p := fullProfile()
	result := Score(p, &domain.ProfileCounts{AvailabilitySlots: 1})

	require.Len(t, result.PrioritizedMissingItems, 2)
	assert.Equal(t, []string{"photos", "services"}, result.PrioritizedMissingItems)
}

func TestScoreBoundaryChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Profile, c *domain.ProfileCounts)
		miss   string
	}{
		{"single char name", func(p *domain.Profile, c *domain.ProfileCounts) { p.Name = "A" }, "name"},
		{"short description", func(p *domain.Profile, c *domain.ProfileCounts) { p.Description = ptrStr("too short") }, "description"},
		{"underage", func(p *domain.Profile, c *domain.ProfileCounts) { p.Age = ptrInt(17) }, "age"},
		{"zero price", func(p *domain.Profile, c *domain.ProfileCounts) { p.Price = ptrFloat(0) }, "price"},
		{"two photos", func(p *domain.Profile, c *domain.ProfileCounts) { c.Photos = 2 }, "photos"},
		{"unverified phone", func(p *domain.Profile, c *domain.ProfileCounts) { p.PhoneVerified = false }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, c := fullProfile(), fullCounts()
			tt.mutate(p, c)
			result := Score(p, c)
			assert.Contains(t, result.MissingItems, tt.miss)
			assert.Less(t, result.CompletionPercentage, 100)
		})
	}
}

func TestStrengthBuckets(t *testing.T) {
	assert.Equal(t, StrengthExcellent, strengthFor(80))
	assert.Equal(t, StrengthGood, strengthFor(79))
	assert.Equal(t, StrengthGood, strengthFor(60))
	assert.Equal(t, StrengthAverage, strengthFor(59))
	assert.Equal(t, StrengthAverage, strengthFor(40))
	assert.Equal(t, StrengthWeak, strengthFor(39))
	assert.Equal(t, StrengthWeak, strengthFor(0))
}

func TestDegradedResult(t *testing.T) {
	result := DegradedResult()

	assert.Equal(t, 0, result.CompletionPercentage)
	assert.Equal(t, []string{"Error calculating profile completion"}, result.MissingItems)
	assert.Equal(t, StrengthUnknown, result.ProfileStrength)
	assert.Empty(t, result.DetailedSuggestions)
	assert.Empty(t, result.PrioritizedMissingItems)
}
