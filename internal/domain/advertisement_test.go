package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpPackageByID(t *testing.T) {
	pkg, ok := BumpPackageByID("single")
	require.True(t, ok)
	assert.Equal(t, 10, pkg.CreditCost)
	assert.Equal(t, 1, pkg.Bumps)

	_, ok = BumpPackageByID("nope")
	assert.False(t, ok)
}

func TestBumpPackageCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, pkg := range BumpPackages {
		assert.False(t, seen[pkg.ID], "duplicate package id %s", pkg.ID)
		seen[pkg.ID] = true
		assert.Greater(t, pkg.Bumps, 0)
		assert.Greater(t, pkg.CreditCost, 0)
		assert.Greater(t, pkg.ValidityDays, 0)
	}
}
