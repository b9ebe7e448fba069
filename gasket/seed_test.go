package gasket

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSeeds all satisfy Descartes's Theorem with one bounding circle.
var validSeeds = [][4]int64{
	{-1, 2, 2, 3},
	{-2, 3, 6, 7},
	{-3, 4, 12, 13},
	{-6, 11, 14, 15},
	{-3, 5, 8, 8},
	{-4, 8, 9, 9},
	{-6, 10, 15, 19},
	{-5, 7, 18, 18},
}

func TestValidateSeed_Valid(t *testing.T) {
	for _, ks := range validSeeds {
		t.Run(Seed{Curvatures: ks}.String(), func(t *testing.T) {
			seed, err := ValidateSeed(ks)
			require.NoError(t, err)
			assert.Equal(t, ks, seed.Curvatures, "sorted seed should come back unchanged")
		})
	}
}

func TestValidateSeed_SortsAscending(t *testing.T) {
	seed, err := ValidateSeed([4]int64{3, 2, -1, 2})
	require.NoError(t, err)
	assert.Equal(t, [4]int64{-1, 2, 2, 3}, seed.Curvatures)
	assert.Equal(t, 300.0, seed.MaxCurvature)
}

func TestValidateSeed_Failures(t *testing.T) {
	tests := []struct {
		name     string
		seed     [4]int64
		kind     SeedErrorKind
		sentinel error
	}{
		{"no negative", [4]int64{1, 2, 2, 3}, NegativeCurvatureMissing, ErrNegativeCurvatureMissing},
		{"all zero", [4]int64{0, 0, 0, 0}, NegativeCurvatureMissing, ErrNegativeCurvatureMissing},
		{"two negative", [4]int64{-1, -2, 2, 3}, MultipleNegativeCurvatures, ErrMultipleNegativeCurvatures},
		{"all negative", [4]int64{-1, -1, -1, -1}, MultipleNegativeCurvatures, ErrMultipleNegativeCurvatures},
		{"not descartes", [4]int64{-1, 2, 2, 4}, DescartesIdentityViolated, ErrDescartesIdentityViolated},
		{"line", [4]int64{-1, 0, 1, 1}, DescartesIdentityViolated, ErrDescartesIdentityViolated},
		{"too large", [4]int64{-1, 2, 2, 1 << 40}, SeedParseError, ErrSeedParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSeed(tt.seed)
			require.Error(t, err)

			var seedErr *SeedError
			require.True(t, errors.As(err, &seedErr))
			assert.Equal(t, tt.kind, seedErr.Kind)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestValidateSeed_AnyTwoNegatives(t *testing.T) {
	for a := int64(-5); a < 0; a++ {
		for b := int64(-5); b < 0; b++ {
			_, err := ValidateSeed([4]int64{a, b, 2, 3})
			assert.ErrorIs(t, err, ErrMultipleNegativeCurvatures, "seed %d %d 2 3", a, b)
		}
	}
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]string{"-1", "2", " 2", "3"})
	require.NoError(t, err)
	assert.Equal(t, [4]int64{-1, 2, 2, 3}, seed.Curvatures)

	tests := []struct {
		name string
		args []string
	}{
		{"too few", []string{"-1", "2", "2"}},
		{"too many", []string{"-1", "2", "2", "3", "15"}},
		{"float", []string{"-1", "2", "2", "3.0"}},
		{"word", []string{"-1", "two", "2", "3"}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSeedParse)

			var seedErr *SeedError
			require.True(t, errors.As(err, &seedErr))
			assert.Equal(t, SeedParseError, seedErr.Kind)
		})
	}
}

func TestParseSeed_WrapsStrconv(t *testing.T) {
	_, err := ParseSeed([]string{"-1", "x", "2", "3"})
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Contains(t, err.Error(), "could not parse input seed")
}

func TestCutoff(t *testing.T) {
	assert.Equal(t, 300.0, Cutoff([4]int64{-1, 2, 2, 3}, CUTOFF_FACTOR))
	assert.Equal(t, 19.0, Cutoff([4]int64{-6, 10, 15, 19}, 1))
	assert.Equal(t, 70.0, Cutoff([4]int64{-7, 1, 1, 1}, 10), "negative curvature counts by magnitude")
}
