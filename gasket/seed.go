package gasket

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Seed curvatures beyond this could overflow the exact Descartes check.
const MAX_SEED_CURVATURE = 1 << 30

// Seed is a validated set of four seed curvatures.
type Seed struct {
	// Curvatures sorted ascending; the bounding circle comes first.
	Curvatures [4]int64

	// MaxCurvature is the generation cutoff.
	MaxCurvature float64
}

func (me Seed) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", me.Curvatures[0], me.Curvatures[1], me.Curvatures[2], me.Curvatures[3])
}

// ParseSeed reads four base-10 integers, e.g. command line arguments, and
// validates them.
func ParseSeed(args []string) (Seed, error) {
	input := strings.Join(args, " ")
	if len(args) != 4 {
		return Seed{}, newSeedError(SeedParseError, input, fmt.Errorf("want 4 curvatures, got %d", len(args)))
	}
	var ks [4]int64
	for i, a := range args {
		k, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return Seed{}, newSeedError(SeedParseError, input, err)
		}
		if k > MAX_SEED_CURVATURE || k < -MAX_SEED_CURVATURE {
			return Seed{}, newSeedError(SeedParseError, input, fmt.Errorf("curvature %d out of range", k))
		}
		ks[i] = k
	}
	return ValidateSeed(ks)
}

// ValidateSeed checks that exactly one curvature is negative and that the
// four satisfy (a+b+c+d)² = 2(a²+b²+c²+d²) exactly.  A zero curvature
// (a line) can never satisfy both.
func ValidateSeed(ks [4]int64) (Seed, error) {
	sorted := ks
	slices.Sort(sorted[:])
	a, b, c, d := sorted[0], sorted[1], sorted[2], sorted[3]
	input := fmt.Sprint(ks)

	for _, k := range sorted {
		if k > MAX_SEED_CURVATURE || k < -MAX_SEED_CURVATURE {
			return Seed{}, newSeedError(SeedParseError, input, fmt.Errorf("curvature %d out of range", k))
		}
	}
	if a >= 0 {
		return Seed{}, newSeedError(NegativeCurvatureMissing, input, nil)
	}
	if b < 0 {
		return Seed{}, newSeedError(MultipleNegativeCurvatures, input, nil)
	}
	sum := a + b + c + d
	if sum*sum != 2*(a*a+b*b+c*c+d*d) {
		return Seed{}, newSeedError(DescartesIdentityViolated, input, nil)
	}

	return Seed{
		Curvatures:   sorted,
		MaxCurvature: Cutoff(sorted, CUTOFF_FACTOR),
	}, nil
}

// Cutoff is factor times the largest seed curvature magnitude.
func Cutoff(ks [4]int64, factor float64) float64 {
	m := 0.0
	for _, k := range ks {
		m = math.Max(m, math.Abs(float64(k)))
	}
	return factor * m
}
