package gasket

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Classic(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(300))
	require.NoError(t, err)

	assert.Equal(t, 300.0, res.Cutoff)
	assert.Greater(t, res.Registry.Len(), 4)
	assert.Less(t, res.Stats.Expansions, 10000, "generation must halt quickly")
	assert.Zero(t, res.Stats.KeyRegressions)
	assert.Equal(t, res.Registry.Len(), res.Stats.Inserted)

	// The well-known curvatures of the (-1, 2, 2, 3) gasket.
	ks := res.Registry.Curvatures()
	for _, k := range []Curvature{-1, 2, 3, 6, 11, 14, 15, 18, 23, 26} {
		assert.Contains(t, ks, k)
	}
	assert.Len(t, res.Registry.At(15), 2)
	assert.Len(t, res.Registry.At(6), 4)
}

func TestGenerate_NoNearDuplicates(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(300))
	require.NoError(t, err)

	for _, k := range res.Registry.Curvatures() {
		rs := res.Registry.At(k)
		for i := range rs {
			for j := i + 1; j < len(rs); j++ {
				same := math.Abs(rs[i].Center.X-rs[j].Center.X) < DEFAULT_TOLERANCE &&
					math.Abs(rs[i].Center.Y-rs[j].Center.Y) < DEFAULT_TOLERANCE
				assert.False(t, same, "curvature %g has duplicates %v and %v", k, rs[i].Center, rs[j].Center)
			}
		}
	}
}

func TestGenerate_RecordsTangent(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(100))
	require.NoError(t, err)

	for _, r := range res.Registry.Records() {
		for _, o := range r.Tangent {
			assert.True(t, r.TangentTo(o, 1e-9), "%v should touch %v", r.Circle, o)
		}
	}
}

// Every pushed quadruple must have a key at least that of the quadruple it
// was expanded from, otherwise stopping at the first key past the cutoff
// could skip circles.
func TestGenerate_KeyMonotonicity(t *testing.T) {
	q := classicQuadruple(t)
	reg := NewRegistry(DEFAULT_TOLERANCE)
	for i, c := range q {
		reg.Insert(Record{Circle: c, Tangent: retained(q, i)})
	}
	var queue frontier
	queue.push(q)

	checked := 0
	for queue.Len() != 0 && checked < 1500 {
		cur, key := queue.pop()
		for _, s := range Expand(cur) {
			if !reg.Insert(Record{Circle: s.New}) {
				continue
			}
			require.GreaterOrEqual(t, s.Quadruple.Key(), key, "key regressed expanding %v", cur)
			queue.push(s.Quadruple)
			checked++
		}
	}
	assert.GreaterOrEqual(t, checked, 1000)
}

func TestGenerate_KeysPopInOrder(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(1000))
	require.NoError(t, err)
	assert.Zero(t, res.Stats.KeyRegressions)
	assert.Greater(t, res.Stats.Expansions, 1000)
}

func TestGenerate_SeedFamilies(t *testing.T) {
	for _, ks := range validSeeds {
		t.Run(Seed{Curvatures: ks}.String(), func(t *testing.T) {
			res, err := Generate(ks, WithCutoffFactor(20))
			require.NoError(t, err)
			assert.Zero(t, res.Stats.KeyRegressions)
			assert.Greater(t, res.Registry.Len(), 4)
			for _, r := range res.Registry.Records() {
				if r.Curvature > 0 {
					assert.LessOrEqual(t, r.Center.DistanceFrom(res.Registry.At(float64(ks[0]))[0].Center)+r.Radius(),
						1/math.Abs(float64(ks[0]))+1e-9, "circle %v leaves the bounding circle", r.Circle)
				}
			}
		})
	}
}

func TestGenerate_InvalidSeed(t *testing.T) {
	res, err := Generate([4]int64{-1, -2, 2, 3})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMultipleNegativeCurvatures)
}

func TestGenerate_ExpansionBudget(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithMaxExpansions(10))
	require.ErrorIs(t, err, ErrExpansionBudget)
	require.NotNil(t, res)
	assert.Equal(t, 10, res.Stats.Expansions)
	assert.Greater(t, res.Registry.Len(), 4)
}

func TestGenerate_BadOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero tolerance", WithTolerance(0)},
		{"NaN tolerance", WithTolerance(math.NaN())},
		{"infinite tolerance", WithTolerance(math.Inf(1))},
		{"NaN placement tolerance", WithPlacementTolerance(math.NaN())},
		{"infinite cutoff", WithCutoff(math.Inf(1))},
		{"negative infinite cutoff", WithCutoff(math.Inf(-1))},
		{"NaN cutoff", WithCutoff(math.NaN())},
		{"negative cutoff", WithCutoff(-5)},
		{"infinite factor", WithCutoffFactor(math.Inf(1))},
		{"NaN factor", WithCutoffFactor(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Generate([4]int64{-1, 2, 2, 3}, tt.opt, WithMaxExpansions(100))
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrExpansionBudget)
			assert.Nil(t, res)
		})
	}
}

func TestGenerate_TightDedupToleranceStillPlaces(t *testing.T) {
	res, err := Generate([4]int64{-4, 8, 9, 9}, WithTolerance(1e-15), WithCutoffFactor(10))
	require.NoError(t, err)
	assert.Greater(t, res.Registry.Len(), 4)

	_, err = Generate([4]int64{-4, 8, 9, 9}, WithPlacementTolerance(1e-15))
	assert.ErrorIs(t, err, ErrNoValidRoot)
}

func TestGenerate_SmallCutoffKeepsSeed(t *testing.T) {
	res, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(1))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Registry.Len())
	assert.Zero(t, res.Stats.Expansions)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate([4]int64{-3, 5, 8, 8}, WithCutoffFactor(30))
	require.NoError(t, err)
	b, err := Generate([4]int64{8, -3, 8, 5}, WithCutoffFactor(30))
	require.NoError(t, err)
	assert.Equal(t, a.Registry.Records(), b.Registry.Records())
	assert.Equal(t, a.Stats, b.Stats)
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Generate([4]int64{-1, 2, 2, 3}, WithCutoff(50), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "placed seed")
	assert.Contains(t, buf.String(), "generated gasket")
	assert.NotContains(t, buf.String(), "level=WARN")
}
