package gasket

import (
	"fmt"
	"log/slog"
	"math"
)

// Stats describes one generation run.
type Stats struct {
	// Expansions is the number of quadruples popped and expanded.
	Expansions int
	// Inserted counts circles added to the registry, seeds included.
	Inserted int
	// Duplicates counts derived circles that were already registered.
	Duplicates int
	// Discarded counts new quadruples past the cutoff, never queued.
	Discarded int
	// KeyRegressions counts queued quadruples whose key was smaller than
	// the key of the quadruple they came from.  The run stops at the first
	// key past the cutoff, which only sees every circle while this is 0.
	KeyRegressions int
}

// Result is a finished gasket.
type Result struct {
	Seed     Seed
	Cutoff   float64
	Registry *Registry
	Stats    Stats
}

type options struct {
	tol           float64
	placeTol      float64
	cutoff        float64
	cutoffFactor  float64
	maxExpansions int
	logger        *slog.Logger
}

// Option configures Generate.
type Option func(*options)

// WithTolerance sets the center tolerance used for dedup.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// WithPlacementTolerance sets the tolerance for the tangency and Descartes
// checks on the placed seed circles.  It defaults to DEFAULT_TOLERANCE and
// does not follow WithTolerance.
func WithPlacementTolerance(tol float64) Option {
	return func(o *options) { o.placeTol = tol }
}

// WithCutoff sets the curvature cutoff directly, overriding the factor.
func WithCutoff(k float64) Option {
	return func(o *options) { o.cutoff = k }
}

// WithCutoffFactor sets the cutoff to factor times the largest seed
// curvature magnitude.
func WithCutoffFactor(factor float64) Option {
	return func(o *options) { o.cutoffFactor = factor }
}

// WithMaxExpansions stops generation with ErrExpansionBudget after n
// expansions.  Zero means no limit.
func WithMaxExpansions(n int) Option {
	return func(o *options) { o.maxExpansions = n }
}

// WithLogger sets the logger for progress and diagnostics.  Nil keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		tol:          DEFAULT_TOLERANCE,
		placeTol:     DEFAULT_TOLERANCE,
		cutoffFactor: CUTOFF_FACTOR,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// generator owns the registry and frontier of one Generate call.
type generator struct {
	opts     options
	cutoff   float64
	registry *Registry
	queue    frontier
	stats    Stats
}

// Generate validates the seed curvatures, places the seed circles and
// expands them into a gasket.  Seed problems are returned as *SeedError,
// placement problems as *PlacementError.  When the expansion budget runs
// out the partial result is returned along with ErrExpansionBudget.
func Generate(ks [4]int64, opts ...Option) (*Result, error) {
	seed, err := ValidateSeed(ks)
	if err != nil {
		return nil, err
	}
	return GenerateSeed(seed, opts...)
}

// GenerateSeed is Generate for an already validated seed.
func GenerateSeed(seed Seed, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !positiveFinite(o.tol) {
		return nil, fmt.Errorf("tolerance must be positive and finite, got %g", o.tol)
	}
	if !positiveFinite(o.placeTol) {
		return nil, fmt.Errorf("placement tolerance must be positive and finite, got %g", o.placeTol)
	}

	cutoff := o.cutoff
	if cutoff == 0 {
		cutoff = Cutoff(seed.Curvatures, o.cutoffFactor)
	}
	// A NaN or infinite cutoff is never passed, so the run would not halt.
	if !positiveFinite(cutoff) {
		return nil, fmt.Errorf("cutoff must be positive and finite, got %g", cutoff)
	}
	seed.MaxCurvature = cutoff

	q, err := PlaceSeed(seed, o.placeTol)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("placed seed", "seed", seed.String(),
		"c0", q[0].String(), "c1", q[1].String(), "c2", q[2].String(), "c3", q[3].String())

	g := &generator{opts: o, cutoff: cutoff, registry: NewRegistry(o.tol)}
	err = g.run(q)

	res := &Result{Seed: seed, Cutoff: cutoff, Registry: g.registry, Stats: g.stats}
	o.logger.Info("generated gasket",
		"seed", seed.String(),
		"cutoff", cutoff,
		"circles", g.registry.Len(),
		"expansions", g.stats.Expansions,
		"duplicates", g.stats.Duplicates,
		"discarded", g.stats.Discarded)
	if g.stats.KeyRegressions > 0 {
		o.logger.Warn("quadruple keys decreased during expansion; circles past an early stop may be missing",
			"regressions", g.stats.KeyRegressions)
	}
	return res, err
}

func (me *generator) run(seed Quadruple) error {
	for i, c := range seed {
		if me.registry.Insert(Record{Circle: c, Tangent: retained(seed, i)}) {
			me.stats.Inserted++
		}
	}
	me.queue.push(seed)

	for me.queue.Len() != 0 {
		q, key := me.queue.pop()
		if key > me.cutoff {
			break
		}
		if me.opts.maxExpansions > 0 && me.stats.Expansions >= me.opts.maxExpansions {
			return fmt.Errorf("after %d expansions: %w", me.stats.Expansions, ErrExpansionBudget)
		}
		me.stats.Expansions++
		me.expand(q, key)
	}
	return nil
}

func (me *generator) expand(q Quadruple, key Curvature) {
	for _, s := range Expand(q) {
		r := Record{Circle: s.New, Tangent: retained(q, s.Replaced)}
		if !me.registry.Insert(r) {
			me.stats.Duplicates++
			continue
		}
		me.stats.Inserted++

		next := s.Quadruple.Key()
		if next < key {
			me.stats.KeyRegressions++
		}
		if next > me.cutoff {
			me.stats.Discarded++
			continue
		}
		me.queue.push(s.Quadruple)
	}
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
