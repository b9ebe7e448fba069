// Package gasket generates Apollonian gaskets.
//
// Four mutually tangent seed circles are placed in the plane and every
// circle tangent to three already known circles is derived from them with
// Descartes's Circle Theorem, largest first, until the circles get smaller
// than a curvature cutoff.  The result is a Registry of circles keyed by
// curvature with near-duplicates removed.
package gasket

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Tunable constants for generation
const (
	// Two centers closer than this on both axes are the same circle.  Too
	// loose loses circles, too tight lets duplicates through.
	DEFAULT_TOLERANCE = 1e-9
	// Circles with a curvature past CUTOFF_FACTOR times the largest seed
	// curvature are too small to see.
	CUTOFF_FACTOR = 100
)

// Curvature is a signed reciprocal radius.  The bounding circle of a
// gasket has negative curvature since the packing lies inside it.
type Curvature = float64

type Circle struct {
	Curvature Curvature
	Center    geom.Coord
}

func (me Circle) Radius() float64 {
	return 1 / math.Abs(me.Curvature)
}

// Bounding reports whether the circle encloses the packing rather than
// being filled by it.
func (me Circle) Bounding() bool {
	return me.Curvature < 0
}

func (me Circle) String() string {
	return fmt.Sprintf("k=%g (%g, %g)", me.Curvature, me.Center.X, me.Center.Y)
}

// TangentTo reports whether two circles touch within tol.  With signed
// curvatures the center distance of tangent circles is |1/k1 + 1/k2| in
// both the external and the internal case.
func (me Circle) TangentTo(o Circle, tol float64) bool {
	want := math.Abs(1/me.Curvature + 1/o.Curvature)
	return math.Abs(me.Center.DistanceFrom(o.Center)-want) < tol
}

// Quadruple is four pairwise tangent circles, the unit of work while
// expanding a gasket.
type Quadruple [4]Circle

// Key is the largest curvature, i.e. the smallest circle, of the
// quadruple.
func (me Quadruple) Key() Curvature {
	k := me[0].Curvature
	for _, c := range me[1:] {
		k = math.Max(k, c.Curvature)
	}
	return k
}

// Curvatures returns the four curvatures in member order.
func (me Quadruple) Curvatures() [4]Curvature {
	return [4]Curvature{me[0].Curvature, me[1].Curvature, me[2].Curvature, me[3].Curvature}
}

// Tangent checks every pair of members with Circle.TangentTo.
func (me Quadruple) Tangent(tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if !me[i].TangentTo(me[j], tol) {
				return false
			}
		}
	}
	return true
}

// Record is a placed circle together with the three circles it was found
// tangent to.
type Record struct {
	Circle
	Tangent [3]Circle
}
