package gasket

import (
	"math"
	"slices"

	"github.com/jbeda/geom"
)

// Registry holds every placed circle, keyed by exact curvature.  The
// curvatures of an integer seed stay integers under Descartes swaps, so
// float keys compare exactly; centers are compared within a tolerance.
type Registry struct {
	tol     float64
	circles map[Curvature][]Record
	n       int
}

func NewRegistry(tol float64) *Registry {
	return &Registry{tol: tol, circles: make(map[Curvature][]Record)}
}

// Tolerance is the center distance below which two circles of the same
// curvature are one circle.
func (me *Registry) Tolerance() float64 {
	return me.tol
}

// Contains reports whether a circle with the same curvature and a center
// within the tolerance on both axes is already registered.
func (me *Registry) Contains(c Circle) bool {
	for _, r := range me.circles[c.Curvature] {
		if me.sameCenter(r.Center, c.Center) {
			return true
		}
	}
	return false
}

func (me *Registry) sameCenter(a, b geom.Coord) bool {
	return math.Abs(a.X-b.X) < me.tol && math.Abs(a.Y-b.Y) < me.tol
}

// Insert adds r unless it is a near-duplicate of a registered circle.  It
// reports whether r was added.
func (me *Registry) Insert(r Record) bool {
	if me.Contains(r.Circle) {
		return false
	}
	me.circles[r.Curvature] = append(me.circles[r.Curvature], r)
	me.n++
	return true
}

// Len is the number of circles.
func (me *Registry) Len() int {
	return me.n
}

// Curvatures returns the distinct curvatures in ascending order.
func (me *Registry) Curvatures() []Curvature {
	ks := make([]Curvature, 0, len(me.circles))
	for k := range me.circles {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// At returns the circles of curvature k in discovery order.
func (me *Registry) At(k Curvature) []Record {
	return slices.Clone(me.circles[k])
}

// Records returns every circle, by ascending curvature and then in
// discovery order.  The bounding circle comes first.
func (me *Registry) Records() []Record {
	out := make([]Record, 0, me.n)
	for _, k := range me.Curvatures() {
		out = append(out, me.circles[k]...)
	}
	return out
}

// Bounds is the smallest rectangle containing every circle.
func (me *Registry) Bounds() geom.Rect {
	first := true
	var bounds geom.Rect
	for _, rs := range me.circles {
		for _, r := range rs {
			rad := r.Radius()
			lo := geom.Coord{X: r.Center.X - rad, Y: r.Center.Y - rad}
			hi := geom.Coord{X: r.Center.X + rad, Y: r.Center.Y + rad}
			if first {
				bounds = geom.Rect{Min: lo, Max: lo}
				first = false
			}
			bounds.ExpandToContainCoord(lo)
			bounds.ExpandToContainCoord(hi)
		}
	}
	return bounds
}
