package gasket

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// Seed placement
//
// The bounding circle sits at the origin and the second circle on the x
// axis.  The third is solved from the two tangency equations and the last
// from the complex form of Descartes's Theorem.

// PlaceSeed lays out the four seed circles of a validated seed.
func PlaceSeed(seed Seed, tol float64) (Quadruple, error) {
	k0 := float64(seed.Curvatures[0])
	k1 := float64(seed.Curvatures[1])
	k2 := float64(seed.Curvatures[2])
	k3 := float64(seed.Curvatures[3])

	var q Quadruple
	q[0] = Circle{k0, geom.Coord{X: 0, Y: 0}}
	q[1] = Circle{k1, geom.Coord{X: 1/k0 + 1/k1, Y: 0}}

	c2, err := placeThird(k0, k1, k2)
	if err != nil {
		return q, &PlacementError{Curvatures: seed.Curvatures, Wrapped: err}
	}
	q[2] = Circle{k2, c2}

	c3, err := placeFourth(q[0], q[1], q[2], k3, tol)
	if err != nil {
		return q, &PlacementError{Curvatures: seed.Curvatures, Wrapped: err}
	}
	q[3] = Circle{k3, c3}
	return q, nil
}

// placeThird finds the center of the circle with curvature k3 tangent to
// the circle k1 at the origin and the circle k2 centered at
// (1/k1 + 1/k2, 0), taking the solution in the upper half plane.
func placeThird(k1, k2, k3 float64) (geom.Coord, error) {
	recipSum := 1/k1 + 1/k2
	// Rounding can push an exactly zero discriminant slightly negative.
	Y := 2 * math.Sqrt(math.Max(0, (k1+k2)*k3+k1*k2))
	X1 := 1/k1 - (8*k1)/(4*k1*k1+Y*Y)
	Y1 := (4 * Y) / (4*k1*k1 + Y*Y)
	X2 := 1/k1 + (8*k2)/(4*k2*k2+Y*Y)
	Y2 := (4 * Y) / (4*k2*k2 + Y*Y)

	var h, k float64
	switch {
	case X1 == 0:
		h = X1
		k = Y1 - 1/k3
	case Y1 == 0:
		h = (X1 + X2) / 2
		k = 0
	default:
		h = (X1 * Y2) * recipSum / (X1*Y2 - Y1*X2 + Y1*recipSum)
		k = Y1*(h-X1)/X1 + Y1
	}
	if math.IsNaN(h) || math.IsNaN(k) || math.IsInf(h, 0) || math.IsInf(k, 0) {
		return geom.Coord{}, fmt.Errorf("third circle k=%g has no finite center", k3)
	}
	return geom.Coord{X: h, Y: k}, nil
}

// placeFourth places the circle with curvature k tangent to a, b and c.
// Descartes's Theorem in complex form has two roots and both satisfy the
// quadratic, so each candidate must also touch all three circles.
func placeFourth(a, b, c Circle, k, tol float64) (geom.Coord, error) {
	w1 := cscale(a.Center, a.Curvature)
	w2 := cscale(b.Center, b.Curvature)
	w3 := cscale(c.Center, c.Curvature)
	root := csqrt(cadd(cadd(cmul(w1, w2), cmul(w2, w3)), cmul(w3, w1)))

	for _, r := range []geom.Coord{root, cneg(root)} {
		w4, ok := candidateRoot(w1, w2, w3, r, tol)
		if !ok {
			continue
		}
		z := cscale(w4, 1/k)
		cand := Circle{k, z}
		if cand.TangentTo(a, tol) && cand.TangentTo(b, tol) && cand.TangentTo(c, tol) {
			return z, nil
		}
	}
	return geom.Coord{}, fmt.Errorf("fourth circle k=%g: %w", k, ErrNoValidRoot)
}

// candidateRoot builds the curvature weighted center w1+w2+w3+2r and
// reports whether it satisfies (Σw)² = 2Σw² within tol, relative to the
// size of the terms.
func candidateRoot(w1, w2, w3, r geom.Coord, tol float64) (geom.Coord, bool) {
	w4 := cadd(cadd(w1, w2), cadd(w3, cscale(r, 2)))

	sum := cadd(cadd(w1, w2), cadd(w3, w4))
	lhs := cmul(sum, sum)
	sq := cadd(cadd(cmul(w1, w1), cmul(w2, w2)), cadd(cmul(w3, w3), cmul(w4, w4)))
	rhs := cscale(sq, 2)

	scale := math.Max(1, math.Max(lhs.Magnitude(), rhs.Magnitude()))
	return w4, capprox(lhs, rhs, tol*scale)
}
