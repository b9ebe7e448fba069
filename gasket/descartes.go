package gasket

import (
	"github.com/jbeda/geom"
)

// Replace swaps member i of a tangent quadruple for the other circle
// tangent to the remaining three.  With d the replaced curvature and a, b,
// c the others, the new curvature is the second root of Descartes's
// quadratic, 2(a+b+c) - d, and the center is the curvature weighted
// combination (2(a·z1 + b·z2 + c·z3) - d·z4) / (2(a+b+c) - d).
func Replace(q Quadruple, i int) Circle {
	old := q[i]
	var sumK float64
	var sumW geom.Coord
	for j, c := range q {
		if j == i {
			continue
		}
		sumK += c.Curvature
		sumW = cadd(sumW, cscale(c.Center, c.Curvature))
	}

	k := 2*sumK - old.Curvature
	w := cadd(cscale(sumW, 2), cscale(old.Center, -old.Curvature))
	return Circle{k, geom.Coord{X: w.X / k, Y: w.Y / k}}
}

// Swap is one step of the Apollonian group: Quadruple holds the three
// retained members followed by New.
type Swap struct {
	Replaced  int
	New       Circle
	Quadruple Quadruple
}

// Expand returns the four swaps of q, replacing the last member first.
// The retained members keep their relative order.
func Expand(q Quadruple) [4]Swap {
	var swaps [4]Swap
	for n := 0; n < 4; n++ {
		i := 3 - n
		c := Replace(q, i)
		r := retained(q, i)
		swaps[n] = Swap{Replaced: i, New: c, Quadruple: Quadruple{r[0], r[1], r[2], c}}
	}
	return swaps
}

// retained returns the three members of q other than i.
func retained(q Quadruple, i int) [3]Circle {
	var r [3]Circle
	m := 0
	for j := range q {
		if j != i {
			r[m] = q[j]
			m++
		}
	}
	return r
}
