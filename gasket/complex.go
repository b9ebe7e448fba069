package gasket

import (
	"math"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// Complex arithmetic on plane coordinates.  X is the real part and Y the
// imaginary part.

func cadd(a, b geom.Coord) geom.Coord {
	return a.Plus(b)
}

func cscale(a geom.Coord, s float64) geom.Coord {
	return a.Times(s)
}

func cmul(a, b geom.Coord) geom.Coord {
	return geom.Coord{X: a.X*b.X - a.Y*b.Y, Y: a.X*b.Y + a.Y*b.X}
}

func cneg(a geom.Coord) geom.Coord {
	return geom.Coord{X: -a.X, Y: -a.Y}
}

// csqrt is the principal square root by De Moivre: halve the argument and
// take the root of the magnitude.
func csqrt(z geom.Coord) geom.Coord {
	arg := math.Atan2(z.Y, z.X) / 2
	mag := math.Sqrt(math.Hypot(z.X, z.Y))
	return geom.Coord{X: mag * math.Cos(arg), Y: mag * math.Sin(arg)}
}

func capprox(a, b geom.Coord, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}
