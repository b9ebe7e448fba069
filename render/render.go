// Package render draws generated gaskets as SVG or PNG.
package render

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"

	"github.com/alexander-mcdowell/Appolonian-Gasket/gasket"
)

// Tunable constants for output
const (
	DEFAULT_SIZE       = 1024
	DEFAULT_COLOR_SEED = 1
	// Circles smaller than this fraction of the bounding radius are not
	// drawn.
	MIN_RADIUS_FRACTION = 1e-4
	EDGE_WIDTH_FRACTION = 0.002
)

// Palette holds the fills for the inscribed circles, chosen at random per
// circle, plus the background and edge colors.
type Palette struct {
	Fills      []color.RGBA
	Background color.RGBA
	Edge       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Fills: []color.RGBA{
			colornames.Lightcoral,
			colornames.Lightblue,
			colornames.Thistle,
			colornames.Lightgreen,
			colornames.Turquoise,
		},
		Background: colornames.Linen,
		Edge:       colornames.Black,
	}
}

// Options controls both renderers.  The zero value is usable.
type Options struct {
	// Size is the PNG edge length in pixels.
	Size int
	// ColorSeed makes the fill colors reproducible.
	ColorSeed uint64
	// MinRadius drops circles smaller than this, in gasket units.  Zero
	// derives it from MIN_RADIUS_FRACTION.
	MinRadius float64
	Palette   Palette
	Logger    *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DEFAULT_SIZE
	}
	if o.ColorSeed == 0 {
		o.ColorSeed = DEFAULT_COLOR_SEED
	}
	if len(o.Palette.Fills) == 0 {
		o.Palette = DefaultPalette()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Viewport is the square around the bounding circle, which contains every
// other circle.  The bounding circle is placed at the origin.
func Viewport(res *gasket.Result) geom.Rect {
	r := 1 / math.Abs(float64(res.Seed.Curvatures[0]))
	return geom.Rect{Min: geom.Coord{X: -r, Y: -r}, Max: geom.Coord{X: r, Y: r}}
}

func circleBounds(c gasket.Circle) geom.Rect {
	r := c.Radius()
	return geom.Rect{
		Min: geom.Coord{X: c.Center.X - r, Y: c.Center.Y - r},
		Max: geom.Coord{X: c.Center.X + r, Y: c.Center.Y + r},
	}
}

// Cull drops circles below minRadius or not inside bounds.
func Cull(records []gasket.Record, bounds geom.Rect, minRadius float64) []gasket.Record {
	// Grow the bounds a little so the bounding circle itself survives
	// rounding.
	grown := bounds
	pad := bounds.Width() * 1e-9
	grown.ExpandToContainCoord(geom.Coord{X: bounds.Min.X - pad, Y: bounds.Min.Y - pad})
	grown.ExpandToContainCoord(geom.Coord{X: bounds.Max.X + pad, Y: bounds.Max.Y + pad})

	r := make([]gasket.Record, 0, len(records))
	for _, rec := range records {
		if rec.Radius() < minRadius {
			continue
		}
		if grown.ContainsRect(circleBounds(rec.Circle)) {
			r = append(r, rec)
		}
	}
	return r
}

// drawable culls a result's records with the options' minimum radius.
func drawable(res *gasket.Result, o Options) (geom.Rect, []gasket.Record) {
	view := Viewport(res)
	minRadius := o.MinRadius
	if minRadius == 0 {
		minRadius = view.Width() / 2 * MIN_RADIUS_FRACTION
	}
	all := res.Registry.Records()
	recs := Cull(all, view, minRadius)
	o.Logger.Debug("culled circles", "before", len(all), "after", len(recs),
		"viewport", view.String(), "extent", res.Registry.Bounds().String())
	return view, recs
}

// colorPicker hands out fills from the palette in a reproducible order.
type colorPicker struct {
	rng     *rand.Rand
	palette Palette
}

func newColorPicker(o Options) *colorPicker {
	return &colorPicker{rng: rand.New(rand.NewPCG(o.ColorSeed, o.ColorSeed)), palette: o.Palette}
}

func (cp *colorPicker) next() color.RGBA {
	return cp.palette.Fills[cp.rng.IntN(len(cp.palette.Fills))]
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteSVG draws the gasket.  SVG y grows downward, so centers are flipped
// to keep the upper half plane on top.
func WriteSVG(w io.Writer, res *gasket.Result, opts Options) error {
	o := opts.withDefaults()
	view, recs := drawable(res, o)
	edge := view.Width() / 2 * EDGE_WIDTH_FRACTION
	colors := newColorPicker(o)

	s := NewSVG(w)
	s.Start(view, fmt.Sprintf("stroke: %s; stroke-width: %g", hex(o.Palette.Edge), edge))
	s.Title(fmt.Sprintf("Appolonian Gasket: %s", res.Seed))
	s.Rect(view, fmt.Sprintf("fill: %s; stroke: none", hex(o.Palette.Background)))
	for _, rec := range recs {
		fill := "none"
		if !rec.Bounding() {
			fill = hex(colors.next())
		}
		s.Circle(geom.Coord{X: rec.Center.X, Y: -rec.Center.Y}, rec.Radius(), "fill: "+fill)
	}
	s.End()

	o.Logger.Info("wrote svg", "circles", len(recs))
	return s.Err()
}
