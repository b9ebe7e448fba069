package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/alexander-mcdowell/Appolonian-Gasket/gasket"
)

// WritePNG rasterizes the gasket into a Size×Size PNG at path.
func WritePNG(path string, res *gasket.Result, opts Options) error {
	o := opts.withDefaults()
	dc, err := Rasterize(res, o)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	o.Logger.Info("wrote png", "path", path, "size", o.Size)
	return nil
}

// Rasterize draws the gasket on a new gg context.  The caller closes it.
func Rasterize(res *gasket.Result, opts Options) (*gg.Context, error) {
	o := opts.withDefaults()
	view, recs := drawable(res, o)
	colors := newColorPicker(o)

	size := float64(o.Size)
	scale := size / view.Width()
	// Pixel coordinates: x to the right from the left edge, y down from
	// the top edge.
	px := func(x float64) float64 { return (x - view.Min.X) * scale }
	py := func(y float64) float64 { return (view.Max.Y - y) * scale }

	dc := gg.NewContext(o.Size, o.Size)
	dc.ClearWithColor(gg.FromColor(o.Palette.Background))
	dc.SetLineWidth(size * EDGE_WIDTH_FRACTION / 2)

	for _, rec := range recs {
		x, y, r := px(rec.Center.X), py(rec.Center.Y), rec.Radius()*scale
		if !rec.Bounding() {
			dc.SetColor(colors.next())
			dc.DrawCircle(x, y, r)
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("filling circle %v: %w", rec.Circle, err)
			}
		}
		dc.SetColor(o.Palette.Edge)
		dc.DrawCircle(x, y, r)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroking circle %v: %w", rec.Circle, err)
		}
	}
	return dc, nil
}
