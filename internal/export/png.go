package export

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/viewport"
)

// PNG renders the crossplot with gonum/plot. Axis ranges are pinned to view
// and only points inside it are drawn.
func PNG(points project.Points, view viewport.Viewport, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	tr := viewport.Transform{View: view}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if tr.Contains(pt.X, pt.Y) {
			pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
		}
	}
	if len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("export: failed to create scatter: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(opts.Radius)
		scatter.GlyphStyle.Color = color.RGBA{R: 0, G: 150, B: 200, A: 255}
		p.Add(scatter)
	}

	// Set after Add, which widens the axes to the data range.
	p.X.Min, p.X.Max = view.XMin, view.XMax
	p.Y.Min, p.Y.Max = view.YMin, view.YMax
	p.X.Tick.Marker = plot.ConstantTicks(ticks(view.XMin, view.XMax))
	p.Y.Tick.Marker = plot.ConstantTicks(ticks(view.YMin, view.YMax))

	writer, err := p.WriterTo(vg.Points(float64(opts.Width)), vg.Points(float64(opts.Height)), "png")
	if err != nil {
		return nil, fmt.Errorf("export: failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("export: failed to write plot: %w", err)
	}
	return buf.Bytes(), nil
}

func ticks(min, max float64) []plot.Tick {
	vt := viewport.Ticks(min, max, viewport.TickCount)
	out := make([]plot.Tick, len(vt))
	for i, t := range vt {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
