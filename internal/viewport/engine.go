package viewport

import "math"

// Engine holds the live viewport. It is not safe for concurrent use.
type Engine struct {
	current Viewport
}

// NewEngine starts from initial, or from Default if initial is not valid.
func NewEngine(initial Viewport) *Engine {
	if !initial.Valid() {
		initial = Default
	}
	return &Engine{current: initial}
}

// Current returns a copy of the live viewport.
func (e *Engine) Current() Viewport {
	return e.current
}

// Set stores v if it is valid and reports whether it did.
func (e *Engine) Set(v Viewport) bool {
	if !v.Valid() {
		return false
	}
	e.current = v
	return true
}

// AutoFit bounds points with a margin of pad times each data range. A zero
// range gets a margin of 1 instead. With no points the current viewport is
// returned unchanged together with ErrEmptyPointSet.
func (e *Engine) AutoFit(points []XY, pad float64) (Viewport, error) {
	if len(points) == 0 {
		return e.current, ErrEmptyPointSet
	}

	xmin, xmax := points[0].X, points[0].X
	ymin, ymax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
	}

	xPad := (xmax - xmin) * pad
	if xPad == 0 {
		xPad = 1.0
	}
	yPad := (ymax - ymin) * pad
	if yPad == 0 {
		yPad = 1.0
	}

	e.Set(Viewport{
		XMin: xmin - xPad,
		XMax: xmax + xPad,
		YMin: ymin - yPad,
		YMax: ymax + yPad,
	})
	return e.current, nil
}

// ZoomAt scales the bound values at screen fraction (fracX, fracY).
// factor < 1 zooms in, factor > 1 zooms out. fracY is measured from the top.
//
// The bounds themselves are scaled rather than their distance from the
// cursor, so the zoom is not symmetric when the view does not straddle zero.
func (e *Engine) ZoomAt(fracX, fracY, factor float64) Viewport {
	fracX, fracY = clamp01(fracX), clamp01(fracY)
	v := e.current

	e.Set(Viewport{
		XMin: fracX*(v.XMin*factor) + (1-fracX)*v.XMin,
		XMax: fracX*(v.XMax*factor) + (1-fracX)*v.XMax,
		YMin: (1-fracY)*v.YMin + fracY*(v.YMin*factor),
		YMax: (1-fracY)*v.YMax + fracY*(v.YMax*factor),
	})
	return e.current
}

// PanByPixels shifts base by a pointer drag of (dx, dy) pixels over a
// width x height area. Dragging right moves the view left in data space;
// dragging down moves it up. base should be the viewport captured when the
// drag started so successive moves do not accumulate error.
func (e *Engine) PanByPixels(dx, dy, width, height float64, base Viewport) Viewport {
	shiftX := dx / width * base.Width()
	shiftY := dy / height * base.Height()

	e.Set(Viewport{
		XMin: base.XMin - shiftX,
		XMax: base.XMax - shiftX,
		YMin: base.YMin + shiftY,
		YMax: base.YMax + shiftY,
	})
	return e.current
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
