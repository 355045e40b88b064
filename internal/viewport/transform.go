package viewport

import (
	"fmt"
	"math"
)

// Transform maps a Viewport onto a Width x Height pixel area whose origin is
// the top-left corner.
type Transform struct {
	View          Viewport
	Width, Height float64
}

// ToPixel maps data (x, y) to pixel coordinates.
func (t Transform) ToPixel(x, y float64) (px, py float64) {
	px = (x - t.View.XMin) / t.View.Width() * t.Width
	py = t.Height - (y-t.View.YMin)/t.View.Height()*t.Height
	return px, py
}

// ToData maps pixel coordinates back to data space.
func (t Transform) ToData(px, py float64) (x, y float64) {
	x = t.View.XMin + px/t.Width*t.View.Width()
	y = t.View.YMin + (t.Height-py)/t.Height*t.View.Height()
	return x, y
}

// Contains reports whether (x, y) lies inside the viewport, edges included.
func (t Transform) Contains(x, y float64) bool {
	return x >= t.View.XMin && x <= t.View.XMax && y >= t.View.YMin && y <= t.View.YMax
}

// Tick is an axis position with its label.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns n evenly spaced ticks from min to max inclusive, labelled
// with two decimals. n < 2 yields a single tick at min.
func Ticks(min, max float64, n int) []Tick {
	if n < 2 {
		return []Tick{{Value: min, Label: label(min)}}
	}
	ticks := make([]Tick, n)
	step := (max - min) / float64(n-1)
	for i := range ticks {
		v := min + float64(i)*step
		if i == n-1 {
			v = max
		}
		ticks[i] = Tick{Value: v, Label: label(v)}
	}
	return ticks
}

func label(v float64) string {
	// avoid "-0.00"
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
