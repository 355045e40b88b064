package viewport

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyPointSet is returned by AutoFit when there is nothing to fit.
var ErrEmptyPointSet = errors.New("viewport: auto-fit needs at least one point")

const (
	// DefaultPad is the auto-fit margin as a fraction of the data range.
	DefaultPad = 0.05

	// TickCount is the number of labelled ticks per axis.
	TickCount = 5
)

// Default is used when no valid viewport has been established yet.
var Default = Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

// Viewport is a data-space rectangle.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// XY is a data-space coordinate pair.
type XY struct {
	X, Y float64
}

// Valid reports whether all bounds are finite and both ranges are positive.
func (v Viewport) Valid() bool {
	for _, f := range [...]float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMax > v.XMin && v.YMax > v.YMin
}

func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

func (v Viewport) String() string {
	return fmt.Sprintf("x[%.4g, %.4g] y[%.4g, %.4g]", v.XMin, v.XMax, v.YMin, v.YMax)
}
