// Package interact turns pointer and wheel events into viewport changes.
//
// A [Controller] is a two-state machine. A press captures a [DragAnchor];
// every move while dragging pans from that anchor, never from the previous
// move. Wheel and double-click events work in either state and do not
// change it.
package interact

import (
	"github.com/san-kum/crossplot/internal/viewport"
)

// State is the drag state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

const (
	DefaultZoomIn  = 0.85
	DefaultZoomOut = 1.15
)

// Options configures zoom factors and the auto-fit margin.
type Options struct {
	ZoomIn  float64
	ZoomOut float64
	Pad     float64
}

// DefaultOptions returns the standard wheel factors and margin.
func DefaultOptions() Options {
	return Options{ZoomIn: DefaultZoomIn, ZoomOut: DefaultZoomOut, Pad: viewport.DefaultPad}
}

// DragAnchor is the pointer position and viewport captured on press.
type DragAnchor struct {
	X, Y float64
	Base viewport.Viewport
}

// Controller routes events to a viewport.Engine. It is not safe for
// concurrent use; events must arrive in order.
type Controller struct {
	engine *viewport.Engine
	opts   Options
	state  State
	anchor DragAnchor
	points []viewport.XY
}

// New returns an idle controller driving engine. Zero option fields take
// their defaults.
func New(engine *viewport.Engine, opts Options) *Controller {
	def := DefaultOptions()
	if opts.ZoomIn == 0 {
		opts.ZoomIn = def.ZoomIn
	}
	if opts.ZoomOut == 0 {
		opts.ZoomOut = def.ZoomOut
	}
	if opts.Pad == 0 {
		opts.Pad = def.Pad
	}
	return &Controller{engine: engine, opts: opts}
}

func (c *Controller) State() State                { return c.state }
func (c *Controller) Viewport() viewport.Viewport { return c.engine.Current() }
func (c *Controller) Points() []viewport.XY       { return c.points }

// Anchor returns the active drag anchor; ok is false when idle.
func (c *Controller) Anchor() (DragAnchor, bool) {
	return c.anchor, c.state == Dragging
}

// SetPoints replaces the point sequence, fits the view to it and ends any
// drag in progress. An empty sequence leaves the viewport unchanged.
func (c *Controller) SetPoints(points []viewport.XY) viewport.Viewport {
	c.points = points
	c.release()
	v, _ := c.engine.AutoFit(points, c.opts.Pad)
	return v
}

// PointerDown starts a drag at (x, y). A press while already dragging is
// ignored so the original anchor stays in place.
func (c *Controller) PointerDown(x, y float64) {
	if c.state == Dragging {
		return
	}
	c.anchor = DragAnchor{X: x, Y: y, Base: c.engine.Current()}
	c.state = Dragging
}

// PointerMove pans by the offset from the anchor over a width x height
// area. It does nothing while idle.
func (c *Controller) PointerMove(x, y, width, height float64) viewport.Viewport {
	if c.state != Dragging {
		return c.engine.Current()
	}
	return c.engine.PanByPixels(x-c.anchor.X, y-c.anchor.Y, width, height, c.anchor.Base)
}

func (c *Controller) PointerUp()    { c.release() }
func (c *Controller) PointerLeave() { c.release() }

// Wheel zooms at the pointer's fractional position. A negative deltaY
// (wheel up) zooms in, a positive one zooms out.
func (c *Controller) Wheel(x, y, width, height, deltaY float64) viewport.Viewport {
	var factor float64
	switch {
	case deltaY < 0:
		factor = c.opts.ZoomIn
	case deltaY > 0:
		factor = c.opts.ZoomOut
	default:
		return c.engine.Current()
	}
	if width <= 0 || height <= 0 {
		return c.engine.Current()
	}
	return c.engine.ZoomAt(x/width, y/height, factor)
}

// DoubleClick fits the view to the current points.
func (c *Controller) DoubleClick() viewport.Viewport {
	v, _ := c.engine.AutoFit(c.points, c.opts.Pad)
	return v
}

func (c *Controller) release() {
	c.state = Idle
	c.anchor = DragAnchor{}
}
