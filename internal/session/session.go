// Package session wires parsing, projection and interaction into one
// explicit pipeline: load a table, select two columns, then explore.
//
// Nothing is recomputed implicitly. Selecting columns projects the table and
// fits the viewport immediately; a failed load clears everything so the
// caller never shows data that disagrees with the error.
package session

import (
	"errors"
	"math"

	"github.com/san-kum/crossplot/internal/interact"
	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/table"
	"github.com/san-kum/crossplot/internal/viewport"
)

// ErrStaleLoad is returned when a load result arrives after a newer load
// was started.
var ErrStaleLoad = errors.New("session: load superseded by a newer request")

// Token identifies one load request. Later requests have larger tokens.
type Token uint64

// Session holds the only mutable copy of the explorer state.
type Session struct {
	table      *table.Table
	xCol, yCol string
	points     project.Points

	engine *viewport.Engine
	ctrl   *interact.Controller

	latest Token
}

// New returns an empty session using opts for interaction.
func New(opts interact.Options) *Session {
	engine := viewport.NewEngine(viewport.Default)
	return &Session{
		engine: engine,
		ctrl:   interact.New(engine, opts),
	}
}

func (s *Session) Table() *table.Table              { return s.table }
func (s *Session) Points() project.Points           { return s.points }
func (s *Session) Columns() (x, y string)           { return s.xCol, s.yCol }
func (s *Session) Controller() *interact.Controller { return s.ctrl }
func (s *Session) Viewport() viewport.Viewport      { return s.engine.Current() }

// BeginLoad issues the token for a new load request.
func (s *Session) BeginLoad() Token {
	s.latest++
	return s.latest
}

// Complete installs the result of the load identified by tok. Results for
// anything but the latest token are dropped with ErrStaleLoad. A load error
// clears the table and selection and is returned as is.
func (s *Session) Complete(tok Token, t *table.Table, err error) error {
	if tok != s.latest {
		return ErrStaleLoad
	}
	if err != nil {
		s.reset()
		return err
	}

	s.reset()
	s.table = t
	if len(t.Headers) >= 2 {
		return s.Select(t.Headers[0], t.Headers[1])
	}
	return nil
}

// Select projects the chosen columns and fits the view to the result. On
// error the previous selection is kept.
func (s *Session) Select(xCol, yCol string) error {
	if s.table == nil {
		return errors.New("session: no table loaded")
	}
	points, err := project.Project(s.table, xCol, yCol)
	if err != nil {
		return err
	}
	s.xCol, s.yCol, s.points = xCol, yCol, points
	s.ctrl.SetPoints(points.XY())
	return nil
}

// Hover returns the point nearest to pixel (px, py) within radius pixels,
// over a width x height plot area.
func (s *Session) Hover(px, py, width, height, radius float64) (project.Point, bool) {
	tr := viewport.Transform{View: s.engine.Current(), Width: width, Height: height}

	best, found := -1, false
	bestDist := radius * radius
	for i, p := range s.points {
		qx, qy := tr.ToPixel(p.X, p.Y)
		d := (qx-px)*(qx-px) + (qy-py)*(qy-py)
		if d <= bestDist && !math.IsNaN(d) {
			best, bestDist, found = i, d, true
		}
	}
	if !found {
		return project.Point{}, false
	}
	return s.points[best], true
}

// Summary describes the loaded table.
func (s *Session) Summary() string {
	if s.table == nil {
		return "no data"
	}
	return s.table.Summary()
}

func (s *Session) reset() {
	s.table = nil
	s.xCol, s.yCol = "", ""
	s.points = nil
	s.ctrl.SetPoints(nil)
}
