package session

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/crossplot/internal/interact"
	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/table"
)

func loaded(t *testing.T) *Session {
	t.Helper()
	s := New(interact.DefaultOptions())
	if err := s.Complete(s.BeginLoad(), table.Sample(), nil); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return s
}

func TestComplete_SelectsFirstColumns(t *testing.T) {
	s := loaded(t)

	x, y := s.Columns()
	if x != "Depth" || y != "GR" {
		t.Errorf("columns = %q, %q", x, y)
	}
	if len(s.Points()) != 6 {
		t.Errorf("expected 6 points, got %d", len(s.Points()))
	}

	v := s.Viewport()
	if math.Abs(v.XMin-999.5) > 1e-9 || math.Abs(v.XMax-1010.5) > 1e-9 {
		t.Errorf("viewport not fitted to Depth: %v", v)
	}
	if s.Summary() != "4 columns, 6 rows" {
		t.Errorf("Summary() = %q", s.Summary())
	}
}

func TestComplete_StaleToken(t *testing.T) {
	s := New(interact.DefaultOptions())
	first := s.BeginLoad()
	second := s.BeginLoad()

	if err := s.Complete(second, table.Sample(), nil); err != nil {
		t.Fatal(err)
	}
	other := &table.Table{Headers: []string{"a", "b"}}
	if err := s.Complete(first, other, nil); !errors.Is(err, ErrStaleLoad) {
		t.Errorf("expected ErrStaleLoad, got %v", err)
	}
	if s.Table() == other {
		t.Error("stale result replaced the table")
	}
}

func TestComplete_ErrorClears(t *testing.T) {
	s := loaded(t)

	loadErr := &table.ReadError{Path: "x.csv", Err: errors.New("boom")}
	if err := s.Complete(s.BeginLoad(), nil, loadErr); !errors.Is(err, table.ErrReadFailure) {
		t.Errorf("expected read failure, got %v", err)
	}
	if s.Table() != nil || s.Points() != nil {
		t.Error("failed load kept stale data")
	}
	if x, y := s.Columns(); x != "" || y != "" {
		t.Errorf("selection not reset: %q, %q", x, y)
	}
	if s.Summary() != "no data" {
		t.Errorf("Summary() = %q", s.Summary())
	}
}

func TestComplete_SingleColumn(t *testing.T) {
	s := New(interact.DefaultOptions())
	tbl := &table.Table{Headers: []string{"only"}, Rows: [][]string{{"1"}}}
	if err := s.Complete(s.BeginLoad(), tbl, nil); err != nil {
		t.Fatal(err)
	}
	if x, _ := s.Columns(); x != "" {
		t.Errorf("unexpected selection %q", x)
	}
}

func TestSelect(t *testing.T) {
	s := loaded(t)
	s.Controller().PointerDown(1, 1)

	if err := s.Select("GR", "RES"); err != nil {
		t.Fatal(err)
	}
	if s.Controller().State() != interact.Idle {
		t.Error("column change did not reset the drag")
	}
	v := s.Viewport()
	if v.YMin >= 44 || v.YMax <= 120 {
		t.Errorf("viewport does not cover RES: %v", v)
	}

	if err := s.Select("GR", "Missing"); !errors.Is(err, project.ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
	if x, y := s.Columns(); x != "GR" || y != "RES" {
		t.Errorf("failed select changed columns to %q, %q", x, y)
	}
}

func TestSelect_NoTable(t *testing.T) {
	s := New(interact.DefaultOptions())
	if err := s.Select("a", "b"); err == nil {
		t.Error("expected error without a table")
	}
}

func TestHover(t *testing.T) {
	s := New(interact.DefaultOptions())
	tbl := &table.Table{
		Headers: []string{"x", "y"},
		Rows:    [][]string{{"0", "0"}, {"10", "10"}},
	}
	if err := s.Complete(s.BeginLoad(), tbl, nil); err != nil {
		t.Fatal(err)
	}
	// view is [-0.5, 10.5] on both axes; (10, 10) sits near the top-right.
	const w, h = 110, 110
	p, ok := s.Hover(104, 6, w, h, 3)
	if !ok || p.Index != 1 {
		t.Errorf("Hover near (10,10) = %+v, %v", p, ok)
	}
	if _, ok := s.Hover(55, 55, w, h, 3); ok {
		t.Error("Hover in empty space should find nothing")
	}
}
