// Package project selects two columns of a table as numeric point pairs.
package project

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/crossplot/internal/table"
	"github.com/san-kum/crossplot/internal/viewport"
)

// ErrUnknownColumn matches any *UnknownColumnError via errors.Is.
var ErrUnknownColumn = errors.New("project: unknown column")

// UnknownColumnError names a column that is not among the table headers.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("project: unknown column %q", e.Column)
}

func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}

// Point is one plottable row. Row is the originating table row and must not
// be modified.
type Point struct {
	X, Y  float64
	Index int
	Row   []string
}

// Label returns the hover lines "{xCol}: {x}" and "{yCol}: {y}".
func (p Point) Label(xCol, yCol string) [2]string {
	return [2]string{
		fmt.Sprintf("%s: %s", xCol, formatValue(p.X)),
		fmt.Sprintf("%s: %s", yCol, formatValue(p.Y)),
	}
}

// Points is a projected point sequence in row order.
type Points []Point

// XY returns the coordinates alone, for viewport fitting.
func (ps Points) XY() []viewport.XY {
	xy := make([]viewport.XY, len(ps))
	for i, p := range ps {
		xy[i] = viewport.XY{X: p.X, Y: p.Y}
	}
	return xy
}

// Project resolves xCol and yCol against t.Headers and returns one point per
// row whose two cells are both finite numbers. Missing cells count as
// non-numeric. The table is not modified.
func Project(t *table.Table, xCol, yCol string) (Points, error) {
	xi, ok := t.Column(xCol)
	if !ok {
		return nil, &UnknownColumnError{Column: xCol}
	}
	yi, ok := t.Column(yCol)
	if !ok {
		return nil, &UnknownColumnError{Column: yCol}
	}

	points := make(Points, 0, len(t.Rows))
	for i, row := range t.Rows {
		x, ok := numeric(row, xi)
		if !ok {
			continue
		}
		y, ok := numeric(row, yi)
		if !ok {
			continue
		}
		points = append(points, Point{X: x, Y: y, Index: i, Row: row})
	}
	return points, nil
}

func numeric(row []string, col int) (float64, bool) {
	if col >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
