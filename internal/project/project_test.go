package project

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/san-kum/crossplot/internal/table"
)

func TestProject_Sample(t *testing.T) {
	tbl := table.Sample()

	points, err := Project(tbl, "GR", "RES")
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[4].X != 76 || points[4].Y != 120 || points[4].Index != 4 {
		t.Errorf("points[4] = %+v", points[4])
	}
	if !reflect.DeepEqual(points[0].Row, tbl.Rows[0]) {
		t.Errorf("points[0].Row = %q", points[0].Row)
	}
}

func TestProject_Filtering(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"a", "b", "c"},
		Rows: [][]string{
			{"1", "2", "x"},
			{"NaN", "2"},
			{"3", "Inf"},
			{"4"},
			{"five", "5"},
			{" 6 ", "6e1"},
			{"", "7"},
			{"-8", "1,5"},
			{"-9", "-10"},
		},
	}

	points, err := Project(tbl, "a", "b")
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}

	var indices []int
	for _, p := range points {
		indices = append(indices, p.Index)
	}
	if !reflect.DeepEqual(indices, []int{0, 5, 8}) {
		t.Errorf("kept rows %v, want [0 5 8]", indices)
	}
	if points[1].X != 6 || points[1].Y != 60 {
		t.Errorf("points[1] = %+v", points[1])
	}
}

func TestProject_UnknownColumn(t *testing.T) {
	tbl := table.Sample()

	tests := []struct{ x, y, missing string }{
		{"Nope", "GR", "Nope"},
		{"GR", "gr", "gr"},
	}
	for _, tt := range tests {
		_, err := Project(tbl, tt.x, tt.y)
		if !errors.Is(err, ErrUnknownColumn) {
			t.Errorf("Project(%q, %q) error = %v", tt.x, tt.y, err)
			continue
		}
		var uc *UnknownColumnError
		if errors.As(err, &uc) && uc.Column != tt.missing {
			t.Errorf("reported column %q, want %q", uc.Column, tt.missing)
		}
	}
}

func TestProject_SameColumnTwice(t *testing.T) {
	points, err := Project(table.Sample(), "Depth", "Depth")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range points {
		if p.X != p.Y {
			t.Errorf("point %+v: x != y", p)
		}
	}
}

func TestProject_DoesNotMutate(t *testing.T) {
	tbl := table.Sample()
	before := table.Sample()

	if _, err := Project(tbl, "Depth", "BulkDensity"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tbl, before) {
		t.Error("Project modified the table")
	}
}

func TestProject_RandomTablesStayFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cells := []string{"1", "-2.5", "", "NaN", "+Inf", "abc", "1e400", "3e-2", " 4 "}

	for n := 0; n < 200; n++ {
		tbl := &table.Table{Headers: []string{"x", "y"}}
		for r := rng.Intn(20); r > 0; r-- {
			row := make([]string, rng.Intn(3))
			for i := range row {
				row[i] = cells[rng.Intn(len(cells))]
			}
			tbl.Rows = append(tbl.Rows, row)
		}

		points, err := Project(tbl, "x", "y")
		if err != nil {
			t.Fatal(err)
		}
		if len(points) > len(tbl.Rows) {
			t.Fatalf("%d points from %d rows", len(points), len(tbl.Rows))
		}
		for _, p := range points {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				t.Fatalf("non-finite point %+v", p)
			}
		}
	}
}

func TestPoint_Label(t *testing.T) {
	p := Point{X: 1004, Y: 2.68}
	got := p.Label("Depth", "BulkDensity")
	if got[0] != "Depth: 1004" || got[1] != "BulkDensity: 2.68" {
		t.Errorf("Label() = %q", got)
	}
}

func TestPoints_XY(t *testing.T) {
	ps := Points{{X: 1, Y: 2}, {X: 3, Y: 4}}
	xy := ps.XY()
	if len(xy) != 2 || xy[1].X != 3 || xy[1].Y != 4 {
		t.Errorf("XY() = %v", xy)
	}
}
