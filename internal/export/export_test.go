package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/table"
	"github.com/san-kum/crossplot/internal/viewport"
)

func samplePoints(t *testing.T) (project.Points, viewport.Viewport) {
	t.Helper()
	pts, err := project.Project(table.Sample(), "Depth", "RES")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	view, err := viewport.NewEngine(viewport.Default).AutoFit(pts.XY(), viewport.DefaultPad)
	if err != nil {
		t.Fatalf("AutoFit: %v", err)
	}
	return pts, view
}

func TestSVG(t *testing.T) {
	pts, view := samplePoints(t)

	tests := []struct {
		name    string
		view    viewport.Viewport
		circles int
	}{
		{"fitted", view, 6},
		{"clipped", viewport.Viewport{XMin: 999, XMax: 1005, YMin: 0, YMax: 200}, 3},
		{"empty", viewport.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := SVG(pts, tt.view, Options{XLabel: "Depth", YLabel: "RES"})
			if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
				t.Error("output is not a complete svg document")
			}
			if got := strings.Count(svg, "<circle"); got != tt.circles {
				t.Errorf("circles = %d, want %d", got, tt.circles)
			}
			for _, tick := range viewport.Ticks(tt.view.XMin, tt.view.XMax, viewport.TickCount) {
				if !strings.Contains(svg, ">"+tick.Label+"<") {
					t.Errorf("missing x tick label %q", tick.Label)
				}
			}
		})
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	pts, view := samplePoints(t)
	svg := SVG(pts, view, Options{Title: "a<b & c"})
	if strings.Contains(svg, "a<b") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "a&lt;b &amp; c") {
		t.Error("escaped title missing")
	}
}

func TestPNG(t *testing.T) {
	pts, view := samplePoints(t)

	tests := []struct {
		name string
		pts  project.Points
	}{
		{"points", pts},
		{"no points", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PNG(tt.pts, view, Options{Width: 300, Height: 200})
			if err != nil {
				t.Fatalf("PNG: %v", err)
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output is not a png: %v", err)
			}
			if cfg.Width <= 0 || cfg.Height <= 0 {
				t.Errorf("image size = %dx%d", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestPDF(t *testing.T) {
	pts, view := samplePoints(t)

	var buf bytes.Buffer
	err := PDF(&buf, Report{
		Source:  "sample.csv",
		Summary: table.Sample().Summary(),
		XColumn: "Depth",
		YColumn: "RES",
		Points:  pts,
		View:    view,
		MaxRows: 3,
	})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output does not start with a pdf header")
	}
	if buf.Len() < 1000 {
		t.Errorf("pdf suspiciously small: %d bytes", buf.Len())
	}
}

func TestCSVReloads(t *testing.T) {
	pts, view := samplePoints(t)
	var buf bytes.Buffer
	if err := CSV(&buf, NewSelection("sample", "Depth", "RES", pts, view)); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	reloaded, err := table.Parse(buf.String(), table.DefaultDelimiter)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := reloaded.Summary(); got != "3 columns, 6 rows" {
		t.Errorf("Summary() = %q", got)
	}
	again, err := project.Project(reloaded, "Depth", "RES")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i := range pts {
		if again[i].X != pts[i].X || again[i].Y != pts[i].Y {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, again[i].X, again[i].Y, pts[i].X, pts[i].Y)
		}
	}
}

func TestJSON(t *testing.T) {
	pts, view := samplePoints(t)
	var buf bytes.Buffer
	if err := JSON(&buf, NewSelection("sample", "Depth", "RES", pts, view)); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var got Selection
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Points) != len(pts) || got.Points[0].Row != 1 {
		t.Errorf("points = %+v", got.Points)
	}
	if got.Viewport != view {
		t.Errorf("viewport = %v, want %v", got.Viewport, view)
	}
}
