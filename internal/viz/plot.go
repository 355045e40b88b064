package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/viewport"
)

// DefaultLabelWidth is the y tick gutter width in cells.
const DefaultLabelWidth = 10

// PlotOptions sizes a rendered crossplot. Cols and Rows count braille cells
// of the plot area, excluding the frame and tick labels.
type PlotOptions struct {
	Cols, Rows int
	LabelWidth int
	// Hover, if set, is drawn as a cross instead of a single dot.
	Hover *project.Point
}

// Frame is the rendered plot split into its parts so callers can style them.
type Frame struct {
	Top     string
	Lines   []FrameLine
	Bottom  string
	XLabels string
}

// FrameLine is one canvas row with its y gutter.
type FrameLine struct {
	Gutter string
	Canvas string
	Edge   string
}

func (f Frame) String() string {
	var b strings.Builder
	b.WriteString(f.Top + "\n")
	for _, l := range f.Lines {
		b.WriteString(l.Gutter + l.Canvas + l.Edge + "\n")
	}
	b.WriteString(f.Bottom + "\n")
	b.WriteString(f.XLabels + "\n")
	return b.String()
}

// Origin returns the cell offset of the canvas inside the rendered frame.
func (o PlotOptions) Origin() (x, y int) {
	return o.labelWidth() + 2, 1
}

func (o PlotOptions) labelWidth() int {
	if o.LabelWidth <= 0 {
		return DefaultLabelWidth
	}
	return o.LabelWidth
}

// RenderPlot draws points inside view with TickCount labelled ticks per axis.
// Points outside the view are clipped.
func RenderPlot(points project.Points, view viewport.Viewport, opts PlotOptions) Frame {
	cols, rows := max(opts.Cols, 2), max(opts.Rows, 2)
	lw := opts.labelWidth()

	canvas := NewCanvas(cols, rows)
	dw, dh := canvas.Dots()
	tr := viewport.Transform{View: view, Width: float64(dw), Height: float64(dh)}

	for _, p := range points {
		if !tr.Contains(p.X, p.Y) {
			continue
		}
		px, py := tr.ToPixel(p.X, p.Y)
		x, y := clampDot(px, dw), clampDot(py, dh)
		if opts.Hover != nil && opts.Hover.Index == p.Index {
			canvas.Cross(x, y, 2)
			continue
		}
		canvas.Set(x, y)
	}

	yTicks := map[int]string{}
	for _, t := range viewport.Ticks(view.YMin, view.YMax, viewport.TickCount) {
		yTicks[tickPos((view.YMax-t.Value)/view.Height(), rows)] = t.Label
	}
	xTicks := viewport.Ticks(view.XMin, view.XMax, viewport.TickCount)
	xPos := make([]int, len(xTicks))
	for i, t := range xTicks {
		xPos[i] = tickPos((t.Value-view.XMin)/view.Width(), cols)
	}

	pad := strings.Repeat(" ", lw+1)
	f := Frame{Top: pad + "┌" + strings.Repeat("─", cols) + "┐"}

	for r := 0; r < rows; r++ {
		line := FrameLine{Gutter: strings.Repeat(" ", lw) + " │", Canvas: canvas.Row(r), Edge: "│"}
		if label, ok := yTicks[r]; ok {
			line.Gutter = fmt.Sprintf("%*s ┤", lw, label)
		}
		f.Lines = append(f.Lines, line)
	}

	bottom := []rune(strings.Repeat("─", cols))
	for _, c := range xPos {
		bottom[c] = '┬'
	}
	f.Bottom = pad + "└" + string(bottom) + "┘"

	labels := []rune(strings.Repeat(" ", lw+2+cols+lw))
	lastEnd := -1
	for i, t := range xTicks {
		start := max(lw+2+xPos[i]-len(t.Label)/2, 0)
		if start <= lastEnd {
			continue
		}
		copy(labels[start:], []rune(t.Label))
		lastEnd = start + len(t.Label)
	}
	f.XLabels = strings.TrimRight(string(labels), " ")

	return f
}

func tickPos(frac float64, n int) int {
	return min(max(int(math.Round(frac*float64(n-1))), 0), n-1)
}

func clampDot(p float64, n int) int {
	return min(max(int(p), 0), n-1)
}
