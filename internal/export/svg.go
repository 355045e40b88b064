package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/viewport"
)

const (
	marginLeft   = 70.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 45.0
)

// Options describes the output image. Zero values take defaults.
type Options struct {
	Width, Height int
	Title         string
	XLabel        string
	YLabel        string
	Color         string
	Radius        float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	if o.Color == "" {
		o.Color = "#00ccff"
	}
	if o.Radius <= 0 {
		o.Radius = 3
	}
	return o
}

// SVG renders points inside view as a scatter with TickCount ticks per axis.
func SVG(points project.Points, view viewport.Viewport, opts Options) string {
	opts = opts.withDefaults()
	width, height := float64(opts.Width), float64(opts.Height)
	pw, ph := width-marginLeft-marginRight, height-marginTop-marginBottom
	tr := viewport.Transform{View: view, Width: pw, Height: ph}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="14" fill="#ffffff" font-size="13" text-anchor="middle">%s</text>
`, marginLeft+pw/2, html.EscapeString(opts.Title)))
	}

	sb.WriteString(fmt.Sprintf(`<g transform="translate(%.1f,%.1f)">
<rect width="%.1f" height="%.1f" fill="none" stroke="#444466"/>
<g fill="#888899" font-size="11" font-family="monospace">
`, marginLeft, marginTop, pw, ph))

	for _, t := range viewport.Ticks(view.XMin, view.XMax, viewport.TickCount) {
		x, _ := tr.ToPixel(t.Value, view.YMin)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466"/>
<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
`, x, ph, x, ph+5, x, ph+18, t.Label))
	}
	for _, t := range viewport.Ticks(view.YMin, view.YMax, viewport.TickCount) {
		_, y := tr.ToPixel(view.XMin, t.Value)
		sb.WriteString(fmt.Sprintf(`<line x1="-5" y1="%.1f" x2="0" y2="%.1f" stroke="#444466"/>
<text x="-8" y="%.1f" text-anchor="end" dominant-baseline="middle">%s</text>
`, y, y, y, t.Label))
	}
	if opts.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
`, pw/2, ph+36, html.EscapeString(opts.XLabel)))
	}
	if opts.YLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text transform="translate(-55,%.1f) rotate(-90)" text-anchor="middle">%s</text>
`, ph/2, html.EscapeString(opts.YLabel)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, opts.Color))
	for _, p := range points {
		if !tr.Contains(p.X, p.Y) {
			continue
		}
		x, y := tr.ToPixel(p.X, p.Y)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"><title>row %d</title></circle>
`, x, y, opts.Radius, p.Index+1))
	}
	sb.WriteString("</g>\n</g>\n</svg>")
	return sb.String()
}
