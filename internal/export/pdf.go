package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/viewport"
)

const (
	inchToMm     = 25.4
	pageWidth    = 11 * inchToMm // letter, landscape
	pageHeight   = 8.5 * inchToMm
	pageMargin   = 0.5 * inchToMm
	contentWidth = pageWidth - 2*pageMargin

	// DefaultReportRows is the number of point rows listed when Report.MaxRows is zero.
	DefaultReportRows = 20
)

// Report is the content of a PDF crossplot report.
type Report struct {
	Title   string
	Source  string
	Summary string
	XColumn string
	YColumn string
	Points  project.Points
	View    viewport.Viewport
	MaxRows int
}

type pdfStyler struct {
	pdf        *gofpdf.Fpdf
	styles     map[string]func()
	lineHeight float64
	y          float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:        pdf,
		styles:     make(map[string]func()),
		lineHeight: 6,
		y:          pageMargin,
	}
	s.styles["h1"] = func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(200, 200, 200)
		pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
	}
	return s
}

func (s *pdfStyler) apply(style string) {
	if fn, ok := s.styles[style]; ok {
		fn()
		return
	}
	s.styles["normal"]()
}

func (s *pdfStyler) ensure(height float64) {
	if s.y+height > pageHeight-pageMargin {
		s.pdf.AddPage()
		s.y = pageMargin
	}
}

func (s *pdfStyler) paragraph(text, style, align string) {
	s.apply(style)
	s.ensure(s.lineHeight)
	s.pdf.SetXY(pageMargin, s.y)
	s.pdf.MultiCell(contentWidth, s.lineHeight, text, "", align, false)
	s.y = s.pdf.GetY() + 1
}

func (s *pdfStyler) spacer(h float64) {
	s.ensure(h)
	s.y += h
}

func (s *pdfStyler) image(name string, data []byte, width, height float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	s.ensure(height)
	s.pdf.ImageOptions(name, pageMargin, s.y, width, height, false, opts, 0, "")
	s.y += height + 2
}

func (s *pdfStyler) table(headers []string, rows [][]string) {
	w := contentWidth / float64(len(headers))
	s.ensure(s.lineHeight * 2)
	s.apply("tableHeader")
	for i, h := range headers {
		s.pdf.SetXY(pageMargin+float64(i)*w, s.y)
		s.pdf.CellFormat(w, s.lineHeight, h, "1", 0, "C", true, 0, "")
	}
	s.y += s.lineHeight
	for _, row := range rows {
		s.ensure(s.lineHeight)
		s.apply("tableCell")
		for i, cell := range row {
			s.pdf.SetXY(pageMargin+float64(i)*w, s.y)
			s.pdf.CellFormat(w, s.lineHeight, cell, "1", 0, "C", false, 0, "")
		}
		s.y += s.lineHeight
	}
}

// PDF writes a one-report document: header block, crossplot image and the
// first MaxRows projected points.
func PDF(w io.Writer, r Report) error {
	img, err := PNG(r.Points, r.View, Options{
		Width:  720,
		Height: 420,
		XLabel: r.XColumn,
		YLabel: r.YColumn,
	})
	if err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	s := newPDFStyler(pdf)

	title := r.Title
	if title == "" {
		title = "Crossplot Report"
	}
	s.paragraph(title, "h1", "C")
	s.spacer(3)
	if r.Source != "" {
		s.paragraph("Source: "+r.Source, "normal", "L")
	}
	if r.Summary != "" {
		s.paragraph("Table: "+r.Summary, "normal", "L")
	}
	s.paragraph(fmt.Sprintf("Columns: %s vs %s (%d points)", r.XColumn, r.YColumn, len(r.Points)), "normal", "L")
	s.paragraph("Viewport: "+r.View.String(), "normal", "L")
	s.spacer(3)

	imgWidth := contentWidth * 0.75
	s.image("crossplot", img, imgWidth, imgWidth*420/720)

	n := r.MaxRows
	if n <= 0 {
		n = DefaultReportRows
	}
	n = min(n, len(r.Points))
	if n > 0 {
		s.paragraph(fmt.Sprintf("First %d points", n), "h2", "L")
		rows := make([][]string, n)
		for i, p := range r.Points[:n] {
			rows[i] = []string{
				strconv.Itoa(p.Index + 1),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
		}
		s.table([]string{"Row", r.XColumn, r.YColumn}, rows)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: failed to write pdf: %w", err)
	}
	return nil
}
