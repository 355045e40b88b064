package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/viewport"
)

// Selection is the projected point set of one column pair.
type Selection struct {
	Source   string            `json:"source"`
	XColumn  string            `json:"x_column"`
	YColumn  string            `json:"y_column"`
	Viewport viewport.Viewport `json:"viewport"`
	Points   []PointRecord     `json:"points"`
}

// PointRecord is one exported point. Row is 1-based among data rows.
type PointRecord struct {
	Row int     `json:"row"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

func NewSelection(source, xCol, yCol string, points project.Points, view viewport.Viewport) Selection {
	s := Selection{
		Source:   source,
		XColumn:  xCol,
		YColumn:  yCol,
		Viewport: view,
		Points:   make([]PointRecord, len(points)),
	}
	for i, p := range points {
		s.Points[i] = PointRecord{Row: p.Index + 1, X: p.X, Y: p.Y}
	}
	return s
}

func JSON(w io.Writer, s Selection) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// CSV writes row, x and y columns named after the selection.
func CSV(w io.Writer, s Selection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"row", s.XColumn, s.YColumn}); err != nil {
		return err
	}
	for _, p := range s.Points {
		row := []string{
			strconv.Itoa(p.Row),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
