package table

import "fmt"

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter = ','

// Table is a parsed header row plus data rows. Headers may repeat.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Summary returns the human readable "N columns, M rows" line.
func (t *Table) Summary() string {
	return fmt.Sprintf("%d columns, %d rows", len(t.Headers), len(t.Rows))
}

// Column returns the index of the first header equal to name.
// Matching is exact and case-sensitive.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the value at (row, col). ok is false when either index is
// out of range, including a row shorter than the header.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][col], true
}
