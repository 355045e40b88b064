package table

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadOptions controls how Load interprets a file.
type LoadOptions struct {
	Delimiter rune
	// Sheet names the workbook sheet to read; empty means the first sheet.
	Sheet string
}

// ReadFile acquires the whole file as text. Failures are *ReadError.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}

// Read acquires all of r as text and parses it. name is used in errors.
func Read(r io.Reader, name string, delim rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return Parse(string(data), delim)
}

// Load reads path and parses it. Workbooks (.xlsx, .xlsm) are read through
// excelize; any other file is treated as delimited text.
func Load(path string, opts LoadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, opts.Sheet)
	}
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(text, opts.Delimiter)
}

func loadWorkbook(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ReadError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var records [][]string
	for _, row := range rows {
		record := make([]string, len(row))
		blank := true
		for i, cell := range row {
			record[i] = strings.TrimSpace(cell)
			if record[i] != "" {
				blank = false
			}
		}
		if !blank {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}
