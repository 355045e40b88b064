package table

import (
	"strings"
	"unicode"
)

const quote = '"'

type scanState int

const (
	fieldStart scanState = iota
	unquoted
	quoted
	quoteSeen  // a quote inside a quoted field: closing, or first half of ""
	afterQuote // text between a closing quote and the next delimiter
)

// Parse splits text into lines, drops blank lines, and tokenizes the rest.
// The first line becomes the headers. A zero delim means DefaultDelimiter.
func Parse(text string, delim rune) (*Table, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	text = strings.TrimPrefix(text, "\ufeff")

	var records [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, splitFields(line, delim))
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// splitFields tokenizes one line. A field only begins at the line start or
// after a delimiter, so the first field is never an injected empty string.
func splitFields(line string, delim rune) []string {
	var (
		fields []string
		value  strings.Builder
		tail   strings.Builder
		state  = fieldStart
	)

	emit := func() {
		switch state {
		case unquoted:
			fields = append(fields, strings.TrimSpace(value.String()))
		case afterQuote:
			fields = append(fields, value.String()+strings.TrimSpace(tail.String()))
		default:
			fields = append(fields, value.String())
		}
		value.Reset()
		tail.Reset()
		state = fieldStart
	}

	for _, r := range line {
		switch state {
		case fieldStart:
			switch {
			case r == delim:
				emit()
			case r == quote:
				state = quoted
			case unicode.IsSpace(r):
			default:
				value.WriteRune(r)
				state = unquoted
			}
		case unquoted:
			if r == delim {
				emit()
			} else {
				value.WriteRune(r)
			}
		case quoted:
			if r == quote {
				state = quoteSeen
			} else {
				value.WriteRune(r)
			}
		case quoteSeen:
			switch r {
			case quote:
				value.WriteRune(quote)
				state = quoted
			case delim:
				emit()
			default:
				tail.WriteRune(r)
				state = afterQuote
			}
		case afterQuote:
			if r == delim {
				emit()
			} else {
				tail.WriteRune(r)
			}
		}
	}
	emit()

	return fields
}
