// Package table turns delimited text into a header row and data rows.
//
// Parsing is whole-input and synchronous:
//
//	t, err := table.Parse(text, table.DefaultDelimiter)
//	if errors.Is(err, table.ErrEmptyInput) {
//		// nothing but blank lines
//	}
//	fmt.Println(t.Summary()) // "4 columns, 6 rows"
//
// Fields follow RFC-4180 double-quote escaping: a quoted field may contain
// the delimiter, and a doubled quote decodes to one literal quote. Unquoted
// fields are trimmed of surrounding whitespace. Rows are returned exactly as
// tokenized; rows shorter or longer than the header are not padded or cut.
//
// A [Table] is never modified after it is returned.
package table
