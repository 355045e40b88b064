package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input has no non-blank lines.
	ErrEmptyInput = errors.New("table: no non-blank lines in input")

	// ErrReadFailure matches any *ReadError via errors.Is.
	ErrReadFailure = errors.New("table: read failure")
)

// ReadError reports that the source text could not be acquired.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("table: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrReadFailure
}
