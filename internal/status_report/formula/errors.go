package formula

import (
	"errors"
	"fmt"
)

var (
	ErrReadOnlyBinding = errors.New("binding is read-only")
	ErrSyntax          = errors.New("syntax error")
	ErrRuntime         = errors.New("runtime error")
)

// Error locates a failure inside a formula. Line and Column are 1-based and
// count from the start of the whole formula.
type Error struct {
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, line, column int, format string, args ...any) *Error {
	return &Error{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
		Err:     kind,
	}
}
