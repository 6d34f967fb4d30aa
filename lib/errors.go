package lib

import (
	"errors"
	"fmt"
)

// The closed set of failures an expression can produce. Anything else
// escaping this package is a bug.
var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrMismatchedParens  = errors.New("mismatched parentheses")
	ErrDivisionByZero    = errors.New("division by zero")
)

// BadTokenError reports a character outside the supported lexical set.
type BadTokenError struct {
	Ch   rune
	Line int
	Col  int
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("bad token '%c' at %d:%d", e.Ch, e.Line, e.Col)
}
