package semantic

import (
	"fmt"

	"github.com/rednet-lang/rednet/driver/parser"
)

// Error is one semantic violation. The analyzer accumulates these
// instead of stopping at the first.
type Error struct {
	Message string
	Line    int
	Column  int
	Length  int
}

func newError(msg string, pos parser.Position) *Error {
	return &Error{
		Message: msg,
		Line:    pos.Line,
		Column:  pos.Column,
		Length:  pos.Length,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error semántico en %v:%v: %v", e.Line, e.Column, e.Message)
}
