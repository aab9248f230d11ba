package interpreter

import (
	"fmt"

	"github.com/rednet-lang/rednet/driver/parser"
)

// Error is a runtime failure. Execution stops at the first one.
type Error struct {
	Message string
	Line    int
	Column  int
	Length  int
}

func newError(pos parser.Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
		Length:  pos.Length,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error de ejecución en %v:%v: %v", e.Line, e.Column, e.Message)
}
