package parser

import (
	"fmt"
	"strings"
)

// SyntaxError describes a point where the token stream diverges from the
// grammar. Expected lists the token names the parser would have accepted,
// when they are known.
type SyntaxError struct {
	Message  string
	Line     int
	Column   int
	Length   int
	Expected []string
}

func newSyntaxError(msg string, pos Position) *SyntaxError {
	return &SyntaxError{
		Message: msg,
		Line:    pos.Line,
		Column:  pos.Column,
		Length:  pos.Length,
	}
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("Error sintáctico en %v:%v: %v (se esperaba: %v)",
			e.Line, e.Column, e.Message, strings.Join(e.Expected, ", "))
	}
	return fmt.Sprintf("Error sintáctico en %v:%v: %v", e.Line, e.Column, e.Message)
}
