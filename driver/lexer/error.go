package lexer

import "fmt"

// LexicalError reports a character sequence the automaton cannot accept.
type LexicalError struct {
	Message string
	Line    int
	Column  int
	Length  int
}

func newInvalidCharError(r rune, line, column int) *LexicalError {
	return &LexicalError{
		Message: fmt.Sprintf("Carácter inválido: '%c'", r),
		Line:    line,
		Column:  column,
		Length:  1,
	}
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Error léxico en %v:%v: %v", e.Line, e.Column, e.Message)
}
