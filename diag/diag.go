// Package diag defines the diagnostics every phase reports through and
// renders them with the source line and a caret under the offending
// span.
package diag

import "fmt"

// Kind distinguishes which phase produced a diagnostic.
type Kind string

const (
	KindLexical  Kind = "Léxico"
	KindSyntax   Kind = "Sintáctico"
	KindSemantic Kind = "Semántico"
	KindRuntime  Kind = "Ejecución"
)

// label is the lowercase form used under the caret.
func (k Kind) label() string {
	switch k {
	case KindLexical:
		return "error léxico"
	case KindSyntax:
		return "error sintáctico"
	case KindSemantic:
		return "error semántico"
	case KindRuntime:
		return "error de ejecución"
	}
	return "error"
}

// Diagnostic is one reported problem. Line and Column are 1-based; a
// Line of 0 means the problem sits at the end of the file. Length is
// the width of the caret run, in code points.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Column  int
	Length  int
	Message string
	Help    string
}

func Lexical(line, column, length int, message string) *Diagnostic {
	return &Diagnostic{Kind: KindLexical, Line: line, Column: column, Length: length, Message: message}
}

func Syntax(line, column, length int, message string) *Diagnostic {
	return &Diagnostic{Kind: KindSyntax, Line: line, Column: column, Length: length, Message: message}
}

func Semantic(line, column, length int, message string) *Diagnostic {
	return &Diagnostic{Kind: KindSemantic, Line: line, Column: column, Length: length, Message: message}
}

func Runtime(line, column, length int, message string) *Diagnostic {
	return &Diagnostic{Kind: KindRuntime, Line: line, Column: column, Length: length, Message: message}
}

func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("Error %v en línea %v, columna %v: %v", d.Kind, d.Line, d.Column, d.Message)
}
