package main

import (
	"errors"
	"os"
	"strings"

	"github.com/rednet-lang/rednet/diag"
	"github.com/rednet-lang/rednet/driver/lexer"
	"github.com/rednet-lang/rednet/driver/parser"
	"github.com/rednet-lang/rednet/semantic"
	"github.com/rednet-lang/rednet/spec"
)

func loadAutomaton(c *config) (*spec.Automaton, error) {
	if path := automatonPath(c); path != "" {
		return spec.LoadAutomatonFile(path)
	}
	return spec.DefaultAutomaton()
}

func newReporter(c *config) *diag.Reporter {
	return &diag.Reporter{W: os.Stderr, NoColor: !colorEnabled(c)}
}

// tokenize scans the whole source. A lexical error comes back as a
// diagnostic rather than an error so callers can render it with source
// context.
func tokenize(aut *spec.Automaton, src string) ([]*lexer.Token, *diag.Diagnostic, error) {
	scanner, err := lexer.NewScanner(aut, strings.NewReader(src))
	if err != nil {
		return nil, nil, err
	}

	tokens, err := scanner.ScanAll()
	if err != nil {
		var lexErr *lexer.LexicalError
		if errors.As(err, &lexErr) {
			return nil, diag.Lexical(lexErr.Line, lexErr.Column, lexErr.Length, lexErr.Message), nil
		}
		return nil, nil, err
	}
	return tokens, nil, nil
}

// parse runs both parser passes. A syntax error comes back as a
// diagnostic with the acceptable tokens as its help text.
func parse(tokens []*lexer.Token) (*parser.Program, *diag.Diagnostic, error) {
	p, err := parser.NewParser()
	if err != nil {
		return nil, nil, err
	}

	prog, err := p.Parse(tokens)
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			d := diag.Syntax(synErr.Line, synErr.Column, synErr.Length, synErr.Message)
			if len(synErr.Expected) > 0 {
				d = d.WithHelp("se esperaba: " + strings.Join(synErr.Expected, ", "))
			}
			return nil, d, nil
		}
		return nil, nil, err
	}
	return prog, nil, nil
}

func analyze(prog *parser.Program) (*semantic.Analyzer, []*diag.Diagnostic) {
	a := semantic.NewAnalyzer()
	errs := a.Analyze(prog)
	if len(errs) == 0 {
		return a, nil
	}

	var ds []*diag.Diagnostic
	for _, e := range errs {
		ds = append(ds, diag.Semantic(e.Line, e.Column, e.Length, e.Message))
	}
	return a, ds
}

// compile runs scanning, parsing, and semantic analysis. It reports
// every diagnostic it runs into and returns ok=false when any came up.
func compile(c *config, srcPath string) (*parser.Program, *semantic.Analyzer, bool, error) {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, nil, false, err
	}
	source := string(src)
	reporter := newReporter(c)

	aut, err := loadAutomaton(c)
	if err != nil {
		return nil, nil, false, err
	}

	tokens, d, err := tokenize(aut, source)
	if err != nil {
		return nil, nil, false, err
	}
	if d != nil {
		reporter.ReportAll([]*diag.Diagnostic{d}, source, srcPath)
		return nil, nil, false, nil
	}

	prog, d, err := parse(tokens)
	if err != nil {
		return nil, nil, false, err
	}
	if d != nil {
		reporter.ReportAll([]*diag.Diagnostic{d}, source, srcPath)
		return nil, nil, false, nil
	}

	a, ds := analyze(prog)
	if len(ds) > 0 {
		reporter.ReportAll(ds, source, srcPath)
		return nil, nil, false, nil
	}

	return prog, a, true, nil
}
