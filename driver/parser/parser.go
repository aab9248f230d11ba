// Package parser turns a token stream into a syntax tree in two passes.
// The first pass drives the predictive parsing table with an explicit
// stack and only validates; the second pass is a recursive descent that
// builds the tree. Splitting the passes keeps the table-driven check
// rigorous while leaving tree construction free of stack bookkeeping.
package parser

import (
	"fmt"

	"github.com/rednet-lang/rednet/driver/lexer"
)

type Parser struct {
	validator *Validator
}

func NewParser() (*Parser, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &Parser{validator: v}, nil
}

// Parse validates tokens against the grammar and, when they conform,
// builds the Program. A failure in the build pass after a successful
// validation pass is reported as an internal inconsistency.
func (p *Parser) Parse(tokens []*lexer.Token) (*Program, error) {
	if err := p.validator.Validate(tokens); err != nil {
		return nil, err
	}

	prog, err := NewBuilder(tokens).Build()
	if err != nil {
		return nil, fmt.Errorf("inconsistencia interna entre las dos pasadas del parser: %w", err)
	}
	return prog, nil
}
