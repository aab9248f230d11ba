package parser

import (
	"fmt"

	"github.com/rednet-lang/rednet/driver/lexer"
	"github.com/rednet-lang/rednet/grammar"
)

// Validator checks a token stream against the predictive parsing table
// using an explicit stack, without building any tree. It is the first
// pass of the parser; Builder runs only after validation succeeds.
type Validator struct {
	table *grammar.LL1Table
}

func NewValidator() (*Validator, error) {
	table, err := grammar.NewLL1Table()
	if err != nil {
		return nil, err
	}
	return &Validator{table: table}, nil
}

// Validate runs the predictive algorithm over tokens, which must end
// with an EOF token. On the first mismatch it returns a *SyntaxError
// carrying the token names that would have been accepted at that point.
func (v *Validator) Validate(tokens []*lexer.Token) error {
	stack := []grammar.Symbol{
		grammar.T(lexer.TokenEOF),
		grammar.N(grammar.NTPrograma),
	}
	pos := 0

	current := func() *lexer.Token {
		if pos < len(tokens) {
			return tokens[pos]
		}
		return lexer.NewEOFToken(0, 0)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tok := current()

		switch {
		case top.IsEpsilon():
			continue

		case top.IsTerminal():
			if !terminalMatches(top.Terminal(), tok.Type) {
				err := newSyntaxError(
					fmt.Sprintf("se encontró %v", tok.Type),
					positionOf(tok),
				)
				err.Expected = []string{top.Terminal().String()}
				return err
			}
			if tok.Type != lexer.TokenEOF {
				pos++
			}

		case top.IsNonTerminal():
			nt := top.NonTerminal()
			prod, ok := v.table.Get(nt, tok.Type)
			if !ok {
				err := newSyntaxError(
					fmt.Sprintf("se encontró %v", tok.Type),
					positionOf(tok),
				)
				for _, t := range v.table.ExpectedTokens(nt) {
					err.Expected = append(err.Expected, t.String())
				}
				return err
			}
			// Push the right-hand side in reverse so the leftmost
			// symbol ends up on top.
			for i := len(prod.RHS) - 1; i >= 0; i-- {
				stack = append(stack, prod.RHS[i])
			}
		}
	}

	if pos < len(tokens)-1 {
		tok := current()
		return newSyntaxError(
			fmt.Sprintf("se esperaba el fin del programa pero se encontró %v", tok.Type),
			positionOf(tok),
		)
	}
	return nil
}

// terminalMatches compares an expected terminal with the current token
// type. Where the grammar calls for an identifier, a handful of reserved
// words are accepted too: they double as field names after '.', as in
// uno.coaxial or seg1.maquinas.
func terminalMatches(expected, actual lexer.TokenType) bool {
	if expected == actual {
		return true
	}
	if expected == lexer.TokenIdentifier {
		return isFieldNameToken(actual)
	}
	return false
}

func isFieldNameToken(t lexer.TokenType) bool {
	switch t {
	case lexer.TokenCoaxial, lexer.TokenSegmento,
		lexer.TokenMaquinas, lexer.TokenConcentradores,
		lexer.TokenDerecha, lexer.TokenIzquierda,
		lexer.TokenArriba, lexer.TokenAbajo,
		lexer.TokenModulo:
		return true
	}
	return false
}
