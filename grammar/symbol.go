package grammar

import (
	"github.com/rednet-lang/rednet/driver/lexer"
)

type symbolKind string

const (
	symbolKindTerminal    = symbolKind("terminal")
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindEpsilon     = symbolKind("epsilon")
)

func (k symbolKind) String() string {
	return string(k)
}

// Symbol is a grammar symbol appearing on the right-hand side of a
// production: a terminal (identified by its token type, payloads ignored),
// a non-terminal, or ε.
type Symbol struct {
	kind        symbolKind
	terminal    lexer.TokenType
	nonTerminal NonTerminalID
}

func T(t lexer.TokenType) Symbol {
	return Symbol{
		kind:     symbolKindTerminal,
		terminal: t,
	}
}

func N(nt NonTerminalID) Symbol {
	return Symbol{
		kind:        symbolKindNonTerminal,
		nonTerminal: nt,
	}
}

var Epsilon = Symbol{
	kind: symbolKindEpsilon,
}

func (s Symbol) IsTerminal() bool {
	return s.kind == symbolKindTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.kind == symbolKindNonTerminal
}

func (s Symbol) IsEpsilon() bool {
	return s.kind == symbolKindEpsilon
}

func (s Symbol) Terminal() lexer.TokenType {
	return s.terminal
}

func (s Symbol) NonTerminal() NonTerminalID {
	return s.nonTerminal
}

func (s Symbol) String() string {
	switch s.kind {
	case symbolKindTerminal:
		return s.terminal.String()
	case symbolKindNonTerminal:
		return s.nonTerminal.String()
	default:
		return "ε"
	}
}
