package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/rednet-lang/rednet/driver/lexer"
)

// FirstEntry is the FIRST set of one non-terminal: the terminals that can
// begin a derivation, plus whether the non-terminal derives ε.
type FirstEntry struct {
	terminals *treeset.Set
	empty     bool
}

func newFirstEntry(empty bool, terminals ...lexer.TokenType) *FirstEntry {
	set := treeset.NewWith(utils.IntComparator)
	for _, t := range terminals {
		set.Add(t.Int())
	}
	return &FirstEntry{
		terminals: set,
		empty:     empty,
	}
}

func (e *FirstEntry) Contains(t lexer.TokenType) bool {
	return e.terminals.Contains(t.Int())
}

// Empty reports whether ε belongs to the set.
func (e *FirstEntry) Empty() bool {
	return e.empty
}

// Terminals returns the member token types in ascending order.
func (e *FirstEntry) Terminals() []lexer.TokenType {
	vals := e.terminals.Values()
	ts := make([]lexer.TokenType, len(vals))
	for i, v := range vals {
		ts[i] = lexer.TokenType(v.(int))
	}
	return ts
}

// FirstSet holds the FIRST set of every non-terminal. The sets are part of
// the grammar definition, written down here rather than recomputed from the
// productions on every run.
type FirstSet struct {
	entries map[NonTerminalID]*FirstEntry
}

// Find returns the FIRST set of a non-terminal.
func (s *FirstSet) Find(nt NonTerminalID) (*FirstEntry, bool) {
	e, ok := s.entries[nt]
	return e, ok
}

// Contains reports whether terminal t belongs to FIRST(nt).
func (s *FirstSet) Contains(nt NonTerminalID, t lexer.TokenType) bool {
	e, ok := s.entries[nt]
	return ok && e.Contains(t)
}

// FirstSets returns the FIRST sets of the Red grammar.
func FirstSets() *FirstSet {
	exprFirst := []lexer.TokenType{
		lexer.TokenNot,
		lexer.TokenNumber,
		lexer.TokenString,
		lexer.TokenIdentifier,
		lexer.TokenLParen,
	}
	stmtFirst := []lexer.TokenType{
		lexer.TokenColoca,
		lexer.TokenColocaCoaxial,
		lexer.TokenColocaCoaxialConcentrador,
		lexer.TokenUneMaquinaPuerto,
		lexer.TokenAsignaPuerto,
		lexer.TokenMaquinaCoaxial,
		lexer.TokenAsignaMaquinaCoaxial,
		lexer.TokenEscribe,
		lexer.TokenSi,
		lexer.TokenIdentifier,
	}
	relOps := []lexer.TokenType{
		lexer.TokenEqual,
		lexer.TokenNotEqual,
		lexer.TokenLess,
		lexer.TokenGreater,
		lexer.TokenLessEqual,
		lexer.TokenGreaterEqual,
	}

	return &FirstSet{
		entries: map[NonTerminalID]*FirstEntry{
			NTPrograma:          newFirstEntry(false, lexer.TokenPrograma),
			NTDefiniciones:      newFirstEntry(true, lexer.TokenDefine),
			NTDefMaquinas:       newFirstEntry(true, lexer.TokenDefine),
			NTDefConcentradores: newFirstEntry(true, lexer.TokenDefine),
			NTDefCoaxiales:      newFirstEntry(true, lexer.TokenDefine),
			NTTipoCoaxial:       newFirstEntry(false, lexer.TokenCoaxial, lexer.TokenSegmento),

			NTListaMaquinas:            newFirstEntry(false, lexer.TokenIdentifier),
			NTListaMaquinasPrime:       newFirstEntry(true, lexer.TokenComma),
			NTListaConcentradores:      newFirstEntry(false, lexer.TokenIdentifier),
			NTListaConcentradoresPrime: newFirstEntry(true, lexer.TokenComma),
			NTDeclConcentrador:         newFirstEntry(false, lexer.TokenIdentifier),
			NTOpcionCoaxial:            newFirstEntry(true, lexer.TokenDot),
			NTListaCoaxiales:           newFirstEntry(false, lexer.TokenIdentifier),
			NTListaCoaxialesPrime:      newFirstEntry(true, lexer.TokenComma),
			NTDeclCoaxial:              newFirstEntry(false, lexer.TokenIdentifier),

			NTModulos:      newFirstEntry(true, lexer.TokenModulo),
			NTModulo:       newFirstEntry(false, lexer.TokenModulo),
			NTBloqueInicio: newFirstEntry(false, lexer.TokenInicio),

			NTSentencias: newFirstEntry(true, stmtFirst...),
			NTSentencia:  newFirstEntry(false, stmtFirst...),

			NTSentenciaColoca:                    newFirstEntry(false, lexer.TokenColoca),
			NTSentenciaColocaCoaxial:             newFirstEntry(false, lexer.TokenColocaCoaxial),
			NTSentenciaColocaCoaxialConcentrador: newFirstEntry(false, lexer.TokenColocaCoaxialConcentrador),
			NTSentenciaUneMaquinaPuerto:          newFirstEntry(false, lexer.TokenUneMaquinaPuerto),
			NTSentenciaAsignaPuerto:              newFirstEntry(false, lexer.TokenAsignaPuerto),
			NTSentenciaMaquinaCoaxial:            newFirstEntry(false, lexer.TokenMaquinaCoaxial),
			NTSentenciaAsignaMaquinaCoaxial:      newFirstEntry(false, lexer.TokenAsignaMaquinaCoaxial),
			NTSentenciaEscribe:                   newFirstEntry(false, lexer.TokenEscribe),
			NTSentenciaSi:                        newFirstEntry(false, lexer.TokenSi),

			NTOpcionSino:    newFirstEntry(true, lexer.TokenSino),
			NTLlamadaModulo: newFirstEntry(false, lexer.TokenIdentifier),
			NTDireccion: newFirstEntry(false,
				lexer.TokenArriba,
				lexer.TokenAbajo,
				lexer.TokenIzquierda,
				lexer.TokenDerecha,
			),

			NTExpresion:           newFirstEntry(false, exprFirst...),
			NTExpresionOr:         newFirstEntry(false, exprFirst...),
			NTExpresionOrPrime:    newFirstEntry(true, lexer.TokenOr),
			NTExpresionAnd:        newFirstEntry(false, exprFirst...),
			NTExpresionAndPrime:   newFirstEntry(true, lexer.TokenAnd),
			NTExpresionRelacional: newFirstEntry(false, exprFirst...),
			NTOpRelacional:        newFirstEntry(true, relOps...),
			NTOperadorRelacional:  newFirstEntry(false, relOps...),
			NTExpresionNot:        newFirstEntry(false, exprFirst...),
			NTExpresionPrimaria: newFirstEntry(false,
				lexer.TokenNumber,
				lexer.TokenString,
				lexer.TokenIdentifier,
				lexer.TokenLParen,
			),

			NTAccesos:       newFirstEntry(true, lexer.TokenDot, lexer.TokenLBracket),
			NTAccesoCampo:   newFirstEntry(false, lexer.TokenDot),
			NTAccesoArreglo: newFirstEntry(true, lexer.TokenLBracket),
		},
	}
}
