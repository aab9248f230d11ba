package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/rednet-lang/rednet/driver/lexer"
)

// FollowEntry is the FOLLOW set of one non-terminal: the terminals that can
// appear immediately after it, plus whether the end of input can.
type FollowEntry struct {
	terminals *treeset.Set
	eof       bool
}

func newFollowEntry(eof bool, terminals ...lexer.TokenType) *FollowEntry {
	set := treeset.NewWith(utils.IntComparator)
	for _, t := range terminals {
		set.Add(t.Int())
	}
	return &FollowEntry{
		terminals: set,
		eof:       eof,
	}
}

func (e *FollowEntry) Contains(t lexer.TokenType) bool {
	return e.terminals.Contains(t.Int())
}

// EOF reports whether the end of input belongs to the set.
func (e *FollowEntry) EOF() bool {
	return e.eof
}

// Terminals returns the member token types in ascending order.
func (e *FollowEntry) Terminals() []lexer.TokenType {
	vals := e.terminals.Values()
	ts := make([]lexer.TokenType, len(vals))
	for i, v := range vals {
		ts[i] = lexer.TokenType(v.(int))
	}
	return ts
}

// FollowSet holds the FOLLOW set of every non-terminal, written down as part
// of the grammar definition like the FIRST sets.
type FollowSet struct {
	entries map[NonTerminalID]*FollowEntry
}

// Find returns the FOLLOW set of a non-terminal.
func (s *FollowSet) Find(nt NonTerminalID) (*FollowEntry, bool) {
	e, ok := s.entries[nt]
	return e, ok
}

// Contains reports whether terminal t belongs to FOLLOW(nt).
func (s *FollowSet) Contains(nt NonTerminalID, t lexer.TokenType) bool {
	e, ok := s.entries[nt]
	return ok && e.Contains(t)
}

// FollowSets returns the FOLLOW sets of the Red grammar.
func FollowSets() *FollowSet {
	stmtFollowers := []lexer.TokenType{
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
		lexer.TokenFin,
	}
	exprFollowers := []lexer.TokenType{
		lexer.TokenRParen,
		lexer.TokenComma,
		lexer.TokenRBracket,
		lexer.TokenSemicolon,
		lexer.TokenInicio,
	}
	andFollowers := append([]lexer.TokenType{lexer.TokenOr}, exprFollowers...)
	relFollowers := append([]lexer.TokenType{lexer.TokenAnd}, andFollowers...)
	notFollowers := append([]lexer.TokenType{
		lexer.TokenEqual,
		lexer.TokenNotEqual,
		lexer.TokenLess,
		lexer.TokenGreater,
		lexer.TokenLessEqual,
		lexer.TokenGreaterEqual,
	}, relFollowers...)

	entries := map[NonTerminalID]*FollowEntry{
		NTPrograma:          newFollowEntry(true),
		NTDefiniciones:      newFollowEntry(false, lexer.TokenModulo, lexer.TokenInicio),
		NTDefMaquinas:       newFollowEntry(false, lexer.TokenDefine, lexer.TokenModulo, lexer.TokenInicio),
		NTDefConcentradores: newFollowEntry(false, lexer.TokenDefine, lexer.TokenModulo, lexer.TokenInicio),
		NTDefCoaxiales:      newFollowEntry(false, lexer.TokenModulo, lexer.TokenInicio),
		NTTipoCoaxial:       newFollowEntry(false, lexer.TokenIdentifier),

		NTListaMaquinas:            newFollowEntry(false, lexer.TokenSemicolon),
		NTListaMaquinasPrime:       newFollowEntry(false, lexer.TokenSemicolon),
		NTListaConcentradores:      newFollowEntry(false, lexer.TokenSemicolon),
		NTListaConcentradoresPrime: newFollowEntry(false, lexer.TokenSemicolon),
		NTDeclConcentrador:         newFollowEntry(false, lexer.TokenComma, lexer.TokenSemicolon),
		NTOpcionCoaxial:            newFollowEntry(false, lexer.TokenComma, lexer.TokenSemicolon),
		NTListaCoaxiales:           newFollowEntry(false, lexer.TokenSemicolon),
		NTListaCoaxialesPrime:      newFollowEntry(false, lexer.TokenSemicolon),
		NTDeclCoaxial:              newFollowEntry(false, lexer.TokenComma, lexer.TokenSemicolon),

		NTModulos: newFollowEntry(false, lexer.TokenInicio),
		NTModulo:  newFollowEntry(false, lexer.TokenModulo, lexer.TokenInicio),
		NTBloqueInicio: newFollowEntry(false, append([]lexer.TokenType{
			lexer.TokenDot,
			lexer.TokenModulo,
			lexer.TokenInicio,
		}, stmtFollowers...)...),

		NTSentencias: newFollowEntry(false, lexer.TokenFin),

		NTDireccion: newFollowEntry(false, lexer.TokenRParen),

		NTExpresion:        newFollowEntry(false, exprFollowers...),
		NTExpresionOr:      newFollowEntry(false, exprFollowers...),
		NTExpresionOrPrime: newFollowEntry(false, exprFollowers...),

		NTExpresionAnd:      newFollowEntry(false, andFollowers...),
		NTExpresionAndPrime: newFollowEntry(false, andFollowers...),

		NTExpresionRelacional: newFollowEntry(false, relFollowers...),
		NTOpRelacional:        newFollowEntry(false, relFollowers...),

		NTOperadorRelacional: newFollowEntry(false,
			lexer.TokenNot,
			lexer.TokenNumber,
			lexer.TokenString,
			lexer.TokenIdentifier,
			lexer.TokenLParen,
		),

		NTExpresionNot:      newFollowEntry(false, notFollowers...),
		NTExpresionPrimaria: newFollowEntry(false, notFollowers...),
		NTAccesos:           newFollowEntry(false, notFollowers...),
		NTAccesoCampo:       newFollowEntry(false, notFollowers...),
		NTAccesoArreglo:     newFollowEntry(false, notFollowers...),
	}

	for _, nt := range []NonTerminalID{
		NTSentencia,
		NTSentenciaColoca,
		NTSentenciaColocaCoaxial,
		NTSentenciaColocaCoaxialConcentrador,
		NTSentenciaUneMaquinaPuerto,
		NTSentenciaAsignaPuerto,
		NTSentenciaMaquinaCoaxial,
		NTSentenciaAsignaMaquinaCoaxial,
		NTSentenciaEscribe,
		NTSentenciaSi,
		NTOpcionSino,
		NTLlamadaModulo,
	} {
		entries[nt] = newFollowEntry(false, stmtFollowers...)
	}

	return &FollowSet{entries: entries}
}
