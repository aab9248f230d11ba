package lexer

import (
	"io"
)

type StateID int

func (id StateID) Int() int {
	return int(id)
}

// LexSpec is the lexical specification a scanner runs on. The spec package
// implements it with an automaton loaded from its textual description.
type LexSpec interface {
	InitialState() StateID
	NextState(state StateID, r rune) (StateID, bool)
	Accept(state StateID) (TokenType, bool)
	ClassifyIdentifier(lexeme string) TokenType
}

type scannerState struct {
	srcPtr int
	line   int
	column int
}

// Scanner tokenizes source text by running the automaton with maximal munch:
// it keeps consuming runes while transitions exist, remembers the last
// accepting state, and reverts to it when the automaton gets stuck.
type Scanner struct {
	spec              LexSpec
	src               []rune
	state             scannerState
	lastAcceptedState scannerState
}

// NewScanner returns a new scanner over src. The spec is injected explicitly;
// scanners never share hidden global state.
func NewScanner(spec LexSpec, src io.Reader) (*Scanner, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		spec: spec,
		src:  []rune(string(b)),
		state: scannerState{
			srcPtr: 0,
			line:   1,
			column: 1,
		},
	}, nil
}

// ScanAll tokenizes the whole source, drops ignorable tokens, and appends the
// EOF token. It stops at the first lexical error.
func (s *Scanner) ScanAll() ([]*Token, error) {
	var tokens []*Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			tokens = append(tokens, tok)
			return tokens, nil
		}
		if !tok.Type.ShouldIgnore() {
			tokens = append(tokens, tok)
		}
	}
}

// Next scans one token, ignorable kinds included. At the end of the source it
// returns the EOF token.
func (s *Scanner) Next() (*Token, error) {
	if s.isAtEnd() {
		return NewEOFToken(s.state.line, s.state.column), nil
	}

	start := s.state
	state := s.spec.InitialState()
	var lastAccepted TokenType
	accepted := false

	for !s.isAtEnd() {
		next, ok := s.spec.NextState(state, s.currentRune())
		if !ok {
			break
		}
		s.advance()
		state = next
		if tok, ok := s.spec.Accept(state); ok {
			lastAccepted = tok
			accepted = true
			s.accept()
		}
	}

	if !accepted {
		r := s.currentRune()
		return nil, newInvalidCharError(r, start.line, start.column)
	}

	s.revert()
	lexeme := string(s.src[start.srcPtr:s.state.srcPtr])
	typ := lastAccepted
	if typ == TokenIdentifier {
		typ = s.spec.ClassifyIdentifier(lexeme)
	}
	return NewToken(typ, lexeme, start.line, start.column), nil
}

func (s *Scanner) currentRune() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.state.srcPtr]
}

func (s *Scanner) advance() {
	if s.isAtEnd() {
		return
	}
	r := s.src[s.state.srcPtr]
	s.state.srcPtr++
	if r == '\n' {
		s.state.line++
		s.state.column = 1
	} else {
		s.state.column++
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.state.srcPtr >= len(s.src)
}

// accept saves the current state.
func (s *Scanner) accept() {
	s.lastAcceptedState = s.state
}

// revert restores the state saved by the last accept call.
//
// We must not call this function without a preceding accept.
func (s *Scanner) revert() {
	s.state = s.lastAcceptedState
}
