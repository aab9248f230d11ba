package lexer

import (
	"strings"
	"testing"
)

// testLexSpec is a tiny hand-built DFA covering identifiers, numbers,
// whitespace, and the comma. State 0 is initial; 1 accepts identifiers,
// 2 numbers, 3 whitespace, 4 the comma.
type testLexSpec struct{}

func (s *testLexSpec) InitialState() StateID {
	return 0
}

func (s *testLexSpec) NextState(state StateID, r rune) (StateID, bool) {
	isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
	isDigit := r >= '0' && r <= '9'
	isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'

	switch state {
	case 0:
		switch {
		case isLetter:
			return 1, true
		case isDigit:
			return 2, true
		case isSpace:
			return 3, true
		case r == ',':
			return 4, true
		}
	case 1:
		if isLetter || isDigit {
			return 1, true
		}
	case 2:
		if isDigit {
			return 2, true
		}
	case 3:
		if isSpace {
			return 3, true
		}
	}
	return 0, false
}

func (s *testLexSpec) Accept(state StateID) (TokenType, bool) {
	switch state {
	case 1:
		return TokenIdentifier, true
	case 2:
		return TokenNumber, true
	case 3:
		return TokenWhitespace, true
	case 4:
		return TokenComma, true
	}
	return TokenInvalid, false
}

func (s *testLexSpec) ClassifyIdentifier(lexeme string) TokenType {
	if strings.ToLower(lexeme) == "programa" {
		return TokenPrograma
	}
	return TokenIdentifier
}

func TestScanner_ScanAll(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		tokens  []*Token
	}{
		{
			caption: "empty input yields only EOF",
			src:     "",
			tokens:  []*Token{},
		},
		{
			caption: "maximal munch keeps scanning while a longer match exists",
			src:     "maquinas1 23",
			tokens: []*Token{
				NewToken(TokenIdentifier, "maquinas1", 1, 1),
				NewToken(TokenNumber, "23", 1, 11),
			},
		},
		{
			caption: "reserved words are classified case-insensitively",
			src:     "PROGRAMA red",
			tokens: []*Token{
				NewToken(TokenPrograma, "PROGRAMA", 1, 1),
				NewToken(TokenIdentifier, "red", 1, 10),
			},
		},
		{
			caption: "positions advance across lines",
			src:     "uno\n  dos",
			tokens: []*Token{
				NewToken(TokenIdentifier, "uno", 1, 1),
				NewToken(TokenIdentifier, "dos", 2, 3),
			},
		},
		{
			caption: "commas separate without whitespace",
			src:     "a,b",
			tokens: []*Token{
				NewToken(TokenIdentifier, "a", 1, 1),
				NewToken(TokenComma, ",", 1, 2),
				NewToken(TokenIdentifier, "b", 1, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			s, err := NewScanner(&testLexSpec{}, strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			tokens, err := s.ScanAll()
			if err != nil {
				t.Fatal(err)
			}

			if len(tokens) != len(tt.tokens)+1 {
				t.Fatalf("unexpected token count; want: %v + EOF, got: %v", len(tt.tokens), len(tokens))
			}
			for i, want := range tt.tokens {
				got := tokens[i]
				if got.Type != want.Type || got.Lexeme != want.Lexeme || got.Line != want.Line || got.Column != want.Column {
					t.Errorf("unexpected token; want: %v, got: %v", want, got)
				}
			}
			last := tokens[len(tokens)-1]
			if last.Type != TokenEOF {
				t.Errorf("the last token must be EOF; got: %v", last)
			}
		})
	}
}

func TestScanner_InvalidCharacter(t *testing.T) {
	s, err := NewScanner(&testLexSpec{}, strings.NewReader("abc $"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ScanAll()
	if err == nil {
		t.Fatal("an invalid character must fail the scan")
	}
	lexErr, ok := err.(*LexicalError)
	if !ok {
		t.Fatalf("unexpected error type: %T", err)
	}
	if lexErr.Line != 1 || lexErr.Column != 5 {
		t.Errorf("unexpected position; want: 1:5, got: %v:%v", lexErr.Line, lexErr.Column)
	}
}
