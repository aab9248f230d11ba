package spec

import (
	"strings"
	"testing"

	"github.com/rednet-lang/rednet/driver/lexer"
)

const miniAutomaton = `
# A stripped-down automaton for tests.
METADATA
initial_state: q0
END_METADATA

STATES
q0
q_id FINAL:IDENTIFIER
q_num FINAL:NUMBER
q_ws FINAL:WHITESPACE
END_STATES

TRANSITIONS
q0, [a-zA-Z_], q_id
q_id, [a-zA-Z0-9_], q_id
q0, [0-9], q_num
q_num, [0-9], q_num
q0, \s, q_ws
q0, \n, q_ws
q_ws, \s, q_ws
q_ws, \n, q_ws
END_TRANSITIONS

KEYWORDS
programa, PROGRAMA
inicio, INICIO
fin, FIN
coloca, COLOCA
END_KEYWORDS
`

func TestLoadAutomaton(t *testing.T) {
	aut, err := LoadAutomaton(strings.NewReader(miniAutomaton))
	if err != nil {
		t.Fatal(err)
	}

	if aut.StateCount() != 4 {
		t.Errorf("unexpected state count; want: 4, got: %v", aut.StateCount())
	}

	s, err := lexer.NewScanner(aut, strings.NewReader("programa red1 42"))
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := s.ScanAll()
	if err != nil {
		t.Fatal(err)
	}

	want := []lexer.TokenType{
		lexer.TokenPrograma,
		lexer.TokenIdentifier,
		lexer.TokenNumber,
		lexer.TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected token count; want: %v, got: %v", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("unexpected token type at %v; want: %v, got: %v", i, w, tokens[i].Type)
		}
	}
}

func TestLoadAutomaton_Invalid(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{
			caption: "missing initial state",
			src: `
METADATA
initial_state: nada
END_METADATA

STATES
q0
END_STATES
`,
		},
		{
			caption: "unknown token type",
			src: `
METADATA
initial_state: q0
END_METADATA

STATES
q0
q1 FINAL:NO_EXISTE
END_STATES
`,
		},
		{
			caption: "malformed transition",
			src: `
METADATA
initial_state: q0
END_METADATA

STATES
q0
END_STATES

TRANSITIONS
q0 solo-un-campo
END_TRANSITIONS
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if _, err := LoadAutomaton(strings.NewReader(tt.src)); err == nil {
				t.Fatal("a malformed specification must be rejected")
			}
		})
	}
}

func TestDefaultAutomaton(t *testing.T) {
	aut, err := DefaultAutomaton()
	if err != nil {
		t.Fatal(err)
	}

	src := `programa red1;
define maquinas uno, dos;
inicio
  coloca(uno, 10, 20); // comentario
  escribe("listo");
fin
.`
	s, err := lexer.NewScanner(aut, strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := s.ScanAll()
	if err != nil {
		t.Fatal(err)
	}

	// Spot-check a few classifications instead of the full stream.
	if tokens[0].Type != lexer.TokenPrograma {
		t.Errorf("the first token must be 'programa'; got: %v", tokens[0])
	}
	var sawString, sawComment bool
	for _, tok := range tokens {
		if tok.Type == lexer.TokenString {
			sawString = true
			if tok.Lexeme != `"listo"` {
				t.Errorf("unexpected string lexeme: %#v", tok.Lexeme)
			}
		}
		if tok.Type == lexer.TokenComment {
			sawComment = true
		}
	}
	if !sawString {
		t.Error("the string literal was not recognized")
	}
	if sawComment {
		t.Error("comments must be filtered out of the stream")
	}
	if tokens[len(tokens)-1].Type != lexer.TokenEOF {
		t.Error("the last token must be EOF")
	}
}
