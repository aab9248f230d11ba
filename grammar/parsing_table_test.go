package grammar

import (
	"strings"
	"testing"

	"github.com/rednet-lang/rednet/driver/lexer"
)

func TestNewLL1Table(t *testing.T) {
	table, err := NewLL1Table()
	if err != nil {
		t.Fatalf("the grammar is not LL(1): %v", err)
	}
	if n := table.Productions().Len(); n != 84 {
		t.Errorf("the table carries %v productions, want 84", n)
	}
}

func TestLL1Table_Get(t *testing.T) {
	tests := []struct {
		caption string
		nt      NonTerminalID
		tok     lexer.TokenType
		num     ProductionNum
		epsilon bool
		miss    bool
	}{
		{
			caption: "programa selects the start production",
			nt:      NTPrograma,
			tok:     lexer.TokenPrograma,
			num:     1,
		},
		{
			caption: "inicio skips the optional definitions",
			nt:      NTDefiniciones,
			tok:     lexer.TokenInicio,
			num:     3,
			epsilon: true,
		},
		{
			caption: "coloca selects the placement statement",
			nt:      NTSentencia,
			tok:     lexer.TokenColoca,
			num:     31,
		},
		{
			caption: "fin empties the statement list",
			nt:      NTSentencias,
			tok:     lexer.TokenFin,
			num:     30,
			epsilon: true,
		},
		{
			caption: "a statement head cannot start with fin",
			nt:      NTSentencia,
			tok:     lexer.TokenFin,
			miss:    true,
		},
		{
			caption: "izquierda selects its direction production",
			nt:      NTDireccion,
			tok:     lexer.TokenIzquierda,
			num:     55,
		},
	}
	table, err := NewLL1Table()
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, ok := table.Get(tt.nt, tt.tok)
			if tt.miss {
				if ok {
					t.Fatalf("M[%v, %v] should be empty, got %v", tt.nt, tt.tok, p)
				}
				return
			}
			if !ok {
				t.Fatalf("M[%v, %v] is empty", tt.nt, tt.tok)
			}
			if p.Num != tt.num {
				t.Errorf("M[%v, %v] = %v, want production %v", tt.nt, tt.tok, p.Num, tt.num)
			}
			if p.LHS != tt.nt {
				t.Errorf("production %v has left-hand side %v, want %v", p.Num, p.LHS, tt.nt)
			}
			if p.IsEpsilon() != tt.epsilon {
				t.Errorf("production %v: ε is %v, want %v", p.Num, p.IsEpsilon(), tt.epsilon)
			}
		})
	}
}

func TestLL1Table_ExpectedTokens(t *testing.T) {
	table, err := NewLL1Table()
	if err != nil {
		t.Fatal(err)
	}

	toks := table.ExpectedTokens(NTDireccion)
	want := map[lexer.TokenType]bool{
		lexer.TokenArriba:    true,
		lexer.TokenAbajo:     true,
		lexer.TokenIzquierda: true,
		lexer.TokenDerecha:   true,
	}
	if len(toks) != len(want) {
		t.Fatalf("ExpectedTokens(%v) returned %v tokens, want %v", NTDireccion, len(toks), len(want))
	}
	for _, tok := range toks {
		if !want[tok] {
			t.Errorf("ExpectedTokens(%v) contains unexpected %v", NTDireccion, tok)
		}
	}
}

func TestLL1Table_Export(t *testing.T) {
	table, err := NewLL1Table()
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := table.Export(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"TABLA DE ANÁLISIS PREDICTIVO LL(1)",
		"LISTA COMPLETA DE PRODUCCIONES",
		"Programa",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("the export should contain %#v", want)
		}
	}
}
