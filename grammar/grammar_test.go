package grammar

import (
	"testing"

	"github.com/rednet-lang/rednet/driver/lexer"
)

func TestProductions(t *testing.T) {
	prods := Productions()

	if prods.Len() != 84 {
		t.Fatalf("unexpected production count; want: 84, got: %v", prods.Len())
	}

	// Every production number from 1 to 84 must be present exactly once.
	for num := 1; num <= 84; num++ {
		if _, ok := prods.Find(ProductionNum(num)); !ok {
			t.Errorf("production %v is missing", num)
		}
	}

	// Every non-terminal must appear as a left-hand side.
	lhs := map[NonTerminalID]bool{}
	for _, p := range prods.All() {
		lhs[p.LHS] = true
	}
	for _, nt := range NonTerminals() {
		if !lhs[nt] {
			t.Errorf("non-terminal %v has no production", nt)
		}
	}
}

func TestProductions_Shape(t *testing.T) {
	tests := []struct {
		caption string
		num     ProductionNum
		lhs     NonTerminalID
		rhs     []Symbol
	}{
		{
			caption: "the start production",
			num:     1,
			lhs:     NTPrograma,
			rhs: []Symbol{
				T(lexer.TokenPrograma), T(lexer.TokenIdentifier), T(lexer.TokenSemicolon),
				N(NTDefiniciones), N(NTModulos), N(NTBloqueInicio),
				T(lexer.TokenDot),
			},
		},
		{
			caption: "definiciones may be empty",
			num:     3,
			lhs:     NTDefiniciones,
			rhs:     []Symbol{Epsilon},
		},
		{
			caption: "a hub declaration",
			num:     18,
			lhs:     NTDeclConcentrador,
			rhs: []Symbol{
				T(lexer.TokenIdentifier), T(lexer.TokenEqual), T(lexer.TokenNumber),
				N(NTOpcionCoaxial),
			},
		},
		{
			caption: "a field access",
			num:     82,
			lhs:     NTAccesoCampo,
			rhs:     []Symbol{T(lexer.TokenDot), T(lexer.TokenIdentifier)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, ok := Productions().Find(tt.num)
			if !ok {
				t.Fatalf("production %v is missing", tt.num)
			}
			if p.LHS != tt.lhs {
				t.Fatalf("unexpected LHS; want: %v, got: %v", tt.lhs, p.LHS)
			}
			if len(p.RHS) != len(tt.rhs) {
				t.Fatalf("unexpected RHS length; want: %v, got: %v", len(tt.rhs), len(p.RHS))
			}
			for i, sym := range tt.rhs {
				if p.RHS[i] != sym {
					t.Errorf("unexpected RHS symbol at %v; want: %v, got: %v", i, sym, p.RHS[i])
				}
			}
		})
	}
}
