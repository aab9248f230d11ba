package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rednet-lang/rednet/driver/lexer"
)

type tableKey struct {
	nt NonTerminalID
	t  lexer.TokenType
}

// LL1Table is the predictive parsing table M[A, a] → production. Keys ignore
// token payloads; the end of input is keyed by the EOF token type.
type LL1Table struct {
	prods   *ProductionSet
	entries map[tableKey]ProductionNum
}

// NewLL1Table builds the table of the Red grammar. Construction fails on an
// LL(1) conflict, that is, when two entries land on the same cell.
func NewLL1Table() (*LL1Table, error) {
	t := &LL1Table{
		prods:   Productions(),
		entries: map[tableKey]ProductionNum{},
	}
	if err := t.build(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *LL1Table) add(nt NonTerminalID, tok lexer.TokenType, num ProductionNum) error {
	p, ok := t.prods.Find(num)
	if !ok {
		return fmt.Errorf("la producción %v no existe", num)
	}
	if p.LHS != nt {
		return fmt.Errorf("la producción %v no deriva de %v", num, nt)
	}
	key := tableKey{nt: nt, t: tok}
	if prev, ok := t.entries[key]; ok && prev != num {
		return fmt.Errorf("conflicto LL(1) en M[%v, %v]: producciones %v y %v", nt, tok, prev, num)
	}
	t.entries[key] = num
	return nil
}

// Get looks up the production to apply when nt is on top of the stack and
// tok is the lookahead.
func (t *LL1Table) Get(nt NonTerminalID, tok lexer.TokenType) (*Production, bool) {
	num, ok := t.entries[tableKey{nt: nt, t: tok}]
	if !ok {
		return nil, false
	}
	p, ok := t.prods.Find(num)
	return p, ok
}

// Productions returns the production set backing the table.
func (t *LL1Table) Productions() *ProductionSet {
	return t.prods
}

// ExpectedTokens returns the lookahead token types for which the table has an
// entry under nt, in ascending token order. Syntax errors report them.
func (t *LL1Table) ExpectedTokens(nt NonTerminalID) []lexer.TokenType {
	var toks []lexer.TokenType
	for key := range t.entries {
		if key.nt == nt {
			toks = append(toks, key.t)
		}
	}
	sort.Slice(toks, func(i, j int) bool {
		return toks[i] < toks[j]
	})
	return toks
}

func (t *LL1Table) build() error {
	type entry struct {
		nt  NonTerminalID
		tok lexer.TokenType
		num ProductionNum
	}

	stmtStarters := []lexer.TokenType{
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
	exprStarters := []lexer.TokenType{
		lexer.TokenNot,
		lexer.TokenNumber,
		lexer.TokenString,
		lexer.TokenIdentifier,
		lexer.TokenLParen,
	}
	relOps := []lexer.TokenType{
		lexer.TokenEqual,
		lexer.TokenNotEqual,
		lexer.TokenLess,
		lexer.TokenGreater,
		lexer.TokenLessEqual,
		lexer.TokenGreaterEqual,
	}
	// Followers of a primary expression: any relational or logical operator
	// plus everything that can close an expression.
	postExpr := append(append([]lexer.TokenType{}, relOps...),
		lexer.TokenAnd,
		lexer.TokenOr,
		lexer.TokenRParen,
		lexer.TokenComma,
		lexer.TokenRBracket,
		lexer.TokenSemicolon,
		lexer.TokenInicio,
	)

	var entries []entry
	add := func(nt NonTerminalID, num ProductionNum, toks ...lexer.TokenType) {
		for _, tok := range toks {
			entries = append(entries, entry{nt: nt, tok: tok, num: num})
		}
	}

	add(NTPrograma, 1, lexer.TokenPrograma)

	add(NTDefiniciones, 2, lexer.TokenDefine)
	add(NTDefiniciones, 3, lexer.TokenModulo, lexer.TokenInicio)

	add(NTDefMaquinas, 4, lexer.TokenDefine)
	add(NTDefMaquinas, 5, lexer.TokenModulo, lexer.TokenInicio)

	add(NTDefConcentradores, 6, lexer.TokenDefine)
	add(NTDefConcentradores, 7, lexer.TokenModulo, lexer.TokenInicio)

	add(NTDefCoaxiales, 8, lexer.TokenDefine)
	add(NTDefCoaxiales, 9, lexer.TokenModulo, lexer.TokenInicio)

	add(NTTipoCoaxial, 10, lexer.TokenCoaxial)
	add(NTTipoCoaxial, 11, lexer.TokenSegmento)

	add(NTListaMaquinas, 12, lexer.TokenIdentifier)
	add(NTListaMaquinasPrime, 13, lexer.TokenComma)
	add(NTListaMaquinasPrime, 14, lexer.TokenSemicolon)

	add(NTListaConcentradores, 15, lexer.TokenIdentifier)
	add(NTListaConcentradoresPrime, 16, lexer.TokenComma)
	add(NTListaConcentradoresPrime, 17, lexer.TokenSemicolon)

	add(NTDeclConcentrador, 18, lexer.TokenIdentifier)
	add(NTOpcionCoaxial, 19, lexer.TokenDot)
	add(NTOpcionCoaxial, 20, lexer.TokenComma, lexer.TokenSemicolon)

	add(NTListaCoaxiales, 21, lexer.TokenIdentifier)
	add(NTListaCoaxialesPrime, 22, lexer.TokenComma)
	add(NTListaCoaxialesPrime, 23, lexer.TokenSemicolon)

	add(NTDeclCoaxial, 24, lexer.TokenIdentifier)

	add(NTModulos, 25, lexer.TokenModulo)
	add(NTModulos, 26, lexer.TokenInicio)
	add(NTModulo, 27, lexer.TokenModulo)

	add(NTBloqueInicio, 28, lexer.TokenInicio)

	add(NTSentencias, 29, stmtStarters...)
	add(NTSentencias, 30, lexer.TokenFin)

	add(NTSentencia, 31, lexer.TokenColoca)
	add(NTSentencia, 32, lexer.TokenColocaCoaxial)
	add(NTSentencia, 33, lexer.TokenColocaCoaxialConcentrador)
	add(NTSentencia, 34, lexer.TokenUneMaquinaPuerto)
	add(NTSentencia, 35, lexer.TokenAsignaPuerto)
	add(NTSentencia, 36, lexer.TokenMaquinaCoaxial)
	add(NTSentencia, 37, lexer.TokenAsignaMaquinaCoaxial)
	add(NTSentencia, 38, lexer.TokenEscribe)
	add(NTSentencia, 39, lexer.TokenSi)
	add(NTSentencia, 40, lexer.TokenIdentifier)

	add(NTSentenciaColoca, 41, lexer.TokenColoca)
	add(NTSentenciaColocaCoaxial, 42, lexer.TokenColocaCoaxial)
	add(NTSentenciaColocaCoaxialConcentrador, 43, lexer.TokenColocaCoaxialConcentrador)
	add(NTSentenciaUneMaquinaPuerto, 44, lexer.TokenUneMaquinaPuerto)
	add(NTSentenciaAsignaPuerto, 45, lexer.TokenAsignaPuerto)
	add(NTSentenciaMaquinaCoaxial, 46, lexer.TokenMaquinaCoaxial)
	add(NTSentenciaAsignaMaquinaCoaxial, 47, lexer.TokenAsignaMaquinaCoaxial)
	add(NTSentenciaEscribe, 48, lexer.TokenEscribe)
	add(NTSentenciaSi, 49, lexer.TokenSi)

	add(NTOpcionSino, 50, lexer.TokenSino)
	add(NTOpcionSino, 51, append(append([]lexer.TokenType{}, stmtStarters...), lexer.TokenFin)...)

	add(NTLlamadaModulo, 52, lexer.TokenIdentifier)

	add(NTDireccion, 53, lexer.TokenArriba)
	add(NTDireccion, 54, lexer.TokenAbajo)
	add(NTDireccion, 55, lexer.TokenIzquierda)
	add(NTDireccion, 56, lexer.TokenDerecha)

	add(NTExpresion, 57, exprStarters...)
	add(NTExpresionOr, 58, exprStarters...)

	add(NTExpresionOrPrime, 59, lexer.TokenOr)
	add(NTExpresionOrPrime, 60,
		lexer.TokenRParen, lexer.TokenComma, lexer.TokenRBracket,
		lexer.TokenSemicolon, lexer.TokenInicio)

	add(NTExpresionAnd, 61, exprStarters...)
	add(NTExpresionAndPrime, 62, lexer.TokenAnd)
	add(NTExpresionAndPrime, 63,
		lexer.TokenOr, lexer.TokenRParen, lexer.TokenComma,
		lexer.TokenRBracket, lexer.TokenSemicolon, lexer.TokenInicio)

	add(NTExpresionRelacional, 64, exprStarters...)
	add(NTOpRelacional, 65, relOps...)
	add(NTOpRelacional, 66,
		lexer.TokenAnd, lexer.TokenOr, lexer.TokenRParen, lexer.TokenComma,
		lexer.TokenRBracket, lexer.TokenSemicolon, lexer.TokenInicio)

	add(NTOperadorRelacional, 67, lexer.TokenEqual)
	add(NTOperadorRelacional, 68, lexer.TokenNotEqual)
	add(NTOperadorRelacional, 69, lexer.TokenLess)
	add(NTOperadorRelacional, 70, lexer.TokenGreater)
	add(NTOperadorRelacional, 71, lexer.TokenLessEqual)
	add(NTOperadorRelacional, 72, lexer.TokenGreaterEqual)

	add(NTExpresionNot, 73, lexer.TokenNot)
	add(NTExpresionNot, 74,
		lexer.TokenNumber, lexer.TokenString, lexer.TokenIdentifier, lexer.TokenLParen)

	add(NTExpresionPrimaria, 75, lexer.TokenNumber)
	add(NTExpresionPrimaria, 76, lexer.TokenString)
	add(NTExpresionPrimaria, 77, lexer.TokenIdentifier)
	add(NTExpresionPrimaria, 78, lexer.TokenLParen)

	add(NTAccesos, 79, lexer.TokenDot)
	add(NTAccesos, 80, lexer.TokenLBracket)
	add(NTAccesos, 81, postExpr...)

	add(NTAccesoCampo, 82, lexer.TokenDot)

	add(NTAccesoArreglo, 83, lexer.TokenLBracket)
	add(NTAccesoArreglo, 84, postExpr...)

	for _, e := range entries {
		if err := t.add(e.nt, e.tok, e.num); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the table in a human readable form: the entries grouped by
// non-terminal followed by the complete production list.
func (t *LL1Table) Export(w io.Writer) error {
	rule := strings.Repeat("═", 72)
	thin := strings.Repeat("─", 72)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "TABLA DE ANÁLISIS PREDICTIVO LL(1)")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formato: M[NoTerminal, Terminal] = Producción")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total de entradas: %v\n", len(t.entries))
	fmt.Fprintf(w, "Total de producciones: %v\n", t.prods.Len())
	fmt.Fprintln(w, rule)

	for _, nt := range NonTerminals() {
		toks := t.ExpectedTokens(nt)
		if len(toks) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, thin)
		fmt.Fprintf(w, "No-Terminal: %v\n", nt)
		fmt.Fprintln(w, thin)
		for _, tok := range toks {
			p, _ := t.Get(nt, tok)
			fmt.Fprintf(w, "  M[%v, %v] = %v\n", nt, tok, p)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "LISTA COMPLETA DE PRODUCCIONES")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	for _, p := range t.prods.All() {
		fmt.Fprintf(w, "[%2d] %v → %v\n", p.Num.Int(), p.LHS, p.RHSString())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	return nil
}
