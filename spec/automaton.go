package spec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rednet-lang/rednet/driver/lexer"
)

// Transition moves the automaton from one state to another when the next
// rune belongs to the class.
type Transition struct {
	From  lexer.StateID
	Class CharClass
	To    lexer.StateID
}

// Automaton is a deterministic finite automaton loaded from its textual
// description. It is immutable once loaded; callers hand it to a scanner
// explicitly instead of sharing a process-wide instance.
type Automaton struct {
	initialState lexer.StateID
	transitions  []Transition
	finalStates  map[lexer.StateID]lexer.TokenType
	keywords     map[string]lexer.TokenType
	stateIDs     map[string]lexer.StateID
}

// LoadAutomatonFile reads and parses an automaton description from disk.
func LoadAutomatonFile(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error leyendo archivo %v: %w", path, err)
	}
	defer f.Close()
	return LoadAutomaton(f)
}

// LoadAutomaton parses an automaton description. The format is line based
// with four sections, each closed by an END_ line:
//
//	METADATA     initial_state: <name>
//	STATES       <name> [FINAL:<TOKEN_TYPE>]
//	TRANSITIONS  <from>, <char class>, <to>
//	KEYWORDS     <lexeme>, <TOKEN_TYPE>
//
// Lines starting with # are comments. State names are interned to sequential
// ids in order of first appearance.
func LoadAutomaton(src io.Reader) (*Automaton, error) {
	a := &Automaton{
		finalStates: map[lexer.StateID]lexer.TokenType{},
		keywords:    map[string]lexer.TokenType{},
		stateIDs:    map[string]lexer.StateID{},
	}

	var section string
	var initialStateName string
	lineNum := 0
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch line {
		case "METADATA", "STATES", "TRANSITIONS", "KEYWORDS":
			section = line
			continue
		}
		if strings.HasPrefix(line, "END_") {
			section = ""
			continue
		}

		switch section {
		case "METADATA":
			if strings.HasPrefix(line, "initial_state:") {
				initialStateName = strings.TrimSpace(strings.TrimPrefix(line, "initial_state:"))
			}
		case "STATES":
			if err := a.parseState(line); err != nil {
				return nil, fmt.Errorf("línea %v: %w", lineNum, err)
			}
		case "TRANSITIONS":
			if err := a.parseTransition(line); err != nil {
				return nil, fmt.Errorf("línea %v: %w", lineNum, err)
			}
		case "KEYWORDS":
			if err := a.parseKeyword(line); err != nil {
				return nil, fmt.Errorf("línea %v: %w", lineNum, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if initialStateName != "" {
		id, ok := a.stateIDs[initialStateName]
		if !ok {
			return nil, fmt.Errorf("estado inicial %v no encontrado", initialStateName)
		}
		a.initialState = id
	}
	return a, nil
}

func (a *Automaton) internState(name string) lexer.StateID {
	if id, ok := a.stateIDs[name]; ok {
		return id
	}
	id := lexer.StateID(len(a.stateIDs))
	a.stateIDs[name] = id
	return id
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func (a *Automaton) parseState(line string) error {
	fields := strings.Fields(stripComment(line))
	if len(fields) == 0 {
		return nil
	}
	id := a.internState(fields[0])
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "FINAL:") {
			tok, err := parseTokenType(strings.TrimPrefix(f, "FINAL:"))
			if err != nil {
				return err
			}
			a.finalStates[id] = tok
		}
	}
	return nil
}

func (a *Automaton) parseTransition(line string) error {
	parts := strings.Split(stripComment(line), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	var fromName, charSpec, toName string
	switch {
	case len(parts) == 4 && parts[1] == "" && parts[2] == "":
		// A transition on the comma character itself: q0, ,, q1
		fromName, charSpec, toName = parts[0], ",", parts[3]
	case len(parts) == 3:
		fromName, charSpec, toName = parts[0], parts[1], parts[2]
	default:
		return nil
	}

	class, err := parseCharClass(charSpec)
	if err != nil {
		return err
	}
	a.transitions = append(a.transitions, Transition{
		From:  a.internState(fromName),
		Class: class,
		To:    a.internState(toName),
	})
	return nil
}

func (a *Automaton) parseKeyword(line string) error {
	parts := strings.Split(stripComment(line), ",")
	if len(parts) != 2 {
		return nil
	}
	tok, err := parseTokenType(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}
	a.keywords[strings.TrimSpace(parts[0])] = tok
	return nil
}

// InitialState implements lexer.LexSpec.
func (a *Automaton) InitialState() lexer.StateID {
	return a.initialState
}

// NextState implements lexer.LexSpec. It returns the state reached from
// `current` on rune `r`, or false when the automaton has no such transition.
func (a *Automaton) NextState(current lexer.StateID, r rune) (lexer.StateID, bool) {
	for _, tr := range a.transitions {
		if tr.From == current && tr.Class.Matches(r) {
			return tr.To, true
		}
	}
	return 0, false
}

// Accept implements lexer.LexSpec. It reports whether `state` is accepting
// and which token type it produces.
func (a *Automaton) Accept(state lexer.StateID) (lexer.TokenType, bool) {
	tok, ok := a.finalStates[state]
	return tok, ok
}

// ClassifyIdentifier implements lexer.LexSpec. Reserved words match
// case-insensitively, camelCase function names match exactly, and everything
// else stays an identifier.
func (a *Automaton) ClassifyIdentifier(lexeme string) lexer.TokenType {
	if tok, ok := a.keywords[strings.ToLower(lexeme)]; ok {
		return tok
	}
	if tok, ok := a.keywords[lexeme]; ok {
		return tok
	}
	return lexer.TokenIdentifier
}

// StateCount returns how many distinct states the description declared.
func (a *Automaton) StateCount() int {
	return len(a.stateIDs)
}

var tokenTypesByName = map[string]lexer.TokenType{
	"PROGRAMA":                    lexer.TokenPrograma,
	"DEFINE":                      lexer.TokenDefine,
	"MAQUINAS":                    lexer.TokenMaquinas,
	"CONCENTRADORES":              lexer.TokenConcentradores,
	"COAXIAL":                     lexer.TokenCoaxial,
	"SEGMENTO":                    lexer.TokenSegmento,
	"MODULO":                      lexer.TokenModulo,
	"INICIO":                      lexer.TokenInicio,
	"FIN":                         lexer.TokenFin,
	"SI":                          lexer.TokenSi,
	"SINO":                        lexer.TokenSino,
	"COLOCA":                      lexer.TokenColoca,
	"COLOCA_COAXIAL":              lexer.TokenColocaCoaxial,
	"COLOCA_COAXIAL_CONCENTRADOR": lexer.TokenColocaCoaxialConcentrador,
	"UNE_MAQUINA_PUERTO":          lexer.TokenUneMaquinaPuerto,
	"ASIGNA_PUERTO":               lexer.TokenAsignaPuerto,
	"MAQUINA_COAXIAL":             lexer.TokenMaquinaCoaxial,
	"ASIGNA_MAQUINA_COAXIAL":      lexer.TokenAsignaMaquinaCoaxial,
	"ESCRIBE":                     lexer.TokenEscribe,
	"ARRIBA":                      lexer.TokenArriba,
	"ABAJO":                       lexer.TokenAbajo,
	"IZQUIERDA":                   lexer.TokenIzquierda,
	"DERECHA":                     lexer.TokenDerecha,
	"EQUAL":                       lexer.TokenEqual,
	"LESS":                        lexer.TokenLess,
	"GREATER":                     lexer.TokenGreater,
	"LESS_EQUAL":                  lexer.TokenLessEqual,
	"GREATER_EQUAL":               lexer.TokenGreaterEqual,
	"NOT_EQUAL":                   lexer.TokenNotEqual,
	"AND":                         lexer.TokenAnd,
	"OR":                          lexer.TokenOr,
	"NOT":                         lexer.TokenNot,
	"COMMA":                       lexer.TokenComma,
	"SEMICOLON":                   lexer.TokenSemicolon,
	"DOT":                         lexer.TokenDot,
	"LPAREN":                      lexer.TokenLParen,
	"RPAREN":                      lexer.TokenRParen,
	"LBRACKET":                    lexer.TokenLBracket,
	"RBRACKET":                    lexer.TokenRBracket,
	"IDENTIFIER":                  lexer.TokenIdentifier,
	"NUMBER":                      lexer.TokenNumber,
	"STRING":                      lexer.TokenString,
	"WHITESPACE":                  lexer.TokenWhitespace,
	"COMMENT":                     lexer.TokenComment,

	// Legacy descriptions mark an error sink; treat it as an identifier.
	"ERROR": lexer.TokenIdentifier,
}

func parseTokenType(s string) (lexer.TokenType, error) {
	tok, ok := tokenTypesByName[s]
	if !ok {
		return lexer.TokenInvalid, fmt.Errorf("tipo de token desconocido: %v", s)
	}
	return tok, nil
}
