package lexer

import (
	"fmt"
	"unicode/utf8"
)

type TokenType int

func (t TokenType) Int() int {
	return int(t)
}

// The token types of the Red language. The zero value is TokenInvalid so that
// an uninitialized kind never aliases a real one.
const (
	TokenInvalid TokenType = iota

	// Palabras reservadas
	TokenPrograma
	TokenDefine
	TokenMaquinas
	TokenConcentradores
	TokenCoaxial
	TokenSegmento
	TokenModulo
	TokenInicio
	TokenFin
	TokenSi
	TokenSino

	// Funciones del lenguaje
	TokenColoca
	TokenColocaCoaxial
	TokenColocaCoaxialConcentrador
	TokenUneMaquinaPuerto
	TokenAsignaPuerto
	TokenMaquinaCoaxial
	TokenAsignaMaquinaCoaxial
	TokenEscribe

	// Direcciones
	TokenArriba
	TokenAbajo
	TokenIzquierda
	TokenDerecha

	// Operadores relacionales
	TokenEqual
	TokenLess
	TokenGreater
	TokenLessEqual
	TokenGreaterEqual
	TokenNotEqual

	// Operadores lógicos
	TokenAnd
	TokenOr
	TokenNot

	// Delimitadores
	TokenComma
	TokenSemicolon
	TokenDot
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket

	// Literales
	TokenIdentifier
	TokenNumber
	TokenString

	// Especiales
	TokenWhitespace
	TokenComment
	TokenEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenPrograma:                  "programa",
	TokenDefine:                    "define",
	TokenMaquinas:                  "maquinas",
	TokenConcentradores:            "concentradores",
	TokenCoaxial:                   "coaxial",
	TokenSegmento:                  "segmento",
	TokenModulo:                    "modulo",
	TokenInicio:                    "inicio",
	TokenFin:                       "fin",
	TokenSi:                        "si",
	TokenSino:                      "sino",
	TokenColoca:                    "coloca",
	TokenColocaCoaxial:             "colocaCoaxial",
	TokenColocaCoaxialConcentrador: "colocaCoaxialConcentrador",
	TokenUneMaquinaPuerto:          "uneMaquinaPuerto",
	TokenAsignaPuerto:              "asignaPuerto",
	TokenMaquinaCoaxial:            "maquinaCoaxial",
	TokenAsignaMaquinaCoaxial:      "asignaMaquinaCoaxial",
	TokenEscribe:                   "escribe",
	TokenArriba:                    "arriba",
	TokenAbajo:                     "abajo",
	TokenIzquierda:                 "izquierda",
	TokenDerecha:                   "derecha",
	TokenEqual:                     "=",
	TokenLess:                      "<",
	TokenGreater:                   ">",
	TokenLessEqual:                 "<=",
	TokenGreaterEqual:              ">=",
	TokenNotEqual:                  "<>",
	TokenAnd:                       "&&",
	TokenOr:                        "||",
	TokenNot:                       "!",
	TokenComma:                     ",",
	TokenSemicolon:                 ";",
	TokenDot:                       ".",
	TokenLParen:                    "(",
	TokenRParen:                    ")",
	TokenLBracket:                  "[",
	TokenRBracket:                  "]",
	TokenIdentifier:                "identificador",
	TokenNumber:                    "número",
	TokenString:                    "cadena",
	TokenWhitespace:                "espacio",
	TokenComment:                   "comentario",
	TokenEOF:                       "fin de archivo",
}

// String returns the display name used in diagnostics. Keywords and operators
// render as their lexeme, literal classes as a Spanish category name.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "desconocido"
}

// ShouldIgnore reports whether a token of this type is dropped before the
// stream reaches the parser.
func (t TokenType) ShouldIgnore() bool {
	return t == TokenWhitespace || t == TokenComment
}

// Token is a lexeme annotated with its type and source position. Line and
// Column are 1-based and counted in code points.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
	Length int
}

func NewToken(typ TokenType, lexeme string, line, column int) *Token {
	return &Token{
		Type:   typ,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
		Length: utf8.RuneCountInString(lexeme),
	}
}

func NewEOFToken(line, column int) *Token {
	return &Token{
		Type:   TokenEOF,
		Line:   line,
		Column: column,
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("%v %#v at %v:%v", t.Type, t.Lexeme, t.Line, t.Column)
}
