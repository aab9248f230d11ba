package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rednet-lang/rednet/driver/lexer"
)

// Builder is the second pass of the parser: a recursive-descent walk
// that constructs the syntax tree. It assumes the token stream already
// passed Validator, so its own errors indicate an internal inconsistency
// between the two passes.
type Builder struct {
	tokens []*lexer.Token
	pos    int
}

func NewBuilder(tokens []*lexer.Token) *Builder {
	return &Builder{tokens: tokens}
}

func (b *Builder) peek() *lexer.Token {
	if b.pos < len(b.tokens) {
		return b.tokens[b.pos]
	}
	return lexer.NewEOFToken(0, 0)
}

func (b *Builder) advance() *lexer.Token {
	tok := b.peek()
	if b.pos < len(b.tokens) {
		b.pos++
	}
	return tok
}

func (b *Builder) expect(t lexer.TokenType) (*lexer.Token, error) {
	tok := b.peek()
	if tok.Type != t {
		return nil, newSyntaxError(
			fmt.Sprintf("Se esperaba %v, se encontró %v", t, tok.Type),
			positionOf(tok),
		)
	}
	return b.advance(), nil
}

func (b *Builder) currentPos() Position {
	return positionOf(b.peek())
}

// Build parses the whole token stream into a Program.
func (b *Builder) Build() (*Program, error) {
	return b.parseProgram()
}

// programa ::= "programa" IDENTIFICADOR ";" definiciones modulo* "inicio" sentencias "fin" "."
func (b *Builder) parseProgram() (*Program, error) {
	pos := b.currentPos()

	if _, err := b.expect(lexer.TokenPrograma); err != nil {
		return nil, err
	}

	nameTok := b.peek()
	if nameTok.Type != lexer.TokenIdentifier {
		return nil, newSyntaxError("Se esperaba nombre del programa", positionOf(nameTok))
	}
	b.advance()

	if _, err := b.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}

	defs, err := b.parseDefinitions()
	if err != nil {
		return nil, err
	}

	var modules []*Modulo
	for b.peek().Type == lexer.TokenModulo {
		m, err := b.parseModule()
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	if _, err := b.expect(lexer.TokenInicio); err != nil {
		return nil, err
	}
	stmts, err := b.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenFin); err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenDot); err != nil {
		return nil, err
	}

	return &Program{
		Name:        nameTok.Lexeme,
		Definitions: defs,
		Modules:     modules,
		Statements:  stmts,
		Pos:         pos,
	}, nil
}

// modulo ::= "modulo" IDENTIFICADOR ";" "inicio" sentencias "fin"
func (b *Builder) parseModule() (*Modulo, error) {
	pos := b.currentPos()
	if _, err := b.expect(lexer.TokenModulo); err != nil {
		return nil, err
	}

	nameTok := b.peek()
	if nameTok.Type != lexer.TokenIdentifier {
		return nil, newSyntaxError("Se esperaba nombre del módulo", positionOf(nameTok))
	}
	b.advance()

	if _, err := b.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenInicio); err != nil {
		return nil, err
	}
	stmts, err := b.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenFin); err != nil {
		return nil, err
	}

	return &Modulo{Name: nameTok.Lexeme, Statements: stmts, Pos: pos}, nil
}

// definiciones ::= ("define" "maquinas" lista ";")?
//                  ("define" "concentradores" lista ";")?
//                  ("define" ("coaxial" | "segmento") lista ";")?
//
// Each section peeks past "define" and backs up one token when the
// section keyword does not follow, since "define" alone does not decide
// which section comes next.
func (b *Builder) parseDefinitions() (*Definitions, error) {
	defs := &Definitions{Pos: b.currentPos()}

	if b.peek().Type == lexer.TokenDefine {
		b.advance()
		if b.peek().Type == lexer.TokenMaquinas {
			b.advance()
			maquinas, err := b.parseMaquinaList()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.TokenSemicolon); err != nil {
				return nil, err
			}
			defs.Maquinas = maquinas
		} else {
			b.pos--
		}
	}

	if b.peek().Type == lexer.TokenDefine {
		b.advance()
		if b.peek().Type == lexer.TokenConcentradores {
			b.advance()
			concentradores, err := b.parseConcentradorList()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.TokenSemicolon); err != nil {
				return nil, err
			}
			defs.Concentradores = concentradores
		} else {
			b.pos--
		}
	}

	if b.peek().Type == lexer.TokenDefine {
		b.advance()
		if t := b.peek().Type; t == lexer.TokenCoaxial || t == lexer.TokenSegmento {
			b.advance()
			coaxiales, err := b.parseCoaxialList()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.TokenSemicolon); err != nil {
				return nil, err
			}
			defs.Coaxiales = coaxiales
		} else {
			b.pos--
		}
	}

	return defs, nil
}

func (b *Builder) parseMaquinaList() ([]*MaquinaDecl, error) {
	var maquinas []*MaquinaDecl
	for {
		pos := b.currentPos()
		tok := b.peek()
		if tok.Type != lexer.TokenIdentifier {
			return nil, newSyntaxError("Se esperaba identificador de máquina", positionOf(tok))
		}
		b.advance()
		maquinas = append(maquinas, &MaquinaDecl{Name: tok.Lexeme, Pos: pos})

		if b.peek().Type != lexer.TokenComma {
			break
		}
		b.advance()
	}
	return maquinas, nil
}

// def_concentrador ::= IDENTIFICADOR "=" NUMERO ("." "1")?
func (b *Builder) parseConcentradorList() ([]*ConcentradorDecl, error) {
	var concentradores []*ConcentradorDecl
	for {
		pos := b.currentPos()

		nameTok := b.peek()
		if nameTok.Type != lexer.TokenIdentifier {
			return nil, newSyntaxError("Se esperaba nombre de concentrador", positionOf(nameTok))
		}
		b.advance()

		if _, err := b.expect(lexer.TokenEqual); err != nil {
			return nil, err
		}

		ports, err := b.parseNumberToken("Se esperaba número de puertos")
		if err != nil {
			return nil, err
		}

		uplink := false
		if b.peek().Type == lexer.TokenDot {
			b.advance()
			tok := b.peek()
			if tok.Type != lexer.TokenNumber || tok.Lexeme != "1" {
				return nil, newSyntaxError(
					"Después del punto debe ir 1 para indicar salida coaxial",
					positionOf(tok),
				)
			}
			b.advance()
			uplink = true
		}

		concentradores = append(concentradores, &ConcentradorDecl{
			Name:       nameTok.Lexeme,
			Ports:      ports,
			CoaxUplink: uplink,
			Pos:        pos,
		})

		if b.peek().Type != lexer.TokenComma {
			break
		}
		b.advance()
	}
	return concentradores, nil
}

// def_coaxial ::= IDENTIFICADOR "=" NUMERO
func (b *Builder) parseCoaxialList() ([]*CoaxialDecl, error) {
	var coaxiales []*CoaxialDecl
	for {
		pos := b.currentPos()

		nameTok := b.peek()
		if nameTok.Type != lexer.TokenIdentifier {
			return nil, newSyntaxError("Se esperaba nombre de coaxial", positionOf(nameTok))
		}
		b.advance()

		if _, err := b.expect(lexer.TokenEqual); err != nil {
			return nil, err
		}

		length, err := b.parseNumberToken("Se esperaba longitud del coaxial")
		if err != nil {
			return nil, err
		}

		coaxiales = append(coaxiales, &CoaxialDecl{
			Name:   nameTok.Lexeme,
			Length: length,
			Pos:    pos,
		})

		if b.peek().Type != lexer.TokenComma {
			break
		}
		b.advance()
	}
	return coaxiales, nil
}

func (b *Builder) parseStatements() ([]Statement, error) {
	var stmts []Statement
	for {
		t := b.peek().Type
		if t == lexer.TokenFin || t == lexer.TokenEOF {
			break
		}
		stmt, err := b.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (b *Builder) parseStatement() (Statement, error) {
	tok := b.peek()
	switch tok.Type {
	case lexer.TokenColoca:
		return b.parseColoca()
	case lexer.TokenColocaCoaxial:
		return b.parseColocaCoaxial()
	case lexer.TokenColocaCoaxialConcentrador:
		return b.parseColocaCoaxialConcentrador()
	case lexer.TokenUneMaquinaPuerto:
		return b.parseUneMaquinaPuerto()
	case lexer.TokenAsignaPuerto:
		return b.parseAsignaPuerto()
	case lexer.TokenMaquinaCoaxial:
		return b.parseMaquinaCoaxial()
	case lexer.TokenAsignaMaquinaCoaxial:
		return b.parseAsignaMaquinaCoaxial()
	case lexer.TokenEscribe:
		return b.parseEscribe()
	case lexer.TokenSi:
		return b.parseSi()
	case lexer.TokenIdentifier:
		pos := positionOf(tok)
		b.advance()
		if _, err := b.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return &LlamadaModuloStmt{Name: tok.Lexeme, Pos: pos}, nil
	default:
		return nil, newSyntaxError(
			fmt.Sprintf("Sentencia inválida: %v", tok.Type),
			positionOf(tok),
		)
	}
}

// parseName consumes an identifier argument inside a statement call.
func (b *Builder) parseName(errMsg string) (string, error) {
	tok := b.peek()
	if tok.Type != lexer.TokenIdentifier {
		return "", newSyntaxError(errMsg, positionOf(tok))
	}
	b.advance()
	return tok.Lexeme, nil
}

func (b *Builder) parseNumberToken(errMsg string) (int, error) {
	tok := b.peek()
	if tok.Type != lexer.TokenNumber {
		return 0, newSyntaxError(errMsg, positionOf(tok))
	}
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		return 0, newSyntaxError(
			fmt.Sprintf("Número inválido: %v", tok.Lexeme),
			positionOf(tok),
		)
	}
	b.advance()
	return n, nil
}

// coloca(objeto, x, y);
func (b *Builder) parseColoca() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	object, err := b.parseName("Se esperaba nombre de objeto en coloca()")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	x, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	y, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &ColocaStmt{Object: object, X: x, Y: y, Pos: pos}, nil
}

// colocaCoaxial(coaxial, x, y, direccion);
func (b *Builder) parseColocaCoaxial() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	coax, err := b.parseName("Se esperaba nombre de coaxial")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	x, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	y, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}

	var dir Direction
	switch b.peek().Type {
	case lexer.TokenArriba:
		dir = DirArriba
	case lexer.TokenAbajo:
		dir = DirAbajo
	case lexer.TokenIzquierda:
		dir = DirIzquierda
	case lexer.TokenDerecha:
		dir = DirDerecha
	default:
		return nil, newSyntaxError(
			"Se esperaba dirección (arriba, abajo, izquierda, derecha)",
			b.currentPos(),
		)
	}
	b.advance()

	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &ColocaCoaxialStmt{Coaxial: coax, X: x, Y: y, Dir: dir, Pos: pos}, nil
}

// colocaCoaxialConcentrador(coaxial, concentrador);
func (b *Builder) parseColocaCoaxialConcentrador() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	coax, err := b.parseName("Se esperaba nombre de coaxial")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	hub, err := b.parseName("Se esperaba nombre de concentrador")
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &ColocaCoaxialConcentradorStmt{Coaxial: coax, Concentrador: hub, Pos: pos}, nil
}

// uneMaquinaPuerto(maquina, concentrador, puerto);
func (b *Builder) parseUneMaquinaPuerto() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	maq, err := b.parseName("Se esperaba nombre de máquina")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	hub, err := b.parseName("Se esperaba nombre de concentrador")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	port, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &UneMaquinaPuertoStmt{Maquina: maq, Concentrador: hub, Port: port, Pos: pos}, nil
}

// asignaPuerto(maquina, concentrador);
func (b *Builder) parseAsignaPuerto() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	maq, err := b.parseName("Se esperaba nombre de máquina")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	hub, err := b.parseName("Se esperaba nombre de concentrador")
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &AsignaPuertoStmt{Maquina: maq, Concentrador: hub, Pos: pos}, nil
}

// maquinaCoaxial(maquina, coaxial, posicion);
func (b *Builder) parseMaquinaCoaxial() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	maq, err := b.parseName("Se esperaba nombre de máquina")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	coax, err := b.parseName("Se esperaba nombre de coaxial")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	at, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &MaquinaCoaxialStmt{Maquina: maq, Coaxial: coax, At: at, Pos: pos}, nil
}

// asignaMaquinaCoaxial(maquina, coaxial);
func (b *Builder) parseAsignaMaquinaCoaxial() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	maq, err := b.parseName("Se esperaba nombre de máquina")
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	coax, err := b.parseName("Se esperaba nombre de coaxial")
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &AsignaMaquinaCoaxialStmt{Maquina: maq, Coaxial: coax, Pos: pos}, nil
}

// escribe(expresion);
func (b *Builder) parseEscribe() (Statement, error) {
	pos := b.currentPos()
	b.advance()
	if _, err := b.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	value, err := b.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := b.closeCall(); err != nil {
		return nil, err
	}
	return &EscribeStmt{Value: value, Pos: pos}, nil
}

// si condicion inicio sentencias fin (sino inicio sentencias fin)?
// The parentheses around the condition belong to the expression itself.
func (b *Builder) parseSi() (Statement, error) {
	pos := b.currentPos()
	b.advance()

	cond, err := b.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := b.expect(lexer.TokenInicio); err != nil {
		return nil, err
	}
	then, err := b.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.TokenFin); err != nil {
		return nil, err
	}

	var otherwise []Statement
	if b.peek().Type == lexer.TokenSino {
		b.advance()
		if _, err := b.expect(lexer.TokenInicio); err != nil {
			return nil, err
		}
		otherwise, err = b.parseStatements()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.TokenFin); err != nil {
			return nil, err
		}
	}

	return &SiStmt{Cond: cond, Then: then, Else: otherwise, Pos: pos}, nil
}

// closeCall consumes the ");" that ends every statement call.
func (b *Builder) closeCall() error {
	if _, err := b.expect(lexer.TokenRParen); err != nil {
		return err
	}
	_, err := b.expect(lexer.TokenSemicolon)
	return err
}

// Expression precedence, loosest first: ||, &&, relational, !, primary.

func (b *Builder) parseExpr() (Expr, error) {
	return b.parseOr()
}

func (b *Builder) parseOr() (Expr, error) {
	left, err := b.parseAnd()
	if err != nil {
		return nil, err
	}
	for b.peek().Type == lexer.TokenOr {
		b.advance()
		right, err := b.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: OpOr, Right: right}
	}
	return left, nil
}

func (b *Builder) parseAnd() (Expr, error) {
	left, err := b.parseRelational()
	if err != nil {
		return nil, err
	}
	for b.peek().Type == lexer.TokenAnd {
		b.advance()
		right, err := b.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: OpAnd, Right: right}
	}
	return left, nil
}

func (b *Builder) parseRelational() (Expr, error) {
	left, err := b.parseNot()
	if err != nil {
		return nil, err
	}

	var op BinaryOp
	switch b.peek().Type {
	case lexer.TokenEqual:
		op = OpEq
	case lexer.TokenNotEqual:
		op = OpNe
	case lexer.TokenLess:
		op = OpLt
	case lexer.TokenGreater:
		op = OpGt
	case lexer.TokenLessEqual:
		op = OpLe
	case lexer.TokenGreaterEqual:
		op = OpGe
	default:
		return left, nil
	}
	b.advance()

	right, err := b.parseNot()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Op: op, Right: right}, nil
}

func (b *Builder) parseNot() (Expr, error) {
	if b.peek().Type == lexer.TokenNot {
		b.advance()
		operand, err := b.parseNot()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Operand: operand}, nil
	}
	return b.parsePrimary()
}

func (b *Builder) parsePrimary() (Expr, error) {
	tok := b.peek()
	switch tok.Type {
	case lexer.TokenLParen:
		b.advance()
		expr, err := b.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.TokenNumber:
		n, err := b.parseNumberToken("Se esperaba un número")
		if err != nil {
			return nil, err
		}
		return &NumberLit{Value: n}, nil

	case lexer.TokenString:
		b.advance()
		return &StringLit{Value: unquote(tok.Lexeme)}, nil

	case lexer.TokenIdentifier:
		b.advance()
		return b.parseAccess(tok.Lexeme)

	default:
		return nil, newSyntaxError(
			fmt.Sprintf("Se esperaba una expresión, se encontró %v", tok.Type),
			positionOf(tok),
		)
	}
}

// parseAccess handles the optional ".campo" and "[indice]" suffixes
// after an identifier. An index after a field access collapses into a
// composite object name, so uno.p[2] indexes the object "uno.p".
func (b *Builder) parseAccess(object string) (Expr, error) {
	switch b.peek().Type {
	case lexer.TokenDot:
		b.advance()

		field, ok := fieldName(b.peek())
		if !ok {
			return nil, newSyntaxError(
				"Se esperaba nombre de campo después de '.'",
				b.currentPos(),
			)
		}
		b.advance()

		if b.peek().Type == lexer.TokenLBracket {
			b.advance()
			index, err := b.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.TokenRBracket); err != nil {
				return nil, err
			}
			return &IndexAccess{
				Object: object + "." + field,
				Index:  index,
			}, nil
		}

		return &FieldAccess{Object: object, Field: field}, nil

	case lexer.TokenLBracket:
		b.advance()
		index, err := b.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.TokenRBracket); err != nil {
			return nil, err
		}
		return &IndexAccess{Object: object, Index: index}, nil

	default:
		return &Ident{Name: object}, nil
	}
}

// fieldName yields the field name a token denotes after '.'. Besides
// identifiers, the reserved words that name built-in object fields are
// accepted; their canonical lowercase spelling is used regardless of how
// the source wrote them.
func fieldName(tok *lexer.Token) (string, bool) {
	switch tok.Type {
	case lexer.TokenIdentifier:
		return tok.Lexeme, true
	case lexer.TokenCoaxial, lexer.TokenSegmento,
		lexer.TokenMaquinas, lexer.TokenConcentradores,
		lexer.TokenDerecha, lexer.TokenIzquierda,
		lexer.TokenArriba, lexer.TokenAbajo,
		lexer.TokenModulo:
		return strings.ToLower(tok.Lexeme), true
	}
	return "", false
}

func unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
