package parser

import (
	"github.com/rednet-lang/rednet/driver/lexer"
)

// Position locates a syntax node in the source text. Line and Column are
// 1-based; Length is measured in code points.
type Position struct {
	Line   int
	Column int
	Length int
}

func positionOf(tok *lexer.Token) Position {
	return Position{
		Line:   tok.Line,
		Column: tok.Column,
		Length: tok.Length,
	}
}

// Program is the root of the syntax tree.
type Program struct {
	Name        string
	Definitions *Definitions
	Modules     []*Modulo
	Statements  []Statement
	Pos         Position
}

// Definitions holds the three declaration sections that may precede the
// main block. Any of them may be empty.
type Definitions struct {
	Maquinas       []*MaquinaDecl
	Concentradores []*ConcentradorDecl
	Coaxiales      []*CoaxialDecl
	Pos            Position
}

type MaquinaDecl struct {
	Name string
	Pos  Position
}

type ConcentradorDecl struct {
	Name  string
	Ports int
	// CoaxUplink is true when the declaration carries the ".1" suffix,
	// which marks the hub's coaxial output.
	CoaxUplink bool
	Pos        Position
}

type CoaxialDecl struct {
	Name   string
	Length int
	Pos    Position
}

// Modulo is a named statement block callable from other statement lists.
type Modulo struct {
	Name       string
	Statements []Statement
	Pos        Position
}

// Statement is implemented by every statement node.
type Statement interface {
	Position() Position
	stmtNode()
}

// ColocaStmt places a machine or hub at coordinates: coloca(obj, x, y);
type ColocaStmt struct {
	Object string
	X      Expr
	Y      Expr
	Pos    Position
}

// ColocaCoaxialStmt lays a coaxial run: colocaCoaxial(coax, x, y, dir);
type ColocaCoaxialStmt struct {
	Coaxial string
	X       Expr
	Y       Expr
	Dir     Direction
	Pos     Position
}

// ColocaCoaxialConcentradorStmt attaches a coaxial to a hub's uplink:
// colocaCoaxialConcentrador(coax, hub);
type ColocaCoaxialConcentradorStmt struct {
	Coaxial      string
	Concentrador string
	Pos          Position
}

// UneMaquinaPuertoStmt wires a machine to a specific hub port:
// uneMaquinaPuerto(maq, hub, puerto);
type UneMaquinaPuertoStmt struct {
	Maquina      string
	Concentrador string
	Port         Expr
	Pos          Position
}

// AsignaPuertoStmt wires a machine to the first free hub port:
// asignaPuerto(maq, hub);
type AsignaPuertoStmt struct {
	Maquina      string
	Concentrador string
	Pos          Position
}

// MaquinaCoaxialStmt taps a machine onto a coaxial at a position:
// maquinaCoaxial(maq, coax, pos);
type MaquinaCoaxialStmt struct {
	Maquina string
	Coaxial string
	At      Expr
	Pos     Position
}

// AsignaMaquinaCoaxialStmt taps a machine onto a coaxial at the next
// automatic position: asignaMaquinaCoaxial(maq, coax);
type AsignaMaquinaCoaxialStmt struct {
	Maquina string
	Coaxial string
	Pos     Position
}

// EscribeStmt prints an expression: escribe(expr);
type EscribeStmt struct {
	Value Expr
	Pos   Position
}

// SiStmt is the conditional: si cond inicio ... fin [sino inicio ... fin]
type SiStmt struct {
	Cond Expr
	Then []Statement
	Else []Statement
	Pos  Position
}

// LlamadaModuloStmt invokes a module by name: nombre;
type LlamadaModuloStmt struct {
	Name string
	Pos  Position
}

func (s *ColocaStmt) Position() Position                    { return s.Pos }
func (s *ColocaCoaxialStmt) Position() Position             { return s.Pos }
func (s *ColocaCoaxialConcentradorStmt) Position() Position { return s.Pos }
func (s *UneMaquinaPuertoStmt) Position() Position          { return s.Pos }
func (s *AsignaPuertoStmt) Position() Position              { return s.Pos }
func (s *MaquinaCoaxialStmt) Position() Position            { return s.Pos }
func (s *AsignaMaquinaCoaxialStmt) Position() Position      { return s.Pos }
func (s *EscribeStmt) Position() Position                   { return s.Pos }
func (s *SiStmt) Position() Position                        { return s.Pos }
func (s *LlamadaModuloStmt) Position() Position             { return s.Pos }

func (*ColocaStmt) stmtNode()                    {}
func (*ColocaCoaxialStmt) stmtNode()             {}
func (*ColocaCoaxialConcentradorStmt) stmtNode() {}
func (*UneMaquinaPuertoStmt) stmtNode()          {}
func (*AsignaPuertoStmt) stmtNode()              {}
func (*MaquinaCoaxialStmt) stmtNode()            {}
func (*AsignaMaquinaCoaxialStmt) stmtNode()      {}
func (*EscribeStmt) stmtNode()                   {}
func (*SiStmt) stmtNode()                        {}
func (*LlamadaModuloStmt) stmtNode()             {}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

type NumberLit struct {
	Value int
}

type StringLit struct {
	Value string
}

type Ident struct {
	Name string
}

// FieldAccess is obj.campo.
type FieldAccess struct {
	Object string
	Field  string
}

// IndexAccess is obj[indice]. Object may be a composite "obj.campo"
// name when the index follows a field access, as in uno.p[2].
type IndexAccess struct {
	Object string
	Index  Expr
}

// BinaryExpr covers both relational and logical operators.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

type NotExpr struct {
	Operand Expr
}

func (*NumberLit) exprNode()   {}
func (*StringLit) exprNode()   {}
func (*Ident) exprNode()       {}
func (*FieldAccess) exprNode() {}
func (*IndexAccess) exprNode() {}
func (*BinaryExpr) exprNode()  {}
func (*NotExpr) exprNode()     {}

type BinaryOp string

const (
	OpEq BinaryOp = "="
	OpNe BinaryOp = "<>"
	OpLt BinaryOp = "<"
	OpGt BinaryOp = ">"
	OpLe BinaryOp = "<="
	OpGe BinaryOp = ">="

	OpAnd BinaryOp = "&&"
	OpOr  BinaryOp = "||"
)

// IsRelational reports whether the operator compares values rather than
// combining booleans.
func (op BinaryOp) IsRelational() bool {
	return op != OpAnd && op != OpOr
}

type Direction string

const (
	DirArriba    Direction = "arriba"
	DirAbajo     Direction = "abajo"
	DirIzquierda Direction = "izquierda"
	DirDerecha   Direction = "derecha"
)
