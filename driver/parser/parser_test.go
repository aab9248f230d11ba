package parser_test

import (
	"testing"

	"github.com/rednet-lang/rednet/driver/parser"
)

func parseProgram(t *testing.T, src string) *parser.Program {
	t.Helper()
	p, err := parser.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse(scanTokens(t, src))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestParser_Parse_Minimal(t *testing.T) {
	prog := parseProgram(t, "programa test;\ninicio\nfin.")
	if prog.Name != "test" {
		t.Errorf("program name is %v, want test", prog.Name)
	}
	if len(prog.Statements) != 0 {
		t.Errorf("the main block carries %v statements, want none", len(prog.Statements))
	}
	if len(prog.Modules) != 0 {
		t.Errorf("the program carries %v modules, want none", len(prog.Modules))
	}
}

func TestParser_Parse_Definitions(t *testing.T) {
	prog := parseProgram(t, `programa red1;
define maquinas uno, dos;
define concentradores c1 = 8, c2 = 4.1;
define segmento troncal = 250;
inicio
fin.`)

	defs := prog.Definitions
	if defs == nil {
		t.Fatal("the program should carry definitions")
	}

	if len(defs.Maquinas) != 2 {
		t.Fatalf("got %v machines, want 2", len(defs.Maquinas))
	}
	if defs.Maquinas[0].Name != "uno" || defs.Maquinas[1].Name != "dos" {
		t.Errorf("machine names are %v and %v, want uno and dos",
			defs.Maquinas[0].Name, defs.Maquinas[1].Name)
	}

	if len(defs.Concentradores) != 2 {
		t.Fatalf("got %v hubs, want 2", len(defs.Concentradores))
	}
	c1, c2 := defs.Concentradores[0], defs.Concentradores[1]
	if c1.Name != "c1" || c1.Ports != 8 || c1.CoaxUplink {
		t.Errorf("c1 = {%v %v %v}, want {c1 8 false}", c1.Name, c1.Ports, c1.CoaxUplink)
	}
	if c2.Name != "c2" || c2.Ports != 4 || !c2.CoaxUplink {
		t.Errorf("c2 = {%v %v %v}, want {c2 4 true}", c2.Name, c2.Ports, c2.CoaxUplink)
	}

	if len(defs.Coaxiales) != 1 {
		t.Fatalf("got %v cables, want 1", len(defs.Coaxiales))
	}
	if cab := defs.Coaxiales[0]; cab.Name != "troncal" || cab.Length != 250 {
		t.Errorf("cable = {%v %v}, want {troncal 250}", cab.Name, cab.Length)
	}
}

func TestParser_Parse_Statements(t *testing.T) {
	prog := parseProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
define coaxial cable1 = 100;
modulo arranque;
inicio
  coloca(uno, 10, 20);
fin
inicio
  arranque;
  colocaCoaxial(cable1, 0, 0, derecha);
  colocaCoaxialConcentrador(cable1, c1);
  uneMaquinaPuerto(uno, c1, 2);
  escribe("listo");
fin.`)

	if len(prog.Modules) != 1 {
		t.Fatalf("got %v modules, want 1", len(prog.Modules))
	}
	m := prog.Modules[0]
	if m.Name != "arranque" || len(m.Statements) != 1 {
		t.Fatalf("module = {%v, %v statements}, want {arranque, 1 statement}", m.Name, len(m.Statements))
	}
	coloca, ok := m.Statements[0].(*parser.ColocaStmt)
	if !ok {
		t.Fatalf("the module statement is %T, want *ColocaStmt", m.Statements[0])
	}
	if coloca.Object != "uno" {
		t.Errorf("coloca places %v, want uno", coloca.Object)
	}
	if x, ok := coloca.X.(*parser.NumberLit); !ok || x.Value != 10 {
		t.Errorf("coloca x = %v, want the literal 10", coloca.X)
	}

	if len(prog.Statements) != 5 {
		t.Fatalf("the main block carries %v statements, want 5", len(prog.Statements))
	}

	call, ok := prog.Statements[0].(*parser.LlamadaModuloStmt)
	if !ok || call.Name != "arranque" {
		t.Errorf("statement 0 = %v (%T), want a call to arranque", prog.Statements[0], prog.Statements[0])
	}

	cc, ok := prog.Statements[1].(*parser.ColocaCoaxialStmt)
	if !ok {
		t.Fatalf("statement 1 is %T, want *ColocaCoaxialStmt", prog.Statements[1])
	}
	if cc.Coaxial != "cable1" || cc.Dir != parser.DirDerecha {
		t.Errorf("colocaCoaxial = {%v %v}, want {cable1 derecha}", cc.Coaxial, cc.Dir)
	}

	hub, ok := prog.Statements[2].(*parser.ColocaCoaxialConcentradorStmt)
	if !ok || hub.Coaxial != "cable1" || hub.Concentrador != "c1" {
		t.Errorf("statement 2 = %v (%T), want cable1 on c1", prog.Statements[2], prog.Statements[2])
	}

	une, ok := prog.Statements[3].(*parser.UneMaquinaPuertoStmt)
	if !ok {
		t.Fatalf("statement 3 is %T, want *UneMaquinaPuertoStmt", prog.Statements[3])
	}
	if une.Maquina != "uno" || une.Concentrador != "c1" {
		t.Errorf("uneMaquinaPuerto = {%v %v}, want {uno c1}", une.Maquina, une.Concentrador)
	}
	if port, ok := une.Port.(*parser.NumberLit); !ok || port.Value != 2 {
		t.Errorf("uneMaquinaPuerto port = %v, want the literal 2", une.Port)
	}

	esc, ok := prog.Statements[4].(*parser.EscribeStmt)
	if !ok {
		t.Fatalf("statement 4 is %T, want *EscribeStmt", prog.Statements[4])
	}
	if s, ok := esc.Value.(*parser.StringLit); !ok || s.Value != "listo" {
		t.Errorf("escribe argument = %v, want the string listo", esc.Value)
	}
}

func TestParser_Parse_ExpressionPrecedence(t *testing.T) {
	prog := parseProgram(t, `programa red1;
inicio
  si (1 = 2 || 3 = 4 && 5 = 6) inicio
  fin
fin.`)

	si, ok := prog.Statements[0].(*parser.SiStmt)
	if !ok {
		t.Fatalf("the statement is %T, want *SiStmt", prog.Statements[0])
	}

	// && binds tighter than ||: (1 = 2) || ((3 = 4) && (5 = 6))
	or, ok := si.Cond.(*parser.BinaryExpr)
	if !ok || or.Op != parser.OpOr {
		t.Fatalf("the condition root is %v, want ||", si.Cond)
	}
	left, ok := or.Left.(*parser.BinaryExpr)
	if !ok || left.Op != parser.OpEq {
		t.Errorf("the left operand is %v, want 1 = 2", or.Left)
	}
	and, ok := or.Right.(*parser.BinaryExpr)
	if !ok || and.Op != parser.OpAnd {
		t.Fatalf("the right operand is %v, want an && expression", or.Right)
	}
	if rel, ok := and.Right.(*parser.BinaryExpr); !ok || rel.Op != parser.OpEq {
		t.Errorf("the && right operand is %v, want 5 = 6", and.Right)
	}
}

func TestParser_Parse_Accesses(t *testing.T) {
	prog := parseProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 8;
inicio
  escribe(c1.puertos);
  escribe(c1.p[2]);
  si (!uno.presente) inicio
    escribe(uno.coaxial);
  fin
fin.`)

	esc := prog.Statements[0].(*parser.EscribeStmt)
	fa, ok := esc.Value.(*parser.FieldAccess)
	if !ok || fa.Object != "c1" || fa.Field != "puertos" {
		t.Errorf("statement 0 argument = %v, want c1.puertos", esc.Value)
	}

	esc = prog.Statements[1].(*parser.EscribeStmt)
	ia, ok := esc.Value.(*parser.IndexAccess)
	if !ok {
		t.Fatalf("statement 1 argument is %T, want *IndexAccess", esc.Value)
	}
	if ia.Object != "c1.p" {
		t.Errorf("the index access object is %v, want the composite c1.p", ia.Object)
	}
	if idx, ok := ia.Index.(*parser.NumberLit); !ok || idx.Value != 2 {
		t.Errorf("the index is %v, want the literal 2", ia.Index)
	}

	si := prog.Statements[2].(*parser.SiStmt)
	not, ok := si.Cond.(*parser.NotExpr)
	if !ok {
		t.Fatalf("the condition is %T, want *NotExpr", si.Cond)
	}
	if fa, ok := not.Operand.(*parser.FieldAccess); !ok || fa.Field != "presente" {
		t.Errorf("the negated operand is %v, want uno.presente", not.Operand)
	}

	// The reserved word coaxial doubles as a field name.
	esc = si.Then[0].(*parser.EscribeStmt)
	if fa, ok := esc.Value.(*parser.FieldAccess); !ok || fa.Object != "uno" || fa.Field != "coaxial" {
		t.Errorf("the then-branch argument = %v, want uno.coaxial", esc.Value)
	}
}

func TestParser_Parse_SiSino(t *testing.T) {
	prog := parseProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
inicio
  si (c1.disponibles > 0) inicio
    asignaPuerto(uno, c1);
  fin sino inicio
    escribe("sin puertos");
    escribe(c1.puertos);
  fin
fin.`)

	si, ok := prog.Statements[0].(*parser.SiStmt)
	if !ok {
		t.Fatalf("the statement is %T, want *SiStmt", prog.Statements[0])
	}
	if len(si.Then) != 1 {
		t.Errorf("the then branch carries %v statements, want 1", len(si.Then))
	}
	if len(si.Else) != 2 {
		t.Errorf("the sino branch carries %v statements, want 2", len(si.Else))
	}
	if _, ok := si.Then[0].(*parser.AsignaPuertoStmt); !ok {
		t.Errorf("the then statement is %T, want *AsignaPuertoStmt", si.Then[0])
	}
}

func TestParser_Parse_Positions(t *testing.T) {
	prog := parseProgram(t, "programa test;\ninicio\n  escribe(1);\nfin.")
	esc := prog.Statements[0].(*parser.EscribeStmt)
	pos := esc.Position()
	if pos.Line != 3 || pos.Column != 3 {
		t.Errorf("the statement position is %v:%v, want 3:3", pos.Line, pos.Column)
	}
}
