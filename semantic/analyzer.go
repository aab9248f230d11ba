// Package semantic checks a syntax tree against the declaration and
// Ethernet rules before any execution happens: names must be declared
// exactly once, hubs carry 4, 8 or 16 ports, coaxial cables measure 3
// to 500 meters, and machines tapped onto a cable keep 3 meters apart.
package semantic

import (
	"fmt"
	"strings"

	"github.com/rednet-lang/rednet/driver/parser"
)

type placement struct {
	maquina  string
	position int
}

// Analyzer walks a Program once and accumulates every violation it
// finds. The symbol table it fills stays valid afterwards and seeds the
// interpreter's environment.
type Analyzer struct {
	Table *SymbolTable

	errs []*Error
	// Taps established with literal positions, per cable. Only literal
	// positions can be checked statically; computed ones are left to
	// the interpreter.
	placements map[string][]placement
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Table:      NewSymbolTable(),
		placements: map[string][]placement{},
	}
}

// Analyze checks the whole program. It returns every violation found,
// or nil when the program is semantically valid.
func (a *Analyzer) Analyze(prog *parser.Program) []*Error {
	a.analyzeDefinitions(prog.Definitions)

	// Register all modules before analyzing any bodies so modules may
	// call each other regardless of declaration order.
	for _, m := range prog.Modules {
		if err := a.Table.DefineModulo(m.Name, m.Pos); err != nil {
			a.errs = append(a.errs, newError(err.Error(), m.Pos))
		}
	}
	for _, m := range prog.Modules {
		for _, stmt := range m.Statements {
			a.analyzeStatement(stmt)
		}
	}

	for _, stmt := range prog.Statements {
		a.analyzeStatement(stmt)
	}

	return a.errs
}

func (a *Analyzer) analyzeDefinitions(defs *parser.Definitions) {
	for _, m := range defs.Maquinas {
		if err := a.Table.DefineMaquina(m.Name, m.Pos); err != nil {
			a.errs = append(a.errs, newError(err.Error(), m.Pos))
		}
	}
	for _, c := range defs.Concentradores {
		if err := a.Table.DefineConcentrador(c.Name, c.Ports, c.CoaxUplink, c.Pos); err != nil {
			a.errs = append(a.errs, newError(err.Error(), c.Pos))
		}
	}
	for _, c := range defs.Coaxiales {
		if err := a.Table.DefineCoaxial(c.Name, c.Length, c.Pos); err != nil {
			a.errs = append(a.errs, newError(err.Error(), c.Pos))
		}
	}
}

func (a *Analyzer) analyzeStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.ColocaStmt:
		a.checkObjectExists(s.Object, s.Pos)
		a.checkExpr(s.X, TypeInt, s.Pos)
		a.checkExpr(s.Y, TypeInt, s.Pos)

	case *parser.ColocaCoaxialStmt:
		a.checkCoaxialExists(s.Coaxial, s.Pos)
		a.checkExpr(s.X, TypeInt, s.Pos)
		a.checkExpr(s.Y, TypeInt, s.Pos)

	case *parser.ColocaCoaxialConcentradorStmt:
		a.checkCoaxialExists(s.Coaxial, s.Pos)
		a.checkConcentradorExists(s.Concentrador, s.Pos)
		if hub, ok := a.Table.Concentrador(s.Concentrador); ok && !hub.CoaxUplink {
			a.errorf(s.Pos, "El concentrador '%v' no tiene salida para coaxial", s.Concentrador)
		}

	case *parser.UneMaquinaPuertoStmt:
		// The first argument may also be a hub (cascading) or a
		// coaxial hanging off a hub's uplink.
		a.checkConnectableExists(s.Maquina, s.Pos)
		a.checkConcentradorExists(s.Concentrador, s.Pos)
		a.checkExpr(s.Port, TypeInt, s.Pos)

	case *parser.AsignaPuertoStmt:
		a.checkConnectableExists(s.Maquina, s.Pos)
		a.checkConcentradorExists(s.Concentrador, s.Pos)

	case *parser.MaquinaCoaxialStmt:
		a.checkMaquinaExists(s.Maquina, s.Pos)
		a.checkCoaxialExists(s.Coaxial, s.Pos)
		posType := a.checkExpr(s.At, TypeInt, s.Pos)
		if posType == TypeInt {
			if lit, ok := s.At.(*parser.NumberLit); ok {
				a.checkPlacement(s.Maquina, s.Coaxial, lit.Value, s.Pos)
			}
		}

	case *parser.AsignaMaquinaCoaxialStmt:
		a.checkMaquinaExists(s.Maquina, s.Pos)
		a.checkCoaxialExists(s.Coaxial, s.Pos)

	case *parser.EscribeStmt:
		a.checkExpr(s.Value, TypeUnknown, s.Pos)

	case *parser.SiStmt:
		a.checkExpr(s.Cond, TypeBool, s.Pos)
		for _, st := range s.Then {
			a.analyzeStatement(st)
		}
		for _, st := range s.Else {
			a.analyzeStatement(st)
		}

	case *parser.LlamadaModuloStmt:
		if !a.Table.HasModulo(s.Name) {
			a.errorf(s.Pos, "Módulo '%v' no está definido", s.Name)
		}
	}
}

// checkExpr infers the expression's type and reports an error when it
// is incompatible with expected. TypeUnknown as the expectation accepts
// anything.
func (a *Analyzer) checkExpr(expr parser.Expr, expected Type, pos parser.Position) Type {
	actual := a.inferType(expr, pos)
	if expected != TypeUnknown && actual != TypeUnknown && !compatible(actual, expected) {
		a.errorf(pos, "Incompatibilidad de tipos: se esperaba '%v' pero se encontró '%v'", expected, actual)
	}
	return actual
}

func (a *Analyzer) inferType(expr parser.Expr, pos parser.Position) Type {
	switch e := expr.(type) {
	case *parser.NumberLit:
		return TypeInt

	case *parser.StringLit:
		return TypeString

	case *parser.Ident:
		if _, ok := a.Table.Maquina(e.Name); ok {
			return TypeMaquina
		}
		if _, ok := a.Table.Concentrador(e.Name); ok {
			return TypeConcentrador
		}
		if _, ok := a.Table.Coaxial(e.Name); ok {
			return TypeCoaxial
		}
		a.errorf(pos, "Identificador '%v' no está definido", e.Name)
		return TypeUnknown

	case *parser.FieldAccess:
		return a.inferFieldType(e, pos)

	case *parser.IndexAccess:
		a.checkExpr(e.Index, TypeInt, pos)
		return a.inferIndexType(e, pos)

	case *parser.BinaryExpr:
		if e.Op.IsRelational() {
			left := a.inferType(e.Left, pos)
			right := a.inferType(e.Right, pos)
			if left != TypeUnknown && right != TypeUnknown && !compatible(left, right) {
				a.errorf(pos, "No se pueden comparar tipos incompatibles: '%v' %v '%v'", left, e.Op, right)
			}
			return TypeBool
		}
		a.checkExpr(e.Left, TypeBool, pos)
		a.checkExpr(e.Right, TypeBool, pos)
		return TypeBool

	case *parser.NotExpr:
		a.checkExpr(e.Operand, TypeBool, pos)
		return TypeBool
	}
	return TypeUnknown
}

func (a *Analyzer) inferFieldType(e *parser.FieldAccess, pos parser.Position) Type {
	if _, ok := a.Table.Concentrador(e.Object); ok {
		switch e.Field {
		case "puertos", "disponibles", "presente", "coaxial":
			return TypeInt
		}
		a.errorf(pos, "Campo '%v' no existe en concentrador '%v'. Campos válidos: puertos, disponibles, presente, coaxial", e.Field, e.Object)
		return TypeUnknown
	}
	if _, ok := a.Table.Coaxial(e.Object); ok {
		switch e.Field {
		case "longitud", "completo", "num", "presente":
			return TypeInt
		}
		a.errorf(pos, "Campo '%v' no existe en coaxial '%v'. Campos válidos: longitud, completo, num, presente", e.Field, e.Object)
		return TypeUnknown
	}
	a.errorf(pos, "Objeto '%v' no está definido o no soporta acceso a campos", e.Object)
	return TypeUnknown
}

// inferIndexType validates the hub port array access hub.p[i]. The
// composite object name was produced by the parser for obj.campo[i].
func (a *Analyzer) inferIndexType(e *parser.IndexAccess, pos parser.Position) Type {
	if !strings.Contains(e.Object, ".") {
		return TypeUnknown
	}
	parts := strings.Split(e.Object, ".")
	if len(parts) != 2 || parts[1] != "p" {
		a.errorf(pos, "Acceso a arreglo inválido: '%v'", e.Object)
		return TypeUnknown
	}
	if _, ok := a.Table.Concentrador(parts[0]); !ok {
		a.errorf(pos, "Concentrador '%v' no está definido", parts[0])
		return TypeUnknown
	}
	return TypeBool
}

func (a *Analyzer) checkMaquinaExists(name string, pos parser.Position) {
	if _, ok := a.Table.Maquina(name); !ok {
		a.errorf(pos, "Máquina '%v' no está definida", name)
	}
}

func (a *Analyzer) checkConcentradorExists(name string, pos parser.Position) {
	if _, ok := a.Table.Concentrador(name); !ok {
		a.errorf(pos, "Concentrador '%v' no está definido", name)
	}
}

func (a *Analyzer) checkCoaxialExists(name string, pos parser.Position) {
	if _, ok := a.Table.Coaxial(name); !ok {
		a.errorf(pos, "Coaxial '%v' no está definido", name)
	}
}

func (a *Analyzer) checkObjectExists(name string, pos parser.Position) {
	_, isMaq := a.Table.Maquina(name)
	_, isHub := a.Table.Concentrador(name)
	if !isMaq && !isHub {
		a.errorf(pos, "Objeto '%v' no está definido (no es máquina ni concentrador)", name)
	}
}

func (a *Analyzer) checkConnectableExists(name string, pos parser.Position) {
	_, isMaq := a.Table.Maquina(name)
	_, isHub := a.Table.Concentrador(name)
	_, isCoax := a.Table.Coaxial(name)
	if !isMaq && !isHub && !isCoax {
		a.errorf(pos, "'%v' no está definido (debe ser una máquina, concentrador o coaxial)", name)
	}
}

// checkPlacement statically validates a tap at a literal position: it
// must lie on the cable and keep 3 meters from every previously checked
// literal tap on the same cable.
func (a *Analyzer) checkPlacement(maquina, coaxial string, position int, pos parser.Position) {
	coax, ok := a.Table.Coaxial(coaxial)
	if !ok {
		return
	}

	if position < 0 || position > coax.Length {
		a.errorf(pos, "Posición inválida: %vm. La posición debe estar entre 0 y %v (longitud del cable '%v')",
			position, coax.Length, coaxial)
		return
	}

	for _, p := range a.placements[coaxial] {
		if d := abs(position - p.position); d < 3 {
			a.errorf(pos, "Violación de regla Ethernet: La máquina '%v' está demasiado cerca (%vm) de la máquina '%v' en posición %vm. La separación mínima es 3m",
				maquina, d, p.maquina, p.position)
			return
		}
	}

	a.placements[coaxial] = append(a.placements[coaxial], placement{maquina: maquina, position: position})
}

func (a *Analyzer) errorf(pos parser.Position, format string, args ...interface{}) {
	a.errs = append(a.errs, newError(fmt.Sprintf(format, args...), pos))
}
