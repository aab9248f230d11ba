// Package interpreter executes an analyzed program by walking its
// syntax tree. It keeps the network state in an Environment and stops
// at the first runtime failure.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/rednet-lang/rednet/driver/parser"
	"github.com/rednet-lang/rednet/semantic"
)

type Interpreter struct {
	Env *Environment
}

func NewInterpreter(table *semantic.SymbolTable) *Interpreter {
	return &Interpreter{Env: NewEnvironment(table)}
}

// Run registers the program's modules and executes the main statement
// list. On failure it returns an *Error locating the failing statement.
func (in *Interpreter) Run(prog *parser.Program) error {
	for _, m := range prog.Modules {
		in.Env.Modulos[m.Name] = m.Statements
	}
	for _, stmt := range prog.Statements {
		if err := in.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.ColocaStmt:
		return in.execColoca(s)
	case *parser.ColocaCoaxialStmt:
		return in.execColocaCoaxial(s)
	case *parser.ColocaCoaxialConcentradorStmt:
		return in.execColocaCoaxialConcentrador(s)
	case *parser.UneMaquinaPuertoStmt:
		return in.execUneMaquinaPuerto(s)
	case *parser.AsignaPuertoStmt:
		return in.execAsignaPuerto(s)
	case *parser.MaquinaCoaxialStmt:
		return in.execMaquinaCoaxial(s)
	case *parser.AsignaMaquinaCoaxialStmt:
		return in.execAsignaMaquinaCoaxial(s)
	case *parser.EscribeStmt:
		return in.execEscribe(s)
	case *parser.SiStmt:
		return in.execSi(s)
	case *parser.LlamadaModuloStmt:
		return in.execLlamadaModulo(s)
	}
	return nil
}

func (in *Interpreter) execColoca(s *parser.ColocaStmt) error {
	x, err := in.evalInt(s.X, s.Pos, "La coordenada X debe ser un entero")
	if err != nil {
		return err
	}
	y, err := in.evalInt(s.Y, s.Pos, "La coordenada Y debe ser un entero")
	if err != nil {
		return err
	}

	// A name may denote a machine or a hub; machines win the lookup.
	if maq, ok := in.Env.Maquinas[s.Object]; ok {
		maq.X, maq.Y = x, y
		maq.Placed = true
		return nil
	}
	if hub, ok := in.Env.Concentradores[s.Object]; ok {
		hub.X, hub.Y = x, y
		hub.Placed = true
		return nil
	}
	return newError(s.Pos, "Objeto '%v' no encontrado", s.Object)
}

func (in *Interpreter) execColocaCoaxial(s *parser.ColocaCoaxialStmt) error {
	x, err := in.evalInt(s.X, s.Pos, "La coordenada X debe ser un entero")
	if err != nil {
		return err
	}
	y, err := in.evalInt(s.Y, s.Pos, "La coordenada Y debe ser un entero")
	if err != nil {
		return err
	}

	coax, ok := in.Env.Coaxiales[s.Coaxial]
	if !ok {
		return newError(s.Pos, "Coaxial '%v' no encontrado", s.Coaxial)
	}
	coax.X, coax.Y = x, y
	coax.Dir = string(s.Dir)
	coax.Placed = true
	return nil
}

func (in *Interpreter) execColocaCoaxialConcentrador(s *parser.ColocaCoaxialConcentradorStmt) error {
	hub, ok := in.Env.Concentradores[s.Concentrador]
	if !ok {
		return newError(s.Pos, "Concentrador '%v' no encontrado", s.Concentrador)
	}
	if !hub.CoaxUplink {
		return newError(s.Pos, "El concentrador '%v' no tiene salida para coaxial", s.Concentrador)
	}
	if _, ok := in.Env.Coaxiales[s.Coaxial]; !ok {
		return newError(s.Pos, "Coaxial '%v' no encontrado", s.Coaxial)
	}
	hub.Coaxial = s.Coaxial
	return nil
}

func (in *Interpreter) execUneMaquinaPuerto(s *parser.UneMaquinaPuertoStmt) error {
	port, err := in.evalInt(s.Port, s.Pos, "El puerto debe ser un entero")
	if err != nil {
		return err
	}

	maq, ok := in.Env.Maquinas[s.Maquina]
	if !ok {
		return newError(s.Pos, "Máquina '%v' no encontrada", s.Maquina)
	}
	hub, ok := in.Env.Concentradores[s.Concentrador]
	if !ok {
		return newError(s.Pos, "Concentrador '%v' no encontrado", s.Concentrador)
	}

	if !hub.AssignPort(port) {
		return newError(s.Pos, "No se pudo asignar el puerto %v del concentrador '%v'", port, s.Concentrador)
	}
	maq.Connected = &Connection{Concentrador: s.Concentrador, Port: port}
	return nil
}

func (in *Interpreter) execAsignaPuerto(s *parser.AsignaPuertoStmt) error {
	maq, ok := in.Env.Maquinas[s.Maquina]
	if !ok {
		return newError(s.Pos, "Máquina '%v' no encontrada", s.Maquina)
	}
	hub, ok := in.Env.Concentradores[s.Concentrador]
	if !ok {
		return newError(s.Pos, "Concentrador '%v' no encontrado", s.Concentrador)
	}

	port := hub.FirstFreePort()
	if port == 0 {
		return newError(s.Pos, "No hay puertos disponibles en el concentrador '%v'", s.Concentrador)
	}
	hub.AssignPort(port)
	maq.Connected = &Connection{Concentrador: s.Concentrador, Port: port}
	return nil
}

func (in *Interpreter) execMaquinaCoaxial(s *parser.MaquinaCoaxialStmt) error {
	position, err := in.evalInt(s.At, s.Pos, "La posición debe ser un entero")
	if err != nil {
		return err
	}

	maq, ok := in.Env.Maquinas[s.Maquina]
	if !ok {
		return newError(s.Pos, "Máquina '%v' no encontrada", s.Maquina)
	}
	coax, ok := in.Env.Coaxiales[s.Coaxial]
	if !ok {
		return newError(s.Pos, "Coaxial '%v' no encontrado", s.Coaxial)
	}

	coax.AddMaquina(s.Maquina, position)
	maq.Connected = &Connection{Coaxial: s.Coaxial, Position: position}
	return nil
}

func (in *Interpreter) execAsignaMaquinaCoaxial(s *parser.AsignaMaquinaCoaxialStmt) error {
	maq, ok := in.Env.Maquinas[s.Maquina]
	if !ok {
		return newError(s.Pos, "Máquina '%v' no encontrada", s.Maquina)
	}
	coax, ok := in.Env.Coaxiales[s.Coaxial]
	if !ok {
		return newError(s.Pos, "Coaxial '%v' no encontrado", s.Coaxial)
	}

	// Walk the cable in 3-meter steps until a position clears every
	// existing tap by at least 3 meters.
	position, ok := nextFreePosition(coax)
	if !ok {
		return newError(s.Pos, "No hay posiciones disponibles en el coaxial '%v'", s.Coaxial)
	}
	coax.AddMaquina(s.Maquina, position)
	maq.Connected = &Connection{Coaxial: s.Coaxial, Position: position}
	return nil
}

func nextFreePosition(coax *Coaxial) (int, bool) {
	for position := 0; position <= coax.Length; position += 3 {
		clear := true
		for _, t := range coax.Taps {
			if abs(position-t.position) < 3 {
				clear = false
				break
			}
		}
		if clear {
			return position, true
		}
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (in *Interpreter) execEscribe(s *parser.EscribeStmt) error {
	v, err := in.evalExpr(s.Value)
	if err != nil {
		return newError(s.Pos, "%v", err)
	}
	in.Env.Write(v.String())
	return nil
}

func (in *Interpreter) execSi(s *parser.SiStmt) error {
	v, err := in.evalExpr(s.Cond)
	if err != nil {
		return newError(s.Pos, "%v", err)
	}
	cond, ok := v.AsBool()
	if !ok {
		return newError(s.Pos, "La condición debe ser booleana")
	}

	body := s.Then
	if !cond {
		body = s.Else
	}
	for _, stmt := range body {
		if err := in.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execLlamadaModulo(s *parser.LlamadaModuloStmt) error {
	stmts, ok := in.Env.Modulos[s.Name]
	if !ok {
		return newError(s.Pos, "Módulo '%v' no encontrado", s.Name)
	}
	for _, stmt := range stmts {
		if err := in.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evalInt(expr parser.Expr, pos parser.Position, msg string) (int, error) {
	v, err := in.evalExpr(expr)
	if err != nil {
		return 0, newError(pos, "%v", err)
	}
	n, ok := v.AsInt()
	if !ok {
		return 0, newError(pos, "%v", msg)
	}
	return n, nil
}

// evalExpr evaluates an expression against the current network state.
// Errors here carry no position; the caller attaches the statement's.
func (in *Interpreter) evalExpr(expr parser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parser.NumberLit:
		return IntValue(e.Value), nil

	case *parser.StringLit:
		return StringValue(e.Value), nil

	case *parser.Ident:
		return VoidValue(), fmt.Errorf("No se puede evaluar el identificador '%v' como valor", e.Name)

	case *parser.FieldAccess:
		return in.evalFieldAccess(e.Object, e.Field)

	case *parser.IndexAccess:
		return in.evalIndexAccess(e.Object, e.Index)

	case *parser.BinaryExpr:
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return VoidValue(), err
		}
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return VoidValue(), err
		}
		if e.Op.IsRelational() {
			return evalRelational(left, e.Op, right)
		}
		return evalLogical(left, e.Op, right)

	case *parser.NotExpr:
		v, err := in.evalExpr(e.Operand)
		if err != nil {
			return VoidValue(), err
		}
		b, ok := v.AsBool()
		if !ok {
			return VoidValue(), fmt.Errorf("No se puede aplicar NOT a %v", v)
		}
		return BoolValue(!b), nil
	}
	return VoidValue(), fmt.Errorf("expresión no soportada")
}

func (in *Interpreter) evalFieldAccess(object, field string) (Value, error) {
	if hub, ok := in.Env.Concentradores[object]; ok {
		switch field {
		case "puertos":
			return IntValue(hub.Ports), nil
		case "disponibles":
			return IntValue(hub.Free), nil
		case "presente":
			return BoolValue(hub.Placed), nil
		case "coaxial":
			if hub.CoaxUplink {
				return IntValue(1), nil
			}
			return IntValue(0), nil
		}
		return VoidValue(), fmt.Errorf("Campo '%v' no válido para concentrador", field)
	}

	if coax, ok := in.Env.Coaxiales[object]; ok {
		switch field {
		case "longitud":
			return IntValue(coax.Length), nil
		case "completo":
			return BoolValue(coax.Full), nil
		case "num":
			return IntValue(coax.NumMaquinas()), nil
		case "presente":
			return BoolValue(coax.Placed), nil
		}
		return VoidValue(), fmt.Errorf("Campo '%v' no válido para coaxial", field)
	}

	return VoidValue(), fmt.Errorf("Objeto '%v' no encontrado", object)
}

// evalIndexAccess resolves hub.p[i]: whether the hub's 1-based port i
// is occupied.
func (in *Interpreter) evalIndexAccess(object string, index parser.Expr) (Value, error) {
	v, err := in.evalExpr(index)
	if err != nil {
		return VoidValue(), err
	}
	idx, ok := v.AsInt()
	if !ok {
		return VoidValue(), fmt.Errorf("El índice debe ser entero")
	}

	if strings.Contains(object, ".") {
		parts := strings.Split(object, ".")
		if len(parts) == 2 && parts[1] == "p" {
			if hub, ok := in.Env.Concentradores[parts[0]]; ok {
				if idx < 1 || idx > hub.Ports {
					return VoidValue(), fmt.Errorf("Índice %v fuera de rango para concentrador '%v'", idx, parts[0])
				}
				return BoolValue(hub.Occupied[idx-1]), nil
			}
		}
	}
	return VoidValue(), fmt.Errorf("Acceso a arreglo inválido: '%v'", object)
}

func evalRelational(left Value, op parser.BinaryOp, right Value) (Value, error) {
	if a, okA := left.AsInt(); okA {
		if b, okB := right.AsInt(); okB {
			switch op {
			case parser.OpEq:
				return BoolValue(a == b), nil
			case parser.OpNe:
				return BoolValue(a != b), nil
			case parser.OpLt:
				return BoolValue(a < b), nil
			case parser.OpGt:
				return BoolValue(a > b), nil
			case parser.OpLe:
				return BoolValue(a <= b), nil
			case parser.OpGe:
				return BoolValue(a >= b), nil
			}
		}
	}

	switch op {
	case parser.OpEq:
		return BoolValue(left.String() == right.String()), nil
	case parser.OpNe:
		return BoolValue(left.String() != right.String()), nil
	}
	return VoidValue(), fmt.Errorf("No se puede comparar %v con %v", left, right)
}

func evalLogical(left Value, op parser.BinaryOp, right Value) (Value, error) {
	a, ok := left.AsBool()
	if !ok {
		return VoidValue(), fmt.Errorf("Operando izquierdo no es booleano")
	}
	b, ok := right.AsBool()
	if !ok {
		return VoidValue(), fmt.Errorf("Operando derecho no es booleano")
	}
	if op == parser.OpAnd {
		return BoolValue(a && b), nil
	}
	return BoolValue(a || b), nil
}
