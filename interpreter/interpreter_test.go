package interpreter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rednet-lang/rednet/driver/lexer"
	"github.com/rednet-lang/rednet/driver/parser"
	"github.com/rednet-lang/rednet/interpreter"
	"github.com/rednet-lang/rednet/semantic"
	"github.com/rednet-lang/rednet/spec"
)

// runProgram drives the whole pipeline. The source must be lexically,
// syntactically and semantically valid; only the execution may fail.
func runProgram(t *testing.T, src string) (*interpreter.Interpreter, error) {
	t.Helper()
	aut, err := spec.DefaultAutomaton()
	if err != nil {
		t.Fatal(err)
	}
	s, err := lexer.NewScanner(aut, strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := s.ScanAll()
	if err != nil {
		t.Fatal(err)
	}
	p, err := parser.NewParser()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	a := semantic.NewAnalyzer()
	if errs := a.Analyze(prog); len(errs) != 0 {
		t.Fatalf("the program should be semantically valid: %v", errs)
	}
	in := interpreter.NewInterpreter(a.Table)
	return in, in.Run(prog)
}

func TestInterpreter_Escribe(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 8;
define coaxial cable1 = 100;
inicio
  escribe("hola");
  escribe(42);
  escribe(c1.puertos);
  escribe(cable1.longitud);
  escribe(cable1.completo);
fin.`)
	if err != nil {
		t.Fatal(err)
	}
	want := "hola\n42\n8\n100\nfalse"
	if got := in.Env.OutputText(); got != want {
		t.Errorf("output = %#v, want %#v", got, want)
	}
}

func TestInterpreter_Placement(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
define coaxial cable1 = 100;
inicio
  coloca(uno, 10, 20);
  coloca(c1, 30, 40);
  colocaCoaxial(cable1, 0, 0, derecha);
  escribe(uno.presente);
  escribe(cable1.presente);
fin.`)
	if err != nil {
		t.Fatal(err)
	}

	maq := in.Env.Maquinas["uno"]
	if !maq.Placed || maq.X != 10 || maq.Y != 20 {
		t.Errorf("uno = {placed %v at %v,%v}, want {placed true at 10,20}", maq.Placed, maq.X, maq.Y)
	}
	hub := in.Env.Concentradores["c1"]
	if !hub.Placed || hub.X != 30 {
		t.Errorf("c1 = {placed %v at x=%v}, want {placed true at x=30}", hub.Placed, hub.X)
	}
	coax := in.Env.Coaxiales["cable1"]
	if !coax.Placed || coax.Dir != "derecha" {
		t.Errorf("cable1 = {placed %v, dir %v}, want {placed true, dir derecha}", coax.Placed, coax.Dir)
	}
	if got := in.Env.OutputText(); got != "true\ntrue" {
		t.Errorf("output = %#v, want two times true", got)
	}
}

func TestInterpreter_Ports(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno, dos, tres;
define concentradores c1 = 4;
inicio
  uneMaquinaPuerto(uno, c1, 2);
  asignaPuerto(dos, c1);
  asignaPuerto(tres, c1);
  escribe(c1.disponibles);
  escribe(c1.p[1]);
  escribe(c1.p[4]);
fin.`)
	if err != nil {
		t.Fatal(err)
	}

	// Port 2 is taken explicitly; the automatic assignments fill the
	// lowest free ports 1 and 3.
	hub := in.Env.Concentradores["c1"]
	wantOccupied := []bool{true, true, true, false}
	for i, want := range wantOccupied {
		if hub.Occupied[i] != want {
			t.Errorf("port %v occupied = %v, want %v", i+1, hub.Occupied[i], want)
		}
	}
	if in.Env.Maquinas["dos"].Connected.Port != 1 {
		t.Errorf("dos sits on port %v, want 1", in.Env.Maquinas["dos"].Connected.Port)
	}
	if got := in.Env.OutputText(); got != "1\ntrue\nfalse" {
		t.Errorf("output = %#v, want 1, true, false", got)
	}
}

func TestInterpreter_PortConflict(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno, dos;
define concentradores c1 = 4;
inicio
  uneMaquinaPuerto(uno, c1, 2);
  uneMaquinaPuerto(dos, c1, 2);
fin.`)
	if err == nil {
		t.Fatal("assigning an occupied port should fail")
	}
	var runErr *interpreter.Error
	if !errors.As(err, &runErr) {
		t.Fatalf("the error should be an *Error, got %T", err)
	}
	if !strings.Contains(runErr.Message, "No se pudo asignar el puerto 2") {
		t.Errorf("unexpected message: %v", runErr.Message)
	}
	// The failed assignment must not consume a port.
	if free := in.Env.Concentradores["c1"].Free; free != 3 {
		t.Errorf("c1 has %v free ports, want 3", free)
	}
}

func TestInterpreter_CoaxialTaps(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno, dos, tres;
define concentradores c1 = 4;
define coaxial cable1 = 100;
inicio
  asignaMaquinaCoaxial(uno, cable1);
  asignaMaquinaCoaxial(dos, cable1);
  maquinaCoaxial(tres, cable1, 50);
  escribe(cable1.num);
fin.`)
	if err != nil {
		t.Fatal(err)
	}

	// Automatic taps step along the cable from 0 in 3-meter hops.
	if pos := in.Env.Maquinas["uno"].Connected.Position; pos != 0 {
		t.Errorf("uno taps at %vm, want 0m", pos)
	}
	if pos := in.Env.Maquinas["dos"].Connected.Position; pos != 3 {
		t.Errorf("dos taps at %vm, want 3m", pos)
	}
	if pos := in.Env.Maquinas["tres"].Connected.Position; pos != 50 {
		t.Errorf("tres taps at %vm, want 50m", pos)
	}
	if got := in.Env.OutputText(); got != "3" {
		t.Errorf("output = %#v, want 3", got)
	}
}

func TestInterpreter_SiSino(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
inicio
  si (c1.disponibles > 0) inicio
    escribe("hay puertos");
  fin sino inicio
    escribe("sin puertos");
  fin
  si (c1.disponibles = 0) inicio
    escribe("vacio");
  fin sino inicio
    escribe("ocupable");
  fin
fin.`)
	if err != nil {
		t.Fatal(err)
	}
	if got := in.Env.OutputText(); got != "hay puertos\nocupable" {
		t.Errorf("output = %#v", got)
	}
}

func TestInterpreter_Modules(t *testing.T) {
	in, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
modulo conecta;
inicio
  asignaPuerto(uno, c1);
  escribe("conectado");
fin
inicio
  conecta;
  escribe(c1.disponibles);
fin.`)
	if err != nil {
		t.Fatal(err)
	}
	if got := in.Env.OutputText(); got != "conectado\n3" {
		t.Errorf("output = %#v, want conectado and 3", got)
	}
}

func TestInterpreter_HubUplink(t *testing.T) {
	_, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 8.1;
define coaxial cable1 = 100;
inicio
  colocaCoaxialConcentrador(cable1, c1);
  escribe(c1.coaxial);
fin.`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestInterpreter_PortIndexOutOfRange(t *testing.T) {
	_, err := runProgram(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
inicio
  escribe(c1.p[5]);
fin.`)
	if err == nil {
		t.Fatal("indexing past the port count should fail")
	}
	var runErr *interpreter.Error
	if !errors.As(err, &runErr) {
		t.Fatalf("the error should be an *Error, got %T", err)
	}
	if !strings.Contains(runErr.Message, "fuera de rango") {
		t.Errorf("unexpected message: %v", runErr.Message)
	}
}
