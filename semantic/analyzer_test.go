package semantic_test

import (
	"strings"
	"testing"

	"github.com/rednet-lang/rednet/driver/lexer"
	"github.com/rednet-lang/rednet/driver/parser"
	"github.com/rednet-lang/rednet/semantic"
	"github.com/rednet-lang/rednet/spec"
)

func analyze(t *testing.T, src string) (*semantic.Analyzer, []*semantic.Error) {
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
	return a, a.Analyze(prog)
}

func containsError(errs []*semantic.Error, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		// Substrings that must each appear in some reported error.
		// Empty means the program is semantically valid.
		errors []string
	}{
		{
			caption: "a valid network program",
			src: `programa red1;
define maquinas uno, dos;
define concentradores c1 = 8.1;
define coaxial cable1 = 100;
inicio
  coloca(uno, 10, 20);
  colocaCoaxial(cable1, 0, 0, derecha);
  colocaCoaxialConcentrador(cable1, c1);
  uneMaquinaPuerto(uno, c1, 2);
  asignaPuerto(dos, c1);
fin.`,
		},
		{
			caption: "a machine defined twice",
			src: `programa red1;
define maquinas uno, uno;
inicio
fin.`,
			errors: []string{"Máquina 'uno' ya fue definida"},
		},
		{
			caption: "a hub reusing a machine name",
			src: `programa red1;
define maquinas uno;
define concentradores uno = 8;
inicio
fin.`,
			errors: []string{"ya está en uso por una máquina"},
		},
		{
			caption: "an invalid port count",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 6;
inicio
fin.`,
			errors: []string{"Número de puertos inválido: 6"},
		},
		{
			caption: "a cable beyond 500 meters",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 4;
define coaxial cable1 = 501;
inicio
fin.`,
			errors: []string{"longitud máxima según reglas Ethernet es 500m"},
		},
		{
			caption: "a cable below 3 meters",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 4;
define coaxial cable1 = 2;
inicio
fin.`,
			errors: []string{"longitud mínima según reglas Ethernet es 3m"},
		},
		{
			caption: "taps closer than 3 meters",
			src: `programa red1;
define maquinas uno, dos;
define concentradores c1 = 4;
define coaxial cable1 = 100;
inicio
  maquinaCoaxial(uno, cable1, 10);
  maquinaCoaxial(dos, cable1, 12);
fin.`,
			errors: []string{"Violación de regla Ethernet", "separación mínima es 3m"},
		},
		{
			caption: "a tap beyond the cable end",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 4;
define coaxial cable1 = 50;
inicio
  maquinaCoaxial(uno, cable1, 60);
fin.`,
			errors: []string{"Posición inválida: 60m"},
		},
		{
			caption: "a hub without a coax uplink",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 8;
define coaxial cable1 = 100;
inicio
  colocaCoaxialConcentrador(cable1, c1);
fin.`,
			errors: []string{"El concentrador 'c1' no tiene salida para coaxial"},
		},
		{
			caption: "an undefined object in coloca",
			src: `programa red1;
inicio
  coloca(fantasma, 0, 0);
fin.`,
			errors: []string{"Objeto 'fantasma' no está definido"},
		},
		{
			caption: "a call to an unknown module",
			src: `programa red1;
inicio
  arranque;
fin.`,
			errors: []string{"Módulo 'arranque' no está definido"},
		},
		{
			caption: "an unknown hub field",
			src: `programa red1;
define maquinas uno;
define concentradores c1 = 8;
inicio
  escribe(c1.colores);
fin.`,
			errors: []string{"Campo 'colores' no existe en concentrador 'c1'"},
		},
		{
			caption: "modules may call each other in any order",
			src: `programa red1;
modulo a;
inicio
  b;
fin
modulo b;
inicio
  escribe(1);
fin
inicio
  a;
fin.`,
		},
		{
			caption: "a non-boolean si condition",
			src: `programa red1;
inicio
  si ("hola") inicio
  fin
fin.`,
			errors: []string{"Incompatibilidad de tipos"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, errs := analyze(t, tt.src)
			if len(tt.errors) == 0 {
				if len(errs) != 0 {
					t.Fatalf("the program should be valid, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("the program should be rejected")
			}
			for _, want := range tt.errors {
				if !containsError(errs, want) {
					t.Errorf("no reported error contains %#v; got %v", want, errs)
				}
			}
		})
	}
}

func TestAnalyzer_SymbolTable(t *testing.T) {
	a, errs := analyze(t, `programa red1;
define maquinas uno, dos;
define concentradores c1 = 16.1;
define segmento troncal = 485;
modulo arranque;
inicio
fin
inicio
fin.`)
	if len(errs) != 0 {
		t.Fatal(errs)
	}

	if _, ok := a.Table.Maquina("dos"); !ok {
		t.Error("the machine dos should be in the table")
	}
	hub, ok := a.Table.Concentrador("c1")
	if !ok {
		t.Fatal("the hub c1 should be in the table")
	}
	if hub.Ports != 16 || !hub.CoaxUplink {
		t.Errorf("c1 = {%v ports, uplink %v}, want {16 ports, uplink true}", hub.Ports, hub.CoaxUplink)
	}
	coax, ok := a.Table.Coaxial("troncal")
	if !ok {
		t.Fatal("the cable troncal should be in the table")
	}
	if coax.Length != 485 {
		t.Errorf("troncal measures %vm, want 485m", coax.Length)
	}
	if !a.Table.HasModulo("arranque") {
		t.Error("the module arranque should be in the table")
	}
}

func TestAnalyzer_PortOccupancyAccess(t *testing.T) {
	_, errs := analyze(t, `programa red1;
define maquinas uno;
define concentradores c1 = 4;
inicio
  si (c1.p[1]) inicio
    escribe("ocupado");
  fin
fin.`)
	if len(errs) != 0 {
		t.Fatalf("hub.p[i] should type as a boolean, got %v", errs)
	}
}
