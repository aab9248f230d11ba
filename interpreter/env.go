package interpreter

import (
	"strings"

	"github.com/rednet-lang/rednet/driver/parser"
	"github.com/rednet-lang/rednet/semantic"
)

// Connection records where a machine ended up attached: either a hub
// port or a position on a coaxial cable.
type Connection struct {
	Concentrador string
	Port         int

	Coaxial  string
	Position int
}

// Maquina is a machine's runtime state.
type Maquina struct {
	Name      string
	X, Y      int
	Placed    bool
	Connected *Connection
}

// Concentrador is a hub's runtime state, including port occupancy.
type Concentrador struct {
	Name       string
	Ports      int
	CoaxUplink bool
	X, Y       int
	Placed     bool
	Occupied   []bool
	Free       int
	Coaxial    string
}

// AssignPort occupies the 1-based port, reporting false when it is out
// of range or taken.
func (c *Concentrador) AssignPort(port int) bool {
	if port < 1 || port > c.Ports || c.Occupied[port-1] {
		return false
	}
	c.Occupied[port-1] = true
	c.Free--
	return true
}

// FirstFreePort returns the lowest free port, or 0 when the hub is full.
func (c *Concentrador) FirstFreePort() int {
	for i, occupied := range c.Occupied {
		if !occupied {
			return i + 1
		}
	}
	return 0
}

type tap struct {
	maquina  string
	position int
}

// Coaxial is a cable's runtime state and the machines tapped onto it.
type Coaxial struct {
	Name    string
	Length  int
	X, Y    int
	Dir     string
	Placed  bool
	Taps    []tap
	Full    bool
}

func (c *Coaxial) NumMaquinas() int {
	return len(c.Taps)
}

// AddMaquina taps a machine onto the cable. Ten or more taps mark the
// cable as full.
func (c *Coaxial) AddMaquina(name string, position int) {
	c.Taps = append(c.Taps, tap{maquina: name, position: position})
	if len(c.Taps) >= 10 {
		c.Full = true
	}
}

// Environment is the mutable network state a program executes against.
// Output collects everything escribe() produced.
type Environment struct {
	Maquinas       map[string]*Maquina
	Concentradores map[string]*Concentrador
	Coaxiales      map[string]*Coaxial
	Modulos        map[string][]parser.Statement
	Output         []string
}

// NewEnvironment seeds the runtime state from the analyzer's symbol
// table: every declared object starts unplaced at the origin.
func NewEnvironment(table *semantic.SymbolTable) *Environment {
	env := &Environment{
		Maquinas:       map[string]*Maquina{},
		Concentradores: map[string]*Concentrador{},
		Coaxiales:      map[string]*Coaxial{},
		Modulos:        map[string][]parser.Statement{},
	}
	for name := range table.Maquinas {
		env.Maquinas[name] = &Maquina{Name: name}
	}
	for name, sym := range table.Concentradores {
		env.Concentradores[name] = &Concentrador{
			Name:       name,
			Ports:      sym.Ports,
			CoaxUplink: sym.CoaxUplink,
			Occupied:   make([]bool, sym.Ports),
			Free:       sym.Ports,
		}
	}
	for name, sym := range table.Coaxiales {
		env.Coaxiales[name] = &Coaxial{Name: name, Length: sym.Length}
	}
	return env
}

func (e *Environment) Write(msg string) {
	e.Output = append(e.Output, msg)
}

func (e *Environment) OutputText() string {
	return strings.Join(e.Output, "\n")
}
