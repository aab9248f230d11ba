package semantic

import (
	"fmt"

	"github.com/rednet-lang/rednet/driver/parser"
)

// MaquinaSymbol is a declared machine. Placed becomes true once the
// machine has been drawn on screen.
type MaquinaSymbol struct {
	Name   string
	Placed bool
	Pos    parser.Position
}

// ConcentradorSymbol is a declared hub together with the occupancy of
// its ports. Ports are numbered from 1.
type ConcentradorSymbol struct {
	Name       string
	Ports      int
	CoaxUplink bool
	Occupied   []bool
	Free       int
	Coaxial    string
	Placed     bool
	Pos        parser.Position
}

func newConcentradorSymbol(name string, ports int, uplink bool, pos parser.Position) *ConcentradorSymbol {
	return &ConcentradorSymbol{
		Name:       name,
		Ports:      ports,
		CoaxUplink: uplink,
		Occupied:   make([]bool, ports),
		Free:       ports,
		Pos:        pos,
	}
}

// AssignPort marks the given 1-based port as occupied. It reports false
// when the port is out of range or already taken.
func (c *ConcentradorSymbol) AssignPort(port int) bool {
	if port < 1 || port > c.Ports || c.Occupied[port-1] {
		return false
	}
	c.Occupied[port-1] = true
	c.Free--
	return true
}

// FirstFreePort returns the lowest unoccupied port, or 0 when the hub
// is full.
func (c *ConcentradorSymbol) FirstFreePort() int {
	for i, occupied := range c.Occupied {
		if !occupied {
			return i + 1
		}
	}
	return 0
}

// CoaxialSymbol is a declared coaxial cable and the machines tapped
// onto it. Positions are meters from the cable's origin.
type CoaxialSymbol struct {
	Name      string
	Length    int
	Full      bool
	Maquinas  []string
	Positions []int
	Placed    bool
	Pos       parser.Position
}

func newCoaxialSymbol(name string, length int, pos parser.Position) *CoaxialSymbol {
	return &CoaxialSymbol{Name: name, Length: length, Pos: pos}
}

// CanPlaceAt checks the Ethernet rules for tapping a machine at the
// given position: the cable must measure between 3 and 500 meters, the
// position must lie on the cable, and every pair of taps must be at
// least 3 meters apart.
func (c *CoaxialSymbol) CanPlaceAt(position int) error {
	if c.Length < 3 {
		return fmt.Errorf("Cable coaxial muy corto (mínimo 3m): %vm", c.Length)
	}
	if c.Length > 500 {
		return fmt.Errorf("Cable coaxial muy largo (máximo 500m): %vm", c.Length)
	}
	if position < 0 || position > c.Length {
		return fmt.Errorf("Posición %vm fuera del rango del cable (0-%vm)", position, c.Length)
	}
	for _, pos := range c.Positions {
		if abs(pos-position) < 3 {
			return fmt.Errorf("Máquina muy cerca de otra (mínimo 3m de separación). Posición %vm conflicta con %vm", position, pos)
		}
	}
	return nil
}

// Place taps a machine onto the cable without re-checking the rules.
func (c *CoaxialSymbol) Place(maquina string, position int) {
	c.Maquinas = append(c.Maquinas, maquina)
	c.Positions = append(c.Positions, position)
}

// NextFreePosition walks the cable in 3-meter steps and returns the
// first position a machine fits at. The second result is false when the
// cable has no room left.
func (c *CoaxialSymbol) NextFreePosition() (int, bool) {
	for pos := 0; pos <= c.Length; pos += 3 {
		if c.CanPlaceAt(pos) == nil {
			return pos, true
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

// SymbolTable registers every declared name. The three object kinds
// share one namespace, so a name used by a machine cannot also name a
// hub or a cable. Modules live in a namespace of their own.
type SymbolTable struct {
	Maquinas       map[string]*MaquinaSymbol
	Concentradores map[string]*ConcentradorSymbol
	Coaxiales      map[string]*CoaxialSymbol
	Modulos        map[string]parser.Position
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Maquinas:       map[string]*MaquinaSymbol{},
		Concentradores: map[string]*ConcentradorSymbol{},
		Coaxiales:      map[string]*CoaxialSymbol{},
		Modulos:        map[string]parser.Position{},
	}
}

func (t *SymbolTable) DefineMaquina(name string, pos parser.Position) error {
	if _, ok := t.Maquinas[name]; ok {
		return fmt.Errorf("Máquina '%v' ya fue definida", name)
	}
	if _, ok := t.Concentradores[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por un concentrador", name)
	}
	if _, ok := t.Coaxiales[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por un coaxial", name)
	}
	t.Maquinas[name] = &MaquinaSymbol{Name: name, Pos: pos}
	return nil
}

func (t *SymbolTable) DefineConcentrador(name string, ports int, uplink bool, pos parser.Position) error {
	if _, ok := t.Concentradores[name]; ok {
		return fmt.Errorf("Concentrador '%v' ya fue definido", name)
	}
	if _, ok := t.Maquinas[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por una máquina", name)
	}
	if _, ok := t.Coaxiales[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por un coaxial", name)
	}
	if ports != 4 && ports != 8 && ports != 16 {
		return fmt.Errorf("Número de puertos inválido: %v. Debe ser 4, 8 o 16", ports)
	}
	t.Concentradores[name] = newConcentradorSymbol(name, ports, uplink, pos)
	return nil
}

func (t *SymbolTable) DefineCoaxial(name string, length int, pos parser.Position) error {
	if _, ok := t.Coaxiales[name]; ok {
		return fmt.Errorf("Coaxial '%v' ya fue definido", name)
	}
	if _, ok := t.Maquinas[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por una máquina", name)
	}
	if _, ok := t.Concentradores[name]; ok {
		return fmt.Errorf("El nombre '%v' ya está en uso por un concentrador", name)
	}
	if length < 3 {
		return fmt.Errorf("Longitud de cable coaxial inválida: %vm. La longitud mínima según reglas Ethernet es 3m", length)
	}
	if length > 500 {
		return fmt.Errorf("Longitud de cable coaxial inválida: %vm. La longitud máxima según reglas Ethernet es 500m", length)
	}
	t.Coaxiales[name] = newCoaxialSymbol(name, length, pos)
	return nil
}

func (t *SymbolTable) DefineModulo(name string, pos parser.Position) error {
	if _, ok := t.Modulos[name]; ok {
		return fmt.Errorf("Módulo '%v' ya fue definido", name)
	}
	t.Modulos[name] = pos
	return nil
}

func (t *SymbolTable) Maquina(name string) (*MaquinaSymbol, bool) {
	m, ok := t.Maquinas[name]
	return m, ok
}

func (t *SymbolTable) Concentrador(name string) (*ConcentradorSymbol, bool) {
	c, ok := t.Concentradores[name]
	return c, ok
}

func (t *SymbolTable) Coaxial(name string) (*CoaxialSymbol, bool) {
	c, ok := t.Coaxiales[name]
	return c, ok
}

func (t *SymbolTable) HasModulo(name string) bool {
	_, ok := t.Modulos[name]
	return ok
}
