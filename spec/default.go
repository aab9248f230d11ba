package spec

import (
	_ "embed"
	"strings"
)

//go:embed automaton.aut
var defaultAutomatonSrc string

// DefaultAutomaton parses the automaton description embedded in the binary.
// Each call returns a fresh value; nothing is cached behind the caller's back.
func DefaultAutomaton() (*Automaton, error) {
	return LoadAutomaton(strings.NewReader(defaultAutomatonSrc))
}
