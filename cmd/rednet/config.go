package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the optional settings read from rednet.yaml in the
// working directory. Command-line flags take precedence over it.
type config struct {
	Automaton string `yaml:"automaton"`
	Color     *bool  `yaml:"color"`
}

func loadConfig() (*config, error) {
	data, err := os.ReadFile("rednet.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return &config{}, nil
		}
		return nil, err
	}

	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// automatonPath resolves the automaton to load: the flag wins, then
// rednet.yaml, then the built-in default (empty string).
func automatonPath(c *config) string {
	if *rootFlags.automaton != "" {
		return *rootFlags.automaton
	}
	return c.Automaton
}

func colorEnabled(c *config) bool {
	if *rootFlags.noColor {
		return false
	}
	if c.Color != nil {
		return *c.Color
	}
	return true
}
