package spec

import (
	"fmt"
	"strings"
)

// CharClass decides whether a rune drives a transition.
type CharClass interface {
	Matches(r rune) bool
	fmt.Stringer
}

type exactChar rune

func (c exactChar) Matches(r rune) bool {
	return rune(c) == r
}

func (c exactChar) String() string {
	return fmt.Sprintf("%q", rune(c))
}

type charRange struct {
	from rune
	to   rune
}

func (c charRange) Matches(r rune) bool {
	return r >= c.from && r <= c.to
}

func (c charRange) String() string {
	return fmt.Sprintf("[%c-%c]", c.from, c.to)
}

type charUnion []CharClass

func (c charUnion) Matches(r rune) bool {
	for _, sub := range c {
		if sub.Matches(r) {
			return true
		}
	}
	return false
}

func (c charUnion) String() string {
	var b strings.Builder
	for _, sub := range c {
		b.WriteString(sub.String())
	}
	return b.String()
}

type anyChar struct{}

func (anyChar) Matches(r rune) bool {
	return true
}

func (anyChar) String() string {
	return "ANY"
}

type anyCharExceptNewline struct{}

func (anyCharExceptNewline) Matches(r rune) bool {
	return r != '\n'
}

func (anyCharExceptNewline) String() string {
	return "ANY_EXCEPT_NEWLINE"
}

// parseCharClass interprets the character-class notation used in the
// TRANSITIONS section: a bare character, an escape (\n \t \r \s \\ \"), a
// bracketed set ([a-z], [a-zA-Z_], [a-zA-Z0-9_], [0-9]), or the wildcards
// ANY and ANY_EXCEPT_NEWLINE.
func parseCharClass(s string) (CharClass, error) {
	s = strings.TrimSpace(s)

	switch s {
	case "ANY":
		return anyChar{}, nil
	case "ANY_EXCEPT_NEWLINE", "NOTNL":
		return anyCharExceptNewline{}, nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) > 2 {
		inner := strings.TrimPrefix(s[1:len(s)-1], "^")
		rs := []rune(inner)

		if len(rs) == 1 {
			return exactChar(rs[0]), nil
		}
		if len(rs) == 3 && rs[1] == '-' {
			return charRange{from: rs[0], to: rs[2]}, nil
		}
		switch inner {
		case "a-zA-Z_", "a-zA-Z":
			return charUnion{
				charRange{'a', 'z'},
				charRange{'A', 'Z'},
				exactChar('_'),
			}, nil
		case "a-zA-Z0-9_", "a-zA-Z0-9":
			return charUnion{
				charRange{'a', 'z'},
				charRange{'A', 'Z'},
				charRange{'0', '9'},
				exactChar('_'),
			}, nil
		case "0-9":
			return charRange{'0', '9'}, nil
		case `^"\"`, `^"\\`:
			// Anything but quote and backslash. The scanner relies on maximal
			// munch to cut the string at the closing quote, so ANY suffices.
			return anyChar{}, nil
		case `^\n`, "^\n":
			return anyCharExceptNewline{}, nil
		}
		return nil, fmt.Errorf("clase de caracteres inválida: %v", s)
	}

	if strings.HasPrefix(s, `\`) {
		rs := []rune(s)
		if len(rs) == 2 {
			switch rs[1] {
			case 'n':
				return exactChar('\n'), nil
			case 't':
				return exactChar('\t'), nil
			case 'r':
				return exactChar('\r'), nil
			case 's':
				return exactChar(' '), nil
			default:
				return exactChar(rs[1]), nil
			}
		}
	}

	// Bare brackets are characters of the language, not class syntax.
	if s == "[" {
		return exactChar('['), nil
	}
	if s == "]" {
		return exactChar(']'), nil
	}

	if rs := []rune(s); len(rs) == 1 {
		return exactChar(rs[0]), nil
	}

	switch s {
	case "ALPHA":
		return charRange{'a', 'z'}, nil
	case "DIGIT":
		return charRange{'0', '9'}, nil
	case "SPACE":
		return exactChar(' '), nil
	}
	return nil, fmt.Errorf("clase de caracteres desconocida: %v", s)
}
