package grammar

import (
	"fmt"
	"strings"
)

// ProductionNum is the stable number of a production, 1-based. The numbering
// is part of the grammar definition and shows up in the exported table.
type ProductionNum int

func (n ProductionNum) Int() int {
	return int(n)
}

// Production is a rule of the grammar. An ε production carries a single
// ε symbol on its right-hand side.
type Production struct {
	Num ProductionNum
	LHS NonTerminalID
	RHS []Symbol
}

func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsEpsilon()
}

// RHSString renders the right-hand side for the exported table.
func (p *Production) RHSString() string {
	if len(p.RHS) == 0 || p.IsEpsilon() {
		return "ε"
	}
	parts := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (p *Production) String() string {
	return fmt.Sprintf("[%v] %v → %v", p.Num, p.LHS, p.RHSString())
}

// ProductionSet holds every production of the grammar keyed by number.
type ProductionSet struct {
	byNum map[ProductionNum]*Production
	order []*Production
}

func newProductionSet() *ProductionSet {
	return &ProductionSet{
		byNum: map[ProductionNum]*Production{},
	}
}

func (s *ProductionSet) append(num ProductionNum, lhs NonTerminalID, rhs ...Symbol) {
	p := &Production{
		Num: num,
		LHS: lhs,
		RHS: rhs,
	}
	s.byNum[num] = p
	s.order = append(s.order, p)
}

// Find returns the production with the given number.
func (s *ProductionSet) Find(num ProductionNum) (*Production, bool) {
	p, ok := s.byNum[num]
	return p, ok
}

// All returns the productions in numbering order.
func (s *ProductionSet) All() []*Production {
	return s.order
}

func (s *ProductionSet) Len() int {
	return len(s.order)
}
