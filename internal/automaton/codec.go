package automaton

import (
	"fmt"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/google/uuid"
)

// BindRule returns the rule this state is bound to (the rule whose walk
// created it, or a higher-precedence rule that later rebound it), or nil for
// a root state. It exists only for package table, which needs to serialize
// it; it plays no part in parsing.
func (s *State) BindRule() *grammar.Rule { return s.bindRule }

// BindIndex is the dot position bindRule had reached when it created or
// rebound this state.
func (s *State) BindIndex() int { return s.bindIndex }

// RawBranch is one outgoing edge of a RawState, named by component rather
// than resolved to a *State pointer, so package table can describe it
// without importing this package's unexported State fields.
type RawBranch struct {
	Component string
	Target    int
}

// RawState is the table package's decoded view of one State record: every
// field that mergeState/build would have computed, carried as plain indices
// and names instead of pointers.
type RawState struct {
	// BindRuleIndex is the index into the rules slice passed to Assemble,
	// or -1 for a root state with no binding rule.
	BindRuleIndex int
	BindIndex     int

	// ReduceRuleIndex is the index into rules of this state's reduce rule,
	// or -1 if this state never reduces.
	ReduceRuleIndex int

	ImmediateTokens []string
	Branches        []RawBranch
}

// Assemble reconstructs an Automaton from a flat table of RawState records
// and the rules they reference by index, wiring branches and reduce/bind
// rules without re-running the builder or merger. It is the inverse of
// walking a live Automaton's States in index order.
func Assemble(rules []*grammar.Rule, raws []RawState, startIndex int, startSymbol, eofTerminal string, compileID uuid.UUID) (*Automaton, error) {
	rule := func(idx int) (*grammar.Rule, error) {
		if idx < 0 {
			return nil, nil
		}
		if idx >= len(rules) {
			return nil, fmt.Errorf("table: rule index %d out of range (%d rules)", idx, len(rules))
		}
		return rules[idx], nil
	}

	states := make([]*State, len(raws))
	for i := range raws {
		states[i] = newState()
		states[i].index = i
	}

	for i, raw := range raws {
		s := states[i]

		bindRule, err := rule(raw.BindRuleIndex)
		if err != nil {
			return nil, err
		}
		s.bindRule = bindRule
		s.bindIndex = raw.BindIndex

		reduceRule, err := rule(raw.ReduceRuleIndex)
		if err != nil {
			return nil, err
		}
		s.reduceRule = reduceRule

		s.immediateTokens = append([]string(nil), raw.ImmediateTokens...)

		for _, b := range raw.Branches {
			if b.Target < 0 || b.Target >= len(states) {
				return nil, fmt.Errorf("table: branch %q targets out-of-range state %d", b.Component, b.Target)
			}
			s.setBranch(b.Component, states[b.Target])
		}
	}

	if startIndex < 0 || startIndex >= len(states) {
		return nil, fmt.Errorf("table: start state index %d out of range (%d states)", startIndex, len(states))
	}

	return &Automaton{
		Start:       states[startIndex],
		States:      states,
		StartSymbol: startSymbol,
		EOFTerminal: eofTerminal,
		CompileID:   compileID,
	}, nil
}
