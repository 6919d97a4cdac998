// Package automaton builds the shift/reduce state graph from a compiled
// grammar.Registry: the per-symbol tree walk of component C2, and the
// splice-and-resolve merge of component C3, producing a single
// deterministic Automaton that package parse drives against a token
// stream.
package automaton

import "github.com/dekarrin/parsegen/internal/grammar"

// State is a node in the automaton. Branches preserve insertion order,
// because that order decides which terminal wins a tie when formatting the
// "expected one of [...]" diagnostic, and because the merge algorithm
// iterates branches in the order they were first adopted.
type State struct {
	// index is this state's position in the owning Automaton's arena.
	index int

	branchOrder []string
	branches    map[string]*State

	// reduceRule is the rule to reduce by when no branch matches the
	// lookahead. nil means this is not (yet, or ever) a reduce state.
	reduceRule *grammar.Rule

	// bindRule/bindIndex record the rule whose walk created this state (or
	// a higher-precedence rule that later rebound it), and the dot
	// position within that rule's production. They
	// exist solely so the merge step (C3) can compare precedence when two
	// rules claim the same prefix; they play no role at parse time.
	bindRule  *grammar.Rule
	bindIndex int

	// immediateTokens is a snapshot of branchOrder taken just before this
	// state's branches are merged with spliced-in children, used to format
	// "expecting ..." diagnostics with the automaton's structure as it
	// stood prior to merge.
	immediateTokens []string
}

func newState() *State {
	return &State{branches: make(map[string]*State)}
}

// Index is this state's position in the owning Automaton's state arena.
func (s *State) Index() int { return s.index }

// Branch returns the child state reached by shifting/reducing on component
// name, or nil if there is none.
func (s *State) Branch(name string) *State {
	return s.branches[name]
}

// Branches returns the state's outgoing edges in insertion order.
func (s *State) Branches() []string {
	return s.branchOrder
}

// ReduceRule returns the rule to reduce by in this state, or nil.
func (s *State) ReduceRule() *grammar.Rule {
	return s.reduceRule
}

// ImmediateTokens is the set of component names this state could shift on,
// snapshotted just before merge, for diagnostic formatting.
func (s *State) ImmediateTokens() []string {
	return s.immediateTokens
}

func (s *State) hasBranch(name string) bool {
	_, ok := s.branches[name]
	return ok
}

func (s *State) setBranch(name string, child *State) {
	if !s.hasBranch(name) {
		s.branchOrder = append(s.branchOrder, name)
	}
	s.branches[name] = child
}

func (s *State) snapshotTokens() {
	s.immediateTokens = append([]string(nil), s.branchOrder...)
}
