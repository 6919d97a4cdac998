package automaton

import (
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/google/uuid"
)

// StartSymbolName is the synthetic non-terminal wrapping the grammar's
// declared start symbol: a single rule [start, EOF] whose reducer
// strips the EOF token and returns the start symbol's value.
const StartSymbolName = "__START__"

// CompileOptions controls the merge step's conflict-resolution policy.
type CompileOptions struct {
	// AutoShift, when true (the default), resolves an otherwise-unresolved
	// equal-precedence shift/reduce tie by shifting rather than raising
	// ShiftReduceConflictError. It does not affect ties where an explicit
	// Left or Right associativity applies; those are always decided by
	// associativity, never by this flag.
	AutoShift bool
}

// DefaultCompileOptions resolves undeclared precedence ties by shifting.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{AutoShift: true}
}

// Automaton is the finalized, immutable state graph produced by compiling a
// grammar.Registry: a start state plus every state reachable from it. It
// may be shared freely across parse sessions; nothing in package parse
// mutates it.
type Automaton struct {
	Start *State

	// States is the full arena, indexed by State.Index(). It includes
	// states created during the build step that may not be reachable
	// from Start after merge; only the states reachable from Start take
	// part in parsing.
	States []*State

	// StartSymbol is the name of the grammar's declared start non-terminal
	// (not the synthetic __START__ wrapper).
	StartSymbol string

	// EOFTerminal is the name of the terminal used as end-of-file for the
	// automaton's default scan condition.
	EOFTerminal string

	// CompileID is a fresh identifier minted for this compilation, used to
	// correlate log lines and serialized table headers (package table)
	// back to the run that produced them.
	CompileID uuid.UUID
}

// Compile runs C2 then C3 over reg, producing a finalized Automaton. It
// fails with *grammar.MissingStartError if reg.Start() is empty or does not
// name a declared non-terminal, and with *ShiftReduceConflictError or
// *ReduceReduceConflictError if precedence does not fully disambiguate the
// grammar.
func Compile(reg *grammar.Registry, eofTerminal string, opts CompileOptions) (*Automaton, error) {
	startName := reg.Start()
	if startName == "" {
		return nil, &grammar.MissingStartError{}
	}
	if reg.Kind(startName) != grammar.KindNonTerminal {
		return nil, &grammar.MissingStartError{Name: startName}
	}

	for _, r := range reg.Rules() {
		for _, component := range r.Production {
			if reg.Kind(component) == grammar.Unknown {
				return nil, &grammar.UndeclaredComponentError{Rule: r.NonTerminal, Component: component}
			}
		}
	}

	stripEOF := func(values []any) any {
		return values[0]
	}
	if _, err := reg.AddRule(StartSymbolName, []string{startName, eofTerminal}, grammar.Reducer(stripEOF), "", &grammar.Precedence{}); err != nil {
		return nil, err
	}

	b := newBuilder(reg)
	root, err := b.root(StartSymbolName)
	if err != nil {
		return nil, err
	}

	m := newMerger(b, opts.AutoShift)
	if err := m.mergeTree(root); err != nil {
		return nil, err
	}

	return &Automaton{
		Start:       root,
		States:      b.states,
		StartSymbol: startName,
		EOFTerminal: eofTerminal,
		CompileID:   uuid.New(),
	}, nil
}
