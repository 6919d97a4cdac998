package lex

import "github.com/dekarrin/parsegen/internal/grammar"

// Lexer is the compiled form of every start condition declared for a
// grammar: one alternation regex per condition, ready to drive against
// input text. It is immutable after construction and may be shared freely
// across scan sessions, the same way an Automaton may be shared across
// parse sessions.
type Lexer struct {
	reg        *grammar.Registry
	conditions map[string]*Condition
	defaultCtx string
}

// NewLexer compiles one Condition per spec. The first spec in specs is
// used as the default (outermost) condition for a new scan.
func NewLexer(reg *grammar.Registry, specs []ContextSpec) (*Lexer, error) {
	lx := &Lexer{
		reg:        reg,
		conditions: make(map[string]*Condition, len(specs)),
	}

	for i, spec := range specs {
		cond, err := compileCondition(reg, spec)
		if err != nil {
			return nil, err
		}
		lx.conditions[spec.Name] = cond
		if i == 0 {
			lx.defaultCtx = spec.Name
		}
	}

	return lx, nil
}

// ScanOptions configures a single call to Lex.
type ScanOptions struct {
	Filename string

	// IgnoreTrailing, if false (the default), makes unconsumed input at
	// the end of a scan a *TrailingJunkError. If true, the scan simply
	// stops early.
	IgnoreTrailing bool

	// EOFStop, if true, marks the stream finished once the current
	// condition's EOF token is produced, so HasNext reports false
	// afterwards. Without it, HasNext keeps reporting true and every
	// further read at end of input yields the EOF token again. In both
	// cases no terminal action runs at end of input and the context stack
	// is not popped.
	EOFStop bool
}
