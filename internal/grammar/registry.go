package grammar

import (
	"strings"

	"github.com/dekarrin/parsegen/internal/types"
)

// Kind classifies a declared name.
type Kind int

const (
	// Unknown means the name has not been declared as either a terminal or
	// a non-terminal.
	Unknown Kind = iota
	KindTerminal
	KindNonTerminal
)

// TerminalDecl bundles the options accepted by DeclareTerminal. The zero
// value declares a terminal with no pattern, no action, and none of the
// boolean flags set; MissingPattern is raised later, at scanner build time,
// if such a terminal is neither EOF, Capture, nor Discard.
type TerminalDecl struct {
	Pattern   string
	Trailing  string
	ShowName  string
	Ignorable bool
	Discard   bool
	EOF       bool
	Capture   bool
	Action    types.ScanAction

	// PrecedenceOverride, if non-nil, is used verbatim instead of the
	// registry's currently open level. Package table uses this to restore
	// a terminal's exact precedence on decode without replaying every
	// OpenPrecedenceLevel call that produced it.
	PrecedenceOverride *Precedence
}

// Registry is the sole owner of a grammar's terminals, non-terminals, and
// rules. Other components (package automaton, package lex) hold read-only
// references to what it produces by name or by index; nothing outside this
// package ever mutates a Terminal, Symbol, or Rule once it has been
// returned.
type Registry struct {
	terminalOrder []string
	terminals     map[string]*Terminal

	symbolOrder []string
	symbols     map[string]*Symbol

	rules []*Rule

	curLevel int
	curAssoc Associativity

	startName string
}

// NewRegistry returns an empty Registry with its current precedence level
// at 0 / AssocNone.
func NewRegistry() *Registry {
	return &Registry{
		terminals: make(map[string]*Terminal),
		symbols:   make(map[string]*Symbol),
	}
}

// OpenPrecedenceLevel increments the current precedence level and sets its
// associativity. Terminals declared after this call and before the next
// OpenPrecedenceLevel call use the new level.
func (reg *Registry) OpenPrecedenceLevel(assoc Associativity) {
	reg.curLevel++
	if assoc == AssocNone {
		assoc = AssocShift
	}
	reg.curAssoc = assoc
}

func (reg *Registry) currentPrecedence() Precedence {
	return Precedence{Level: reg.curLevel, Assoc: reg.curAssoc}
}

// DeclareTerminal interns a new Terminal. It fails with
// *DuplicateTerminalError if name has already been declared.
func (reg *Registry) DeclareTerminal(name string, opts TerminalDecl) (*Terminal, error) {
	if _, ok := reg.terminals[name]; ok {
		return nil, &DuplicateTerminalError{Name: name}
	}

	prec := reg.currentPrecedence()
	if opts.PrecedenceOverride != nil {
		prec = *opts.PrecedenceOverride
	}

	t := &Terminal{
		Name:       name,
		ShowName:   opts.ShowName,
		Pattern:    opts.Pattern,
		Trailing:   opts.Trailing,
		Precedence: prec,
		Ignorable:  opts.Ignorable,
		Discard:    opts.Discard,
		EOF:        opts.EOF,
		Capture:    opts.Capture,
		Action:     opts.Action,
	}

	reg.terminals[name] = t
	reg.terminalOrder = append(reg.terminalOrder, name)
	return t, nil
}

// DeclareSymbol interns a non-terminal, creating it on first reference.
// Calling it again with the same name returns the existing Symbol.
func (reg *Registry) DeclareSymbol(name string) *Symbol {
	if s, ok := reg.symbols[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	reg.symbols[name] = s
	reg.symbolOrder = append(reg.symbolOrder, name)
	return s
}

// AddRule appends a production to the non-terminal named lhs, interning lhs
// via DeclareSymbol if this is the first rule for it. reducer must satisfy
// Reducer's documented shapes, or be nil. If override is non-nil, it is used
// as the rule's effective precedence; otherwise the effective precedence is
// that of the rightmost terminal component with a non-zero level, or level
// 0 / AssocNone if there is none. reducerName is purely descriptive
// bookkeeping for package table; pass "" if the rule was not registered
// through a named-reducer lookup.
func (reg *Registry) AddRule(lhs string, components []string, reducer Reducer, reducerName string, override *Precedence) (*Rule, error) {
	sym := reg.DeclareSymbol(lhs)

	reduceFn, err := normalizeReducer(reducer)
	if err != nil {
		return nil, err
	}

	prec := Precedence{}
	if override != nil {
		prec = *override
	} else {
		for i := len(components) - 1; i >= 0; i-- {
			if t, ok := reg.terminals[components[i]]; ok && t.Precedence.Level != 0 {
				prec = t.Precedence
				break
			}
		}
	}

	r := &Rule{
		NonTerminal: lhs,
		Production:  Production(append([]string(nil), components...)),
		Precedence:  prec,
		ReducerName: reducerName,
		reduce:      reduceFn,
		index:       len(reg.rules),
	}

	sym.Rules = append(sym.Rules, r)
	reg.rules = append(reg.rules, r)
	return r, nil
}

// SetStart records the grammar's start symbol. It is validated (existence,
// kind) at compile time by package automaton, not here, since a forward
// reference to a non-terminal declared by a later AddRule call is legal.
func (reg *Registry) SetStart(name string) {
	reg.startName = name
}

// Start returns the name most recently passed to SetStart, or "" if it was
// never called.
func (reg *Registry) Start() string {
	return reg.startName
}

// Kind reports whether name is a declared terminal, a declared
// non-terminal, or neither.
func (reg *Registry) Kind(name string) Kind {
	if _, ok := reg.terminals[name]; ok {
		return KindTerminal
	}
	if _, ok := reg.symbols[name]; ok {
		return KindNonTerminal
	}
	return Unknown
}

// Terminal looks up a declared terminal by name.
func (reg *Registry) Terminal(name string) (*Terminal, bool) {
	t, ok := reg.terminals[name]
	return t, ok
}

// Symbol looks up a declared non-terminal by name.
func (reg *Registry) Symbol(name string) (*Symbol, bool) {
	s, ok := reg.symbols[name]
	return s, ok
}

// Terminals returns every declared terminal in declaration order.
func (reg *Registry) Terminals() []*Terminal {
	out := make([]*Terminal, len(reg.terminalOrder))
	for i, name := range reg.terminalOrder {
		out[i] = reg.terminals[name]
	}
	return out
}

// Symbols returns every declared non-terminal in declaration order.
func (reg *Registry) Symbols() []*Symbol {
	out := make([]*Symbol, len(reg.symbolOrder))
	for i, name := range reg.symbolOrder {
		out[i] = reg.symbols[name]
	}
	return out
}

// Rules returns every rule added to the registry, in the global order
// AddRule was called, indexed identically to each Rule's Index().
func (reg *Registry) Rules() []*Rule {
	return reg.rules
}

// String renders the grammar in the same "LHS -> a b | c" notation used by
// the rest of the toolkit's item-parsing helpers, for debug dumps.
func (reg *Registry) String() string {
	var b strings.Builder
	for _, name := range reg.symbolOrder {
		sym := reg.symbols[name]
		b.WriteString(name)
		b.WriteString(" -> ")
		for i, r := range sym.Rules {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(r.Production.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}
