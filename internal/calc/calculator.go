// Package calc is the worked calculator grammar used both by the
// "parsegen repl" subcommand and by the core packages' own tests of
// precedence and associativity: NUMBER, NAME, right-associative "=" at
// level 1, left-associative "+ -" at level 2, left-associative "* /" at
// level 3, and parentheses/unary-minus at level 4.
package calc

import (
	"strconv"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/lex"
)

// Context is the parse context threaded through every reducer that needs
// the running variable table: an assignment's left-hand side and any bare
// name reference both resolve against it.
type Context struct {
	Names map[string]int
}

// NewContext returns a Context with an empty variable table.
func NewContext() *Context {
	return &Context{Names: make(map[string]int)}
}

func asInt(v any) int {
	n, _ := v.(int)
	return n
}

// Registry builds the calculator grammar and returns its registry, ready
// for automaton.Compile.
func Registry() (*grammar.Registry, error) {
	reg := grammar.NewRegistry()

	if _, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: `[0-9]+`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("NAME", grammar.TerminalDecl{Pattern: `[A-Za-z_][A-Za-z0-9_]*`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("WS", grammar.TerminalDecl{Pattern: `[ \t\n]+`, Ignorable: true}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true}); err != nil {
		return nil, err
	}

	reg.OpenPrecedenceLevel(grammar.AssocRight)
	if _, err := reg.DeclareTerminal("ASSIGN", grammar.TerminalDecl{Pattern: `=`}); err != nil {
		return nil, err
	}

	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	if _, err := reg.DeclareTerminal("PLUS", grammar.TerminalDecl{Pattern: `\+`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("MINUS", grammar.TerminalDecl{Pattern: `-`}); err != nil {
		return nil, err
	}

	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	if _, err := reg.DeclareTerminal("STAR", grammar.TerminalDecl{Pattern: `\*`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("SLASH", grammar.TerminalDecl{Pattern: `/`}); err != nil {
		return nil, err
	}

	reg.OpenPrecedenceLevel(grammar.AssocNonAssoc)
	if _, err := reg.DeclareTerminal("LPAREN", grammar.TerminalDecl{Pattern: `\(`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("RPAREN", grammar.TerminalDecl{Pattern: `\)`}); err != nil {
		return nil, err
	}

	reducers := BuiltinReducers()

	rules := []struct {
		lhs        string
		components []string
		name       string
		override   *grammar.Precedence
	}{
		{"expr", []string{"NUMBER"}, "number", nil},
		{"expr", []string{"NAME"}, "name-ref", nil},
		{"expr", []string{"expr", "PLUS", "expr"}, "sum", nil},
		{"expr", []string{"expr", "MINUS", "expr"}, "difference", nil},
		{"expr", []string{"expr", "STAR", "expr"}, "product", nil},
		{"expr", []string{"expr", "SLASH", "expr"}, "quotient", nil},
		{"expr", []string{"MINUS", "expr"}, "negate", &grammar.Precedence{Level: 4, Assoc: grammar.AssocNonAssoc}},
		{"expr", []string{"LPAREN", "expr", "RPAREN"}, "paren", nil},
		{"expr", []string{"NAME", "ASSIGN", "expr"}, "assign", nil},
	}

	for _, r := range rules {
		if _, err := reg.AddRule(r.lhs, r.components, reducers[r.name], r.name, r.override); err != nil {
			return nil, err
		}
	}

	reg.SetStart("expr")
	return reg, nil
}

// BuiltinReducers returns the calculator grammar's reducers keyed by the
// name each was registered under in Registry. A decoded table names its
// rules' reducers but cannot carry the closures themselves, so
// table.Decode rebinds each rule against this map by name.
func BuiltinReducers() map[string]grammar.Reducer {
	number := func(values []any) any {
		n, _ := strconv.Atoi(values[0].(string))
		return n
	}
	nameRef := func(ctx any, values []any) any {
		c := ctx.(*Context)
		return c.Names[values[0].(string)]
	}
	sum := func(values []any) any { return asInt(values[0]) + asInt(values[2]) }
	difference := func(values []any) any { return asInt(values[0]) - asInt(values[2]) }
	product := func(values []any) any { return asInt(values[0]) * asInt(values[2]) }
	quotient := func(values []any) any { return asInt(values[0]) / asInt(values[2]) }
	negate := func(values []any) any { return -asInt(values[1]) }
	paren := func(values []any) any { return values[1] }
	assign := func(ctx any, values []any) any {
		c := ctx.(*Context)
		v := asInt(values[2])
		c.Names[values[0].(string)] = v
		return v
	}

	return map[string]grammar.Reducer{
		"number":     grammar.Reducer(number),
		"name-ref":   grammar.Reducer(nameRef),
		"sum":        grammar.Reducer(sum),
		"difference": grammar.Reducer(difference),
		"product":    grammar.Reducer(product),
		"quotient":   grammar.Reducer(quotient),
		"negate":     grammar.Reducer(negate),
		"paren":      grammar.Reducer(paren),
		"assign":     grammar.Reducer(assign),
	}
}

// ContextSpecs is the single default scan condition for the calculator
// grammar: every terminal tried in declaration order, WS ignorable.
func ContextSpecs() []lex.ContextSpec {
	return []lex.ContextSpec{
		{
			Name: "default",
			Terminals: []string{
				"NUMBER", "NAME", "WS",
				"ASSIGN", "PLUS", "MINUS", "STAR", "SLASH",
				"LPAREN", "RPAREN", "EOF",
			},
		},
	}
}
