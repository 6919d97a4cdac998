package calc

import (
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/lex"
)

// ListRegistry builds the minimal "list of digits" grammar used to exercise
// ignorable tokens end to end: EXPR -> ε | NUMBER | EXPR NUMBER, with
// NUMBER -> DIGIT and whitespace (including newlines) ignorable. Each
// DIGIT is scanned as its own single-character token, so EXPR's reduced
// value is the ordered slice of digit strings seen, e.g. "234" -> ["2",
// "3", "4"].
func ListRegistry() (*grammar.Registry, error) {
	reg := grammar.NewRegistry()

	if _, err := reg.DeclareTerminal("DIGIT", grammar.TerminalDecl{Pattern: `[0-9]`}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("WS", grammar.TerminalDecl{Pattern: `[ \t\n]+`, Ignorable: true}); err != nil {
		return nil, err
	}
	if _, err := reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true}); err != nil {
		return nil, err
	}

	digit := func(values []any) any { return values[0] }
	empty := func(values []any) any { return []string{} }
	single := func(values []any) any { return []string{values[0].(string)} }
	accumulate := func(values []any) any {
		return append(values[0].([]string), values[1].(string))
	}

	if _, err := reg.AddRule("NUMBER", []string{"DIGIT"}, grammar.Reducer(digit), "digit", nil); err != nil {
		return nil, err
	}
	if _, err := reg.AddRule("EXPR", []string{}, grammar.Reducer(empty), "empty", nil); err != nil {
		return nil, err
	}
	if _, err := reg.AddRule("EXPR", []string{"NUMBER"}, grammar.Reducer(single), "single", nil); err != nil {
		return nil, err
	}
	if _, err := reg.AddRule("EXPR", []string{"EXPR", "NUMBER"}, grammar.Reducer(accumulate), "accumulate", nil); err != nil {
		return nil, err
	}

	reg.SetStart("EXPR")
	return reg, nil
}

// ListContextSpecs is the default scan condition for ListRegistry.
func ListContextSpecs() []lex.ContextSpec {
	return []lex.ContextSpec{
		{Name: "default", Terminals: []string{"DIGIT", "WS", "EOF"}},
	}
}
