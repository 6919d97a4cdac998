package grammarfile

import (
	"fmt"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/lex"
)

// AssocError is returned by Build when a [[terminal]]'s open_level names
// something other than "left", "right", "nonassoc", or "increase".
type AssocError struct {
	Terminal string
	Value    string
}

func (e *AssocError) Error() string {
	return fmt.Sprintf("terminal %q: unrecognized open_level %q", e.Terminal, e.Value)
}

func parseAssoc(name string) (grammar.Associativity, error) {
	switch name {
	case "left":
		return grammar.AssocLeft, nil
	case "right":
		return grammar.AssocRight, nil
	case "nonassoc":
		return grammar.AssocNonAssoc, nil
	case "increase":
		return grammar.AssocShift, nil
	default:
		return grammar.AssocNone, fmt.Errorf("unrecognized associativity %q", name)
	}
}

// Build replays doc against a fresh grammar.Registry, in declaration order,
// then compiles the contexts doc describes for package lex. reducers looks
// up the Reducer a [[rule]] names by its "reducer" key; a rule with an
// empty reducer key gets a nil Reducer, so its reduce value is always nil
// (grammar.Rule.Reduce's documented behavior for an unset reducer).
func Build(doc *Document, reducers map[string]grammar.Reducer) (*grammar.Registry, []lex.ContextSpec, error) {
	reg := grammar.NewRegistry()

	for _, td := range doc.Terminal {
		if td.OpenLevel != "" {
			assoc, err := parseAssoc(td.OpenLevel)
			if err != nil {
				return nil, nil, &AssocError{Terminal: td.Name, Value: td.OpenLevel}
			}
			reg.OpenPrecedenceLevel(assoc)
		}

		decl := grammar.TerminalDecl{
			Pattern:   td.Pattern,
			Trailing:  td.Trailing,
			ShowName:  td.ShowName,
			Ignorable: td.Ignorable,
			Discard:   td.Discard,
			EOF:       td.EOF,
			Capture:   td.Capture,
		}
		if _, err := reg.DeclareTerminal(td.Name, decl); err != nil {
			return nil, nil, err
		}
	}

	// Declare every rule's LHS up front so a rule whose production
	// references a non-terminal defined later in the document (mutual or
	// forward recursion) does not need its rules reordered in the file.
	for _, rd := range doc.Rule {
		reg.DeclareSymbol(rd.LHS)
	}

	for _, rd := range doc.Rule {
		var reducer grammar.Reducer
		if rd.Reducer != "" {
			fn, ok := reducers[rd.Reducer]
			if !ok {
				return nil, nil, fmt.Errorf("rule %q: unknown reducer %q", rd.LHS, rd.Reducer)
			}
			reducer = fn
		}

		var override *grammar.Precedence
		if rd.PrecedenceOverride != nil {
			override = &grammar.Precedence{Level: *rd.PrecedenceOverride, Assoc: grammar.AssocShift}
		}

		if _, err := reg.AddRule(rd.LHS, rd.components(), reducer, rd.Reducer, override); err != nil {
			return nil, nil, err
		}
	}

	reg.SetStart(doc.Start)

	specs := make([]lex.ContextSpec, len(doc.Context))
	for i, cd := range doc.Context {
		specs[i] = lex.ContextSpec{
			Name:      cd.Name,
			Terminals: cd.Terminals,
			Capture:   cd.Capture,
		}
	}

	return reg, specs, nil
}
