package parse

import (
	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/types"
)

// Driver runs the shift/reduce loop against a single,
// finalized automaton.Automaton. A Driver holds no mutable state itself;
// all of a parse's working state (the two stacks) lives in the call to
// Parse, so one Driver may run multiple parses — even concurrently, since
// the Automaton and Registry it was built from are both read-only by this
// point.
type Driver struct {
	reg  *grammar.Registry
	auto *automaton.Automaton
}

// NewDriver returns a Driver bound to auto. reg must be the same registry
// auto was compiled from (or a registry with identical terminal/symbol
// declarations), since the driver consults it to tell terminals from
// non-terminals and to check the Ignorable flag.
func NewDriver(reg *grammar.Registry, auto *automaton.Automaton) *Driver {
	return &Driver{reg: reg, auto: auto}
}

// Parse drives stream to completion, invoking each rule's reducer as it is
// reduced and returning the semantic value of the grammar's start symbol.
// ctx, if non-nil, is threaded through to every context-accepting reducer.
func (d *Driver) Parse(stream types.TokenStream, ctx any) (any, error) {
	stateStack := []*automaton.State{d.auto.Start}
	var valueStack []types.Token

	lookahead, err := stream.Peek()
	if err != nil {
		return nil, err
	}

	for {
		if len(valueStack) == 1 && valueStack[0].Label == automaton.StartSymbolName {
			return valueStack[0].Value, nil
		}

		cur := stateStack[len(stateStack)-1]

		if branch := cur.Branch(lookahead.Label); branch != nil {
			if d.reg.Kind(lookahead.Label) == grammar.KindTerminal {
				if _, err := stream.Next(); err != nil {
					return nil, err
				}
				valueStack = append(valueStack, lookahead)
			}
			stateStack = append(stateStack, branch)

			if lookahead.Label == d.auto.EOFTerminal {
				// Nothing is read past the end-of-file token; the next
				// step can only reduce.
				lookahead = types.Token{}
				continue
			}

			lookahead, err = stream.Peek()
			if err != nil {
				return nil, err
			}
			continue
		}

		if rule := cur.ReduceRule(); rule != nil {
			k := len(rule.Production)

			args := make([]any, k)
			loc := lookahead.Loc
			if k > 0 {
				loc = valueStack[len(valueStack)-k].Loc
				for i := 0; i < k; i++ {
					args[i] = valueStack[len(valueStack)-k+i].Value
				}
				valueStack = valueStack[:len(valueStack)-k]
			}

			result := rule.Reduce(ctx, args)
			valueStack = append(valueStack, types.Token{Label: rule.NonTerminal, Value: result, Loc: loc})
			stateStack = stateStack[:len(stateStack)-k]

			lookahead = valueStack[len(valueStack)-1]
			continue
		}

		if d.reg.Kind(lookahead.Label) == grammar.KindTerminal {
			if t, ok := d.reg.Terminal(lookahead.Label); ok && t.Ignorable {
				if _, err := stream.Next(); err != nil {
					return nil, err
				}
				lookahead, err = stream.Peek()
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		return nil, d.syntaxError(cur, lookahead)
	}
}

func (d *Driver) syntaxError(s *automaton.State, observed types.Token) error {
	expected := make([]string, 0, len(s.ImmediateTokens()))
	for _, name := range s.ImmediateTokens() {
		expected = append(expected, d.displayName(name))
	}

	return &SyntaxError{
		Loc:      observed.Loc,
		Observed: d.displayName(observed.Label),
		Expected: expected,
	}
}

func (d *Driver) displayName(name string) string {
	if t, ok := d.reg.Terminal(name); ok {
		return t.DisplayName()
	}
	return name
}
