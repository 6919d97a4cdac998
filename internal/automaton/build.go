package automaton

import "github.com/dekarrin/parsegen/internal/grammar"

// builder implements C2, the state-graph builder: for each non-terminal it
// walks every production's components from left to right through a shared
// root state, creating a fresh state the first time a dot position is
// reached and rebinding the shared state's bindRule whenever a
// higher-precedence rule later claims the same prefix.
//
// This step is purely additive. It never deletes states or edges; the only
// decision it makes is which rule a shared prefix state is bound to.
type builder struct {
	reg *grammar.Registry

	roots   map[string]*State
	pending map[string][]*grammar.Rule

	states []*State
}

func newBuilder(reg *grammar.Registry) *builder {
	return &builder{
		reg:     reg,
		roots:   make(map[string]*State),
		pending: make(map[string][]*grammar.Rule),
	}
}

func (b *builder) newState(bindRule *grammar.Rule, bindIndex int) *State {
	s := newState()
	s.bindRule = bindRule
	s.bindIndex = bindIndex
	s.index = len(b.states)
	b.states = append(b.states, s)
	return s
}

// root returns the (memoised) root state for symbolName, building out any
// of its rules that have not yet been walked. Calling root twice for the
// same symbol is safe and idempotent: the second call finds the pending
// rule queue already drained and returns immediately.
func (b *builder) root(symbolName string) (*State, error) {
	root, ok := b.roots[symbolName]
	if !ok {
		root = b.newState(nil, 0)
		b.roots[symbolName] = root
	}

	rules, ok := b.pending[symbolName]
	if !ok {
		sym, declared := b.reg.Symbol(symbolName)
		if !declared {
			return root, nil
		}
		rules = append([]*grammar.Rule(nil), sym.Rules...)
	}

	// Pop from the end and write the shrunk queue back before recursing,
	// so a recursive call reached through this rule's own components (a
	// left-recursive or mutually-recursive production) observes the
	// updated queue instead of re-walking rules this call already holds.
	for len(rules) > 0 {
		r := rules[len(rules)-1]
		rules = rules[:len(rules)-1]
		b.pending[symbolName] = rules

		if err := b.walk(root, r, r.Production, 0); err != nil {
			return nil, err
		}

		rules = b.pending[symbolName]
	}
	b.pending[symbolName] = rules

	return root, nil
}

// walk advances the dot of rule through state, starting at position pos in
// its production, creating or rebinding states as it goes and recursing
// into any non-terminal component's own tree once its edge exists.
func (b *builder) walk(state *State, rule *grammar.Rule, prod grammar.Production, pos int) error {
	if pos == len(prod) {
		if state.reduceRule != nil && state.reduceRule != rule {
			override, err := shouldOverride(state.reduceRule, rule)
			if err != nil {
				return err
			}
			if override {
				state.reduceRule = rule
			}
			return nil
		}
		state.reduceRule = rule
		return nil
	}

	component := prod[pos]
	child := state.Branch(component)
	if child == nil {
		child = b.newState(rule, pos+1)
		state.setBranch(component, child)
	} else if rule.Precedence.Greater(child.bindRule.Precedence) {
		child.bindRule = rule
		child.bindIndex = pos + 1
	}

	if err := b.walk(child, rule, prod, pos+1); err != nil {
		return err
	}

	if b.reg.Kind(component) == grammar.KindNonTerminal {
		if _, err := b.root(component); err != nil {
			return err
		}
	}

	return nil
}
