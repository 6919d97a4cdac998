package automaton

import "github.com/dekarrin/parsegen/internal/grammar"

// merger implements C3: it splices the per-symbol trees C2 produced into a
// single automaton rooted at __START__, applying precedence to decide
// shift-vs-reduce and reduce-vs-reduce whenever two rules contend for the
// same state.
type merger struct {
	b         *builder
	autoShift bool
	visited   map[*State]bool
}

func newMerger(b *builder, autoShift bool) *merger {
	return &merger{b: b, autoShift: autoShift, visited: make(map[*State]bool)}
}

// mergeTree walks every state reachable from root, splicing in the root
// state of each non-terminal branch it finds before recursing into
// children. A visited set makes the walk idempotent under reachability so
// cyclic symbol references (direct or mutual recursion) terminate.
func (m *merger) mergeTree(state *State) error {
	if m.visited[state] {
		return nil
	}

	state.snapshotTokens()

	// Index-driven rather than over the snapshot, so a non-terminal edge
	// adopted by an earlier splice is itself spliced in turn.
	for i := 0; i < len(state.branchOrder); i++ {
		name := state.branchOrder[i]
		if m.b.reg.Kind(name) != grammar.KindNonTerminal {
			continue
		}
		childRoot, err := m.b.root(name)
		if err != nil {
			return err
		}
		if err := m.mergeState(state, childRoot); err != nil {
			return err
		}
	}

	m.visited[state] = true

	for _, name := range state.branchOrder {
		child := state.branches[name]
		if !m.visited[child] {
			if err := m.mergeTree(child); err != nil {
				return err
			}
		}
	}

	return nil
}

// mergeState copies edges and reduce behaviour from src into dest: dest's
// existing reduce action is kept unless src's outranks it, and each of
// src's edges is either adopted outright, recursively merged into an
// existing edge of the same name, or dropped when a higher-precedence
// reduce at dest blocks it.
func (m *merger) mergeState(dest, src *State) error {
	if dest == src {
		return nil
	}

	if src.reduceRule != nil {
		if dest.reduceRule == nil {
			dest.reduceRule = src.reduceRule
		} else if dest.reduceRule != src.reduceRule {
			override, err := shouldOverride(dest.reduceRule, src.reduceRule)
			if err != nil {
				return err
			}
			if override {
				dest.reduceRule = src.reduceRule
			}
		}
	}

	for _, name := range src.branchOrder {
		branch := src.branches[name]

		if existing, ok := dest.branches[name]; ok {
			if existing.reduceRule != nil {
				reduce, err := shouldReduce(existing.reduceRule, branch.bindRule, m.autoShift, name)
				if err != nil {
					return err
				}
				if reduce {
					// existing state's bound reduce outranks shifting into
					// the spliced branch: keep dest's edge as-is.
					continue
				}
			}
			if err := m.mergeState(existing, branch); err != nil {
				return err
			}
			continue
		}

		if dest.reduceRule != nil {
			reduce, err := shouldReduce(dest.reduceRule, branch.bindRule, m.autoShift, name)
			if err != nil {
				return err
			}
			if reduce {
				continue
			}
		}
		dest.setBranch(name, branch)
	}

	return nil
}
