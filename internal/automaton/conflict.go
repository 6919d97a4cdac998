package automaton

import "github.com/dekarrin/parsegen/internal/grammar"

// shouldReduce implements should_reduce(reduce_rule, shift_rule): given a
// state that already has reduceRule bound and a candidate edge bound by
// shiftRule, decide whether the existing reduce wins over shifting into the
// candidate edge.
func shouldReduce(reduceRule, shiftRule *grammar.Rule, autoShift bool, onToken string) (bool, error) {
	rp, sp := reduceRule.Precedence, shiftRule.Precedence

	if rp.Greater(sp) {
		return true, nil
	}
	if rp.Less(sp) {
		return false, nil
	}

	// equal levels
	if rp.Assoc != sp.Assoc {
		return false, &ShiftReduceConflictError{Reduce: reduceRule, Shift: shiftRule, Token: onToken}
	}
	if rp.Assoc == grammar.AssocLeft {
		return true, nil
	}
	if rp.Assoc == grammar.AssocRight {
		return false, nil
	}
	if autoShift {
		return false, nil
	}
	return false, &ShiftReduceConflictError{Reduce: reduceRule, Shift: shiftRule, Token: onToken}
}

// shouldOverride implements should_override(incumbent, candidate): decide
// whether a later-bound rule displaces the rule currently bound to a shared
// prefix state.
func shouldOverride(incumbent, candidate *grammar.Rule) (bool, error) {
	ip, cp := incumbent.Precedence, candidate.Precedence

	if cp.Greater(ip) {
		return true, nil
	}
	if cp.Less(ip) {
		return false, nil
	}
	return false, &ReduceReduceConflictError{Incumbent: incumbent, Candidate: candidate}
}
