package automaton

import (
	"fmt"

	"github.com/dekarrin/parsegen/internal/grammar"
)

// ShiftReduceConflictError is raised during merge when precedence does not
// decide between shifting on a token and reducing by the state's bound
// rule: the two rules had equal precedence levels with mismatched
// associativity, or equal precedence with a shared associativity other than
// Left or Right while AutoShift is disabled.
type ShiftReduceConflictError struct {
	Reduce *grammar.Rule
	Shift  *grammar.Rule
	Token  string
}

func (e *ShiftReduceConflictError) Error() string {
	return fmt.Sprintf("shift/reduce conflict on %q: reduce %s or shift into %s",
		e.Token, e.Reduce, e.Shift)
}

// ReduceReduceConflictError is raised during build or merge when two distinct rules
// of equal precedence both claim to be the reduce action for the same
// state.
type ReduceReduceConflictError struct {
	Incumbent *grammar.Rule
	Candidate *grammar.Rule
}

func (e *ReduceReduceConflictError) Error() string {
	return fmt.Sprintf("reduce/reduce conflict: %s or %s", e.Incumbent, e.Candidate)
}
