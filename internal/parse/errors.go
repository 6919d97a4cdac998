// Package parse is the parser driver (component C5): an LR-style loop that
// consumes a types.TokenStream against a compiled automaton.Automaton,
// shifting, reducing, invoking user reducers, and reporting a SyntaxError
// when neither is possible.
package parse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/parsegen/internal/types"
)

// SyntaxError is raised when the parser's current state has no branch for
// the lookahead token, no reduce rule, and the lookahead is not an
// ignorable terminal.
type SyntaxError struct {
	Loc      types.Location
	Observed string
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: unexpected %s; %s", e.Loc, e.Observed, formatExpected(e.Expected))
}

func formatExpected(names []string) string {
	switch len(names) {
	case 0:
		return "no further input was expected"
	case 1:
		return "expecting " + names[0]
	case 2:
		return fmt.Sprintf("expecting %s or %s", names[0], names[1])
	default:
		return fmt.Sprintf("expecting one of [%s]", strings.Join(names, " "))
	}
}
