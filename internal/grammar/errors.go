package grammar

import (
	"errors"
	"fmt"
)

// ErrBadReducer is returned by AddRule when a reducer value does not match
// either of the two shapes package-doc'd on Reducer.
var ErrBadReducer = errors.New("reducer must be func(values []any) any or func(ctx any, values []any) any")

// DuplicateTerminalError is returned by DeclareTerminal when name has
// already been declared in this Registry.
type DuplicateTerminalError struct {
	Name string
}

func (e *DuplicateTerminalError) Error() string {
	return fmt.Sprintf("terminal %q is already declared", e.Name)
}

// MissingStartError is returned at compile time when no start symbol was
// declared, or the name given to SetStart refers to a terminal rather than
// a non-terminal.
type MissingStartError struct {
	Name string
}

func (e *MissingStartError) Error() string {
	if e.Name == "" {
		return "no start symbol declared"
	}
	return fmt.Sprintf("start symbol %q is not a declared non-terminal", e.Name)
}

// UndeclaredComponentError is returned at compile time when a rule's
// production references a name that is neither a declared terminal nor ever
// the left-hand side of a rule. It is not raised by AddRule itself, since a
// component may legitimately name a non-terminal whose own rules are added
// later (mutual recursion).
type UndeclaredComponentError struct {
	Rule      string
	Component string
}

func (e *UndeclaredComponentError) Error() string {
	return fmt.Sprintf("rule %q references undeclared symbol %q", e.Rule, e.Component)
}
