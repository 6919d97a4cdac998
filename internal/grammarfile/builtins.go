package grammarfile

import (
	"strconv"

	"github.com/dekarrin/parsegen/internal/grammar"
)

// Env is the parse context threaded through the builtin "assign" reducer: a
// variable table shared across one parse, the same way the calculator
// grammar's own Context is shared across a REPL session.
type Env struct {
	Names map[string]int
}

// NewEnv returns an Env with an empty variable table.
func NewEnv() *Env {
	return &Env{Names: make(map[string]int)}
}

func toInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case string:
		n, _ := strconv.Atoi(x)
		return n
	default:
		return 0
	}
}

// BuiltinReducers returns the small named-reducer table available to a
// grammar document's [[rule]] entries by name, for the demo grammar shipped
// with the module. A caller embedding this package in a program with its
// own grammar supplies its own reducers through the programmatic
// grammar.Registry API instead of this table.
func BuiltinReducers() map[string]grammar.Reducer {
	return map[string]grammar.Reducer{
		// identity parses a scanned NUMBER's text into an int, or passes any
		// other single value through unchanged.
		"identity": func(values []any) any {
			if len(values) == 0 {
				return nil
			}
			if s, ok := values[0].(string); ok {
				if n, err := strconv.Atoi(s); err == nil {
					return n
				}
			}
			return values[0]
		},

		// pass-through returns a bracketing rule's interior value: the sole
		// value of a one-component rule, or the middle value of a
		// three-component rule like "( expr )".
		"pass-through": func(values []any) any {
			switch len(values) {
			case 1:
				return values[0]
			case 3:
				return values[1]
			default:
				return nil
			}
		},

		// sum adds the first and last component values, so it serves both a
		// binary "a + b" rule and any rule whose interesting operands are its
		// endpoints.
		"sum": func(values []any) any {
			return toInt(values[0]) + toInt(values[len(values)-1])
		},

		"product": func(values []any) any {
			return toInt(values[0]) * toInt(values[len(values)-1])
		},

		// assign expects a "NAME = expr"-shaped rule: it records the
		// assigned value under the first component's name in the Env
		// threaded through as ctx, and yields that value as the rule's own.
		"assign": func(ctx any, values []any) any {
			env, _ := ctx.(*Env)
			name, _ := values[0].(string)
			val := toInt(values[len(values)-1])
			if env != nil {
				env.Names[name] = val
			}
			return val
		},
	}
}
