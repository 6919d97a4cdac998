package types

// ScanContext is the interface a terminal's scanner Action runs against. It
// is the only way an action may touch scanner state; actions must not reach
// around it to mutate the scanner directly.
type ScanContext interface {
	// Text is the substring matched by this action's terminal.
	Text() string

	// Location is the position of the start of the match.
	Location() Location

	// Value is the opaque user value associated with the current start
	// condition (the value passed to Enter when the condition was pushed,
	// or most recently set by SetValue).
	Value() any

	// SetValue replaces the current start condition's opaque user value,
	// letting an action accumulate state (e.g. a captured string body)
	// across repeated matches within the same condition.
	SetValue(v any)

	// Step advances the location by n columns. Passing a negative n is a
	// caller error.
	Step(n int)

	// Lines advances the location by n lines, resetting the column.
	Lines(n int)

	// Enter pushes a new scanner context named condName, recording value as
	// the new context's opaque user value.
	Enter(condName string, value any)

	// Leave marks the current context to be popped once the action
	// returns. It is an error to call Leave on the outermost context.
	Leave()
}

// ScanAction is the function a terminal runs when its pattern matches. It
// returns the semantic value to attach to the emitted token and whether a
// token should be emitted at all; returning emit=false silently consumes the
// match (used for terminals that only drive state, e.g. comment openers).
type ScanAction func(ctx ScanContext) (value any, emit bool)
