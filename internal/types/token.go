package types

import "fmt"

// Token is the triple that flows between the scanner and the parser driver:
// a label (the name of a terminal produced by the scanner, or — once a
// reduction has happened — the name of a non-terminal), the semantic value
// attached to it, and the location in source where it began.
type Token struct {
	Label string
	Value any
	Loc   Location
}

// String renders the token for diagnostics and test failure messages.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s=%v", t.Label, t.Loc, t.Value)
}

// TokenStream is a lazy, pull-driven sequence of tokens. Implementations
// produce tokens one at a time as Next or Peek is called; nothing is
// computed ahead of the consumer's request, so abandoning a TokenStream
// mid-parse is always safe.
type TokenStream interface {
	// Next returns the next token and advances the stream.
	Next() (Token, error)

	// Peek returns the next token without advancing the stream. Repeated
	// calls to Peek without an intervening Next return the same token.
	Peek() (Token, error)

	// HasNext reports whether the stream has at least one more token,
	// including the terminal end-of-file token.
	HasNext() bool
}
