package grammar

import "github.com/dekarrin/parsegen/internal/types"

// Terminal is an atomic token class produced by the scanner. Terminals are
// interned by name: within one Registry, declaring the same name twice is
// an error (see DeclareTerminal).
type Terminal struct {
	// Name is the interned terminal name.
	Name string

	// ShowName, if non-empty, is used instead of Name when the terminal
	// appears in a syntax-error "expecting ..." diagnostic.
	ShowName string

	// Pattern is the terminal's regular expression, in the dialect
	// understood by Go's regexp package. It is required unless the
	// terminal is EOF, Capture, or Discard.
	Pattern string

	// Trailing, if non-empty, is appended to Pattern as a zero-width
	// lookahead assertion, expressed as `(?=Trailing)` at compile time.
	Trailing string

	// Precedence is this terminal's declared precedence, defaulted to
	// level 0 / AssocNone when the terminal is declared outside of any
	// open precedence level.
	Precedence Precedence

	// Ignorable marks a terminal the parser driver may silently discard
	// when it would otherwise block progress (see package parse).
	Ignorable bool

	// Discard marks a terminal whose scanner action result is dropped
	// without ever becoming a token, regardless of what the action
	// returns.
	Discard bool

	// EOF marks the single terminal used as the end-of-file sentinel for
	// the context(s) it appears in. At most one terminal registry-wide may
	// be the EOF terminal for a given scan condition.
	EOF bool

	// Capture marks a terminal as a capture terminal: it carries no
	// pattern of its own and is never matched directly. Instead it is
	// named by a Context's capture field and emitted when that context is
	// left (see package lex).
	Capture bool

	// Action is the scanner action run when Pattern matches. A nil Action
	// with Discard unset defaults to emitting the matched text verbatim.
	Action types.ScanAction
}

// DisplayName returns ShowName if set, else Name.
func (t *Terminal) DisplayName() string {
	if t.ShowName != "" {
		return t.ShowName
	}
	return t.Name
}
