// Package lex is the scanner runtime (component C4): it compiles each named
// start condition's terminals into a single alternation regex and drives a
// stack of such conditions against input text, producing a lazy
// types.TokenStream for package parse to consume.
package lex

import (
	"fmt"

	"github.com/dekarrin/parsegen/internal/types"
)

// MissingPatternError is raised at scanner build time when a terminal that
// is not EOF, not Capture, and not Discard has no Pattern.
type MissingPatternError struct {
	Terminal string
}

func (e *MissingPatternError) Error() string {
	return fmt.Sprintf("terminal %q has no pattern and is not eof, capture, or discard", e.Terminal)
}

// MissingEOFError is raised at scanner build time when a context's
// terminal list contains no terminal flagged EOF.
type MissingEOFError struct {
	Context string
}

func (e *MissingEOFError) Error() string {
	return fmt.Sprintf("scan context %q declares no eof terminal", e.Context)
}

// TrailingJunkError is raised at scan time when the input is not fully
// consumed and ignoreTrailing was not requested.
type TrailingJunkError struct {
	Loc types.Location
}

func (e *TrailingJunkError) Error() string {
	return fmt.Sprintf("%s: trailing junk in input", e.Loc)
}

// LeaveRootError is raised when a scanner action calls Leave on the
// outermost (initial) scan context.
type LeaveRootError struct{}

func (e *LeaveRootError) Error() string {
	return "cannot leave the outermost scan context"
}
