package table

import "fmt"

// TableFormatError is returned by Decode when the stream's magic bytes or
// format version do not match, or the stream is truncated or otherwise
// structurally corrupt.
type TableFormatError struct {
	Reason string
}

func (e *TableFormatError) Error() string {
	return "table: malformed table file: " + e.Reason
}

// MissingReducerError is returned by Decode when a rule was encoded with a
// non-empty reducer name that does not appear in the reducers map passed to
// Decode. The rule decodes successfully but with no reducer bound, so a
// parse using it would silently produce nil values; Decode treats this as
// fatal instead.
type MissingReducerError struct {
	Rule    string
	Reducer string
}

func (e *MissingReducerError) Error() string {
	return fmt.Sprintf("table: rule %q: no reducer registered under name %q", e.Rule, e.Reducer)
}
