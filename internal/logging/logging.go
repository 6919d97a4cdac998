// Package logging is the ambient logging surface: a small leveled Logger
// interface so the core compiler packages never import a concrete logging
// library, plus a github.com/pterm/pterm-backed implementation the CLI
// wires in at the outermost layer.
package logging

// Logger is implemented by anything that can record a leveled message with
// structured key/value pairs. kv is an alternating name/value list, the
// same convention the rest of the toolkit uses for its own diagnostic
// formatting.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// noop discards every call. It is the default Logger for library use, so
// embedding this module never prints anything unless the caller opts in.
type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// NoOp returns a Logger that discards everything.
func NoOp() Logger { return noop{} }
