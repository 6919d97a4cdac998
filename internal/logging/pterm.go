package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ptermLogger backs Logger with pterm's colored level printers, the same
// ones used for interactive CLI output elsewhere in the retrieved pack:
// pterm.Debug/Info/Warning/Error. kv pairs are rendered as "key=value"
// suffixes in declaration order.
type ptermLogger struct {
	compileID string
}

// NewPTerm returns a Logger backed by pterm. compileID, if non-empty, is
// appended to every line so log output can be correlated back to the
// compilation that produced it.
func NewPTerm(compileID string) Logger {
	return &ptermLogger{compileID: compileID}
}

func (l *ptermLogger) line(msg string, kv []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if l.compileID != "" {
		fmt.Fprintf(&b, " compile_id=%s", l.compileID)
	}
	return b.String()
}

func (l *ptermLogger) Debug(msg string, kv ...any) { pterm.Debug.Println(l.line(msg, kv)) }
func (l *ptermLogger) Info(msg string, kv ...any)  { pterm.Info.Println(l.line(msg, kv)) }
func (l *ptermLogger) Warn(msg string, kv ...any)  { pterm.Warning.Println(l.line(msg, kv)) }
func (l *ptermLogger) Error(msg string, kv ...any) { pterm.Error.Println(l.line(msg, kv)) }
