package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/grammarfile"
	"github.com/dekarrin/parsegen/internal/logging"
	"github.com/dekarrin/parsegen/internal/table"
)

func runCompile(log logging.Logger, args []string) error {
	if len(args) != 1 {
		return &usageError{msg: "compile requires exactly one grammar file argument"}
	}
	if *flagOut == "" {
		return &usageError{msg: "compile requires --out/-o"}
	}

	f, err := os.Open(args[0])
	if err != nil {
		return &ioError{msg: fmt.Sprintf("open %s: %s", args[0], err)}
	}
	defer f.Close()

	doc, err := grammarfile.Load(f)
	if err != nil {
		return fmt.Errorf("load grammar: %w", err)
	}
	log.Info("grammar loaded", "terminals", len(doc.Terminal), "rules", len(doc.Rule))

	reg, _, err := grammarfile.Build(doc, grammarfile.BuiltinReducers())
	if err != nil {
		return fmt.Errorf("build grammar: %w", err)
	}

	eofTerminal := ""
	for _, t := range reg.Terminals() {
		if t.EOF {
			eofTerminal = t.Name
			break
		}
	}
	if eofTerminal == "" {
		return &usageError{msg: "grammar declares no eof terminal"}
	}

	auto, err := automaton.Compile(reg, eofTerminal, automaton.DefaultCompileOptions())
	if err != nil {
		return reportConflict(err)
	}
	log.Info("automaton compiled", "states", len(auto.States), "compile_id", auto.CompileID.String())

	data := table.Encode(reg, auto)
	if err := os.WriteFile(*flagOut, data, 0o644); err != nil {
		return &ioError{msg: fmt.Sprintf("write %s: %s", *flagOut, err)}
	}
	log.Info("table written", "path", *flagOut, "bytes", len(data))

	return nil
}

// reportConflict renders a shift/reduce or reduce/reduce conflict as a
// two-column table naming the competing rules, the same way the teacher
// prints its own tabular diagnostics.
func reportConflict(err error) error {
	var rows [][]string
	switch e := err.(type) {
	case *automaton.ShiftReduceConflictError:
		rows = [][]string{
			{"token", e.Token},
			{"reduce", e.Reduce.String()},
			{"shift into", e.Shift.String()},
		}
	case *automaton.ReduceReduceConflictError:
		rows = [][]string{
			{"incumbent", e.Incumbent.String()},
			{"candidate", e.Candidate.String()},
		}
	case *grammar.UndeclaredComponentError, *grammar.MissingStartError:
		return err
	default:
		return err
	}

	out := rosed.Edit(err.Error() + "\n").
		InsertTableOpts(1, rows, 60, rosed.Options{NoTrailingLineSeparators: true}).
		String()
	fmt.Fprintln(os.Stderr, out)
	return err
}
