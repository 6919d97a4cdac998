package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/calc"
	"github.com/dekarrin/parsegen/internal/lex"
	"github.com/dekarrin/parsegen/internal/logging"
	"github.com/dekarrin/parsegen/internal/parse"
	"github.com/dekarrin/parsegen/internal/table"
)

// runRepl starts an interactive calculator session. With no table.bin
// argument it builds the worked calculator grammar in-process; given one, it
// loads that table's automaton instead, still driving it with the
// calculator's own lexer and Context since a table carries no reducers or
// scanner patterns of its own.
func runRepl(log logging.Logger, args []string) error {
	if len(args) > 1 {
		return &usageError{msg: "repl takes at most one table file argument"}
	}

	reg, err := calc.Registry()
	if err != nil {
		return fmt.Errorf("build calculator grammar: %w", err)
	}

	var auto *automaton.Automaton
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return &ioError{msg: fmt.Sprintf("read %s: %s", args[0], err)}
		}
		_, auto, err = table.Decode(data, calc.BuiltinReducers())
		if err != nil {
			return fmt.Errorf("decode table: %w", err)
		}
		log.Info("table loaded", "path", args[0], "compile_id", auto.CompileID.String())
	} else {
		auto, err = automaton.Compile(reg, "EOF", automaton.DefaultCompileOptions())
		if err != nil {
			return reportConflict(err)
		}
		log.Info("automaton compiled", "states", len(auto.States), "compile_id", auto.CompileID.String())
	}

	lx, err := lex.NewLexer(reg, calc.ContextSpecs())
	if err != nil {
		return fmt.Errorf("build lexer: %w", err)
	}
	driver := parse.NewDriver(reg, auto)

	rl, err := readline.NewEx(&readline.Config{Prompt: "calc> "})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}
	defer rl.Close()

	ctx := calc.NewContext()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stream := lx.Lex(line, lex.ScanOptions{})
		result, err := driver.Parse(stream, ctx)
		if err != nil {
			log.Warn("eval failed", "input", line)
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			continue
		}
		fmt.Println(result)
	}
}
