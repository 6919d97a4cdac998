/*
Parsegen compiles declarative TOML grammar documents into binary parse
tables and drives them against input text.

Usage:

	parsegen compile <grammar.toml> -o <table.bin>
	parsegen parse <grammar.toml> <input-file> [-o <table.bin>]
	parsegen repl [table.bin]

The subcommands are:

	compile
		Reads a grammar document, builds its automaton, and writes the
		compiled table to the path given by --out/-o. Reports any
		shift/reduce or reduce/reduce conflict found along the way,
		naming the offending rules.

	parse
		Scans and parses the named input file against the given
		grammar document, and prints the resulting semantic value. A
		binary table carries no scanner patterns, so the lexer is
		always built from the grammar document; if --out/-o names an
		existing compiled table, its automaton is loaded instead of
		recompiled, skipping the conflict-resolution step.

	repl
		Starts an interactive calculator session. With no table.bin
		argument it uses the built-in worked calculator grammar
		(package calc); given a table.bin it loads that table instead,
		threading a calc.Context through as the parse context so
		assignment and name lookup still work for grammars built from
		the same reducer set.

The flags are:

	-v, --verbose
		Log INFO-level progress and warnings. Without it nothing is
		logged; errors are still printed to stderr.

	-o, --out PATH
		For compile, the path to write the compiled table to
		(required). For parse, an optional precompiled table to load
		instead of recompiling the grammar document.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/parsegen/internal/logging"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitCompileError
	ExitParseError
	ExitIOError
)

var (
	flagVerbose = pflag.BoolP("verbose", "v", false, "Log INFO-level progress and warnings (errors are printed either way).")
	flagOut     = pflag.StringP("out", "o", "", "Compile: path to write the compiled table to. Parse: optional precompiled table to load.")
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			os.Exit(ExitCompileError)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	var log logging.Logger = logging.NoOp()
	if *flagVerbose {
		log = logging.NewPTerm("")
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: expected a subcommand: compile, parse, or repl")
		returnCode = ExitUsageError
		return
	}

	var err error
	switch args[0] {
	case "compile":
		err = runCompile(log, args[1:])
	case "parse":
		err = runParse(log, args[1:])
	case "repl":
		err = runRepl(log, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown subcommand %q\n", args[0])
		returnCode = ExitUsageError
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = exitCodeFor(err)
	}
}

func exitCodeFor(err error) int {
	switch err.(type) {
	case *usageError:
		return ExitUsageError
	case *ioError:
		return ExitIOError
	}
	return ExitParseError
}

// usageError marks a command-line usage mistake (missing/extra args).
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// ioError marks a filesystem failure reading or writing a named path.
type ioError struct{ msg string }

func (e *ioError) Error() string { return e.msg }
