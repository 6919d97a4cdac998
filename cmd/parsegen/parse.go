package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammarfile"
	"github.com/dekarrin/parsegen/internal/lex"
	"github.com/dekarrin/parsegen/internal/logging"
	"github.com/dekarrin/parsegen/internal/parse"
	"github.com/dekarrin/parsegen/internal/table"
)

// runParse always rebuilds the lexer from the grammar document, since the
// binary table format carries no scanner patterns (package table's doc
// comment). When --out names an existing compiled table, the automaton is
// loaded from it instead of recompiled; otherwise the grammar is compiled
// fresh in-process.
func runParse(log logging.Logger, args []string) error {
	if len(args) != 2 {
		return &usageError{msg: "parse requires a grammar file and an input file"}
	}

	grammarFile, err := os.Open(args[0])
	if err != nil {
		return &ioError{msg: fmt.Sprintf("open %s: %s", args[0], err)}
	}
	doc, err := grammarfile.Load(grammarFile)
	grammarFile.Close()
	if err != nil {
		return fmt.Errorf("load grammar: %w", err)
	}

	reducers := grammarfile.BuiltinReducers()
	reg, specs, err := grammarfile.Build(doc, reducers)
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

	var auto *automaton.Automaton
	if *flagOut != "" {
		tableData, err := os.ReadFile(*flagOut)
		if err != nil {
			return &ioError{msg: fmt.Sprintf("read %s: %s", *flagOut, err)}
		}
		_, auto, err = table.Decode(tableData, reducers)
		if err != nil {
			return fmt.Errorf("decode table: %w", err)
		}
		log.Info("table loaded", "path", *flagOut, "compile_id", auto.CompileID.String())
	} else {
		auto, err = automaton.Compile(reg, eofTerminal, automaton.DefaultCompileOptions())
		if err != nil {
			return reportConflict(err)
		}
		log.Info("automaton compiled", "states", len(auto.States), "compile_id", auto.CompileID.String())
	}

	lx, err := lex.NewLexer(reg, specs)
	if err != nil {
		return fmt.Errorf("build lexer: %w", err)
	}

	inputBytes, err := os.ReadFile(args[1])
	if err != nil {
		return &ioError{msg: fmt.Sprintf("read %s: %s", args[1], err)}
	}

	stream := lx.Lex(string(inputBytes), lex.ScanOptions{Filename: args[1]})
	driver := parse.NewDriver(reg, auto)

	result, err := driver.Parse(stream, grammarfile.NewEnv())
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	log.Info("parse complete")

	fmt.Printf("%v\n", result)
	return nil
}
