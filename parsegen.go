// Package parsegen is the module's public surface: compile a declarative
// grammar document into a ready-to-run scanner and parser, or load a
// precompiled automaton from its binary table and drive it against any
// token stream.
package parsegen

import (
	"fmt"
	"io"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/grammarfile"
	"github.com/dekarrin/parsegen/internal/lex"
	"github.com/dekarrin/parsegen/internal/parse"
	"github.com/dekarrin/parsegen/internal/table"
	"github.com/dekarrin/parsegen/internal/types"
)

// CompileOptions controls how Compile builds a grammar document into a
// Parser.
type CompileOptions struct {
	// Reducers looks up the Reducer named by a [[rule]]'s reducer key. If
	// nil, grammarfile.BuiltinReducers is used.
	Reducers map[string]grammar.Reducer

	// DisableAutoShift turns off the default policy of resolving an
	// otherwise-unresolved equal-precedence shift/reduce tie by shifting;
	// such a tie then fails compilation with *automaton.ShiftReduceConflictError.
	DisableAutoShift bool
}

// Automaton is a finalized parser: a compiled grammar.Registry and
// automaton.Automaton pair, able to drive any types.TokenStream regardless
// of how the caller produced it, and to serialize itself to the binary
// table format so another program can load it without recompiling the
// grammar.
type Automaton struct {
	reg  *grammar.Registry
	auto *automaton.Automaton
}

// Parse drives stream to completion against a, invoking each rule's
// reducer and returning the semantic value of the grammar's start symbol.
// ctx is threaded through to every context-accepting reducer.
func (a *Automaton) Parse(stream types.TokenStream, ctx any) (any, error) {
	return parse.NewDriver(a.reg, a.auto).Parse(stream, ctx)
}

// Encode serializes a to the binary table format.
func (a *Automaton) Encode() []byte {
	return table.Encode(a.reg, a.auto)
}

// CompileID is the identifier minted for the compilation that produced a,
// used to correlate log lines and table headers back to their source run.
func (a *Automaton) CompileID() string {
	return a.auto.CompileID.String()
}

// DecodeAutomaton reconstructs an Automaton from data previously produced
// by (*Automaton).Encode. reducers must contain every name an encoded
// rule was registered under; a rule whose reducer name is not found is a
// *table.MissingReducerError.
func DecodeAutomaton(data []byte, reducers map[string]grammar.Reducer) (*Automaton, error) {
	reg, auto, err := table.Decode(data, reducers)
	if err != nil {
		return nil, err
	}
	return &Automaton{reg: reg, auto: auto}, nil
}

// Parser pairs a compiled Automaton with the lexer built from the same
// grammar document, so it can scan and parse raw source text directly.
type Parser struct {
	*Automaton
	lx *lex.Lexer
}

// Compile reads a grammar document from r, builds its registry and scan
// conditions, compiles the automaton, and returns a Parser ready to run
// against input text. It fails with *automaton.ShiftReduceConflictError or
// *automaton.ReduceReduceConflictError if precedence does not fully
// disambiguate the grammar.
func Compile(r io.Reader, opts CompileOptions) (*Parser, error) {
	doc, err := grammarfile.Load(r)
	if err != nil {
		return nil, err
	}

	reducers := opts.Reducers
	if reducers == nil {
		reducers = grammarfile.BuiltinReducers()
	}

	reg, specs, err := grammarfile.Build(doc, reducers)
	if err != nil {
		return nil, err
	}

	eofTerminal := ""
	for _, t := range reg.Terminals() {
		if t.EOF {
			eofTerminal = t.Name
			break
		}
	}
	if eofTerminal == "" {
		return nil, fmt.Errorf("parsegen: grammar declares no eof terminal")
	}

	auto, err := automaton.Compile(reg, eofTerminal, automaton.CompileOptions{AutoShift: !opts.DisableAutoShift})
	if err != nil {
		return nil, err
	}

	lx, err := lex.NewLexer(reg, specs)
	if err != nil {
		return nil, err
	}

	return &Parser{Automaton: &Automaton{reg: reg, auto: auto}, lx: lx}, nil
}

// ParseString scans input with p's lexer and parses the resulting token
// stream, starting from the lexer's default scan condition.
func (p *Parser) ParseString(input string, ctx any) (any, error) {
	stream := p.lx.Lex(input, lex.ScanOptions{})
	return p.Automaton.Parse(stream, ctx)
}

// ParseFile is like ParseString but names the source in syntax-error
// locations.
func (p *Parser) ParseFile(filename, contents string, ctx any) (any, error) {
	stream := p.lx.Lex(contents, lex.ScanOptions{Filename: filename})
	return p.Automaton.Parse(stream, ctx)
}
