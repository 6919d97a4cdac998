// Package grammarfile is the grammar front-end (component C6): it reads a
// declarative TOML grammar document and issues the same sequence of calls
// against a grammar.Registry that a programmatic caller would make by
// hand, then hands back the registry plus the scan contexts the document
// described.
package grammarfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// TerminalDoc is one `[[terminal]]` table.
type TerminalDoc struct {
	Name string `toml:"name"`

	// OpenLevel, if non-empty, opens a new precedence level of the named
	// associativity ("left", "right", "nonassoc", or "increase")
	// immediately before this terminal is declared. Leave it empty to
	// declare the terminal at whatever level is currently open (so two
	// terminals sharing a level, like "+" and "-", list OpenLevel only on
	// the first of the pair).
	OpenLevel string `toml:"open_level"`

	Pattern   string `toml:"pattern"`
	Trailing  string `toml:"trailing"`
	ShowName  string `toml:"show_name"`
	Ignorable bool   `toml:"ignorable"`
	Discard   bool   `toml:"discard"`
	EOF       bool   `toml:"eof"`
	Capture   bool   `toml:"capture"`
}

// RuleDoc is one `[[rule]]` table. Components is a whitespace-separated
// list of terminal/non-terminal names, matching the item-notation used
// elsewhere in the toolkit (e.g. "expr PLUS term").
type RuleDoc struct {
	LHS        string `toml:"lhs"`
	Components string `toml:"components"`
	Reducer    string `toml:"reducer"`

	// PrecedenceOverride, if set, pins the rule's effective precedence
	// level instead of inferring it from the rightmost terminal.
	PrecedenceOverride *int `toml:"precedence_override"`
}

func (r RuleDoc) components() []string {
	return strings.Fields(r.Components)
}

// ContextDoc is one `[[context]]` table: a named start condition and the
// ordered terminal list it tries.
type ContextDoc struct {
	Name      string   `toml:"name"`
	Terminals []string `toml:"terminals"`
	Capture   string   `toml:"capture"`
}

// Document is the parsed form of a grammar TOML file.
type Document struct {
	Terminal []TerminalDoc `toml:"terminal"`
	Rule     []RuleDoc     `toml:"rule"`
	Context  []ContextDoc  `toml:"context"`
	Start    string        `toml:"start"`
}

// Load parses a grammar document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grammarfile: %w", err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grammarfile: %w", err)
	}
	return &doc, nil
}
