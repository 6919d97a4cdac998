package lex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/parsegen/internal/grammar"
)

// ContextSpec declares one named start condition: the ordered set of
// terminals it tries (which must include exactly one EOF-flagged
// terminal), and the name of the terminal emitted when this condition is
// left via Context.Leave (empty if this condition is never entered as a
// sub-condition).
type ContextSpec struct {
	Name      string
	Terminals []string
	Capture   string
}

// Condition is a compiled start condition: one alternation regex over all
// of its matchable terminals, preserving declaration order so that on a tie
// the first-declared terminal wins, plus the bookkeeping needed to dispatch
// a match back to the right terminal.
type Condition struct {
	Name string

	regex        *regexp.Regexp
	groupNames   []string // aligned with regex.SubexpNames(); "" where not a terminal group
	terminals    map[string]*grammar.Terminal
	eofTerminal  *grammar.Terminal
	captureTerm  *grammar.Terminal
}

func compileCondition(reg *grammar.Registry, spec ContextSpec) (*Condition, error) {
	cond := &Condition{
		Name:      spec.Name,
		terminals: make(map[string]*grammar.Terminal),
	}

	var alts []string

	for _, name := range spec.Terminals {
		t, ok := reg.Terminal(name)
		if !ok {
			return nil, fmt.Errorf("scan context %q references undeclared terminal %q", spec.Name, name)
		}
		cond.terminals[name] = t

		if t.EOF {
			if cond.eofTerminal != nil {
				return nil, fmt.Errorf("scan context %q declares more than one eof terminal", spec.Name)
			}
			cond.eofTerminal = t
			continue
		}
		if t.Capture {
			// Capture terminals never appear in the alternation; they are
			// matched only implicitly, when their owning context is left.
			continue
		}
		if t.Pattern == "" {
			if t.Discard {
				continue
			}
			return nil, &MissingPatternError{Terminal: name}
		}

		alt := fmt.Sprintf("(?P<%s>%s)", name, t.Pattern)
		if t.Trailing != "" {
			alt += fmt.Sprintf("(?=%s)", t.Trailing)
		}
		alts = append(alts, alt)
	}

	if cond.eofTerminal == nil {
		return nil, &MissingEOFError{Context: spec.Name}
	}

	if spec.Capture != "" {
		ct, ok := reg.Terminal(spec.Capture)
		if !ok {
			return nil, fmt.Errorf("scan context %q: capture terminal %q not declared", spec.Name, spec.Capture)
		}
		cond.captureTerm = ct
	}

	if len(alts) > 0 {
		pattern := "^(?:" + strings.Join(alts, "|") + ")"
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("scan context %q: %w", spec.Name, err)
		}
		cond.regex = re
		cond.groupNames = re.SubexpNames()
	}

	return cond, nil
}

// match attempts to match the condition's regex against remainder, the
// unconsumed rest of the input. It returns the matched terminal, the matched
// text, and the byte offset of the end of the match within remainder, or
// ok=false if nothing matched.
func (c *Condition) match(remainder string) (t *grammar.Terminal, text string, end int, ok bool) {
	if c.regex == nil {
		return nil, "", 0, false
	}

	loc := c.regex.FindStringSubmatchIndex(remainder)
	if loc == nil {
		return nil, "", 0, false
	}

	for i := 1; i < len(loc)/2; i++ {
		start, stop := loc[2*i], loc[2*i+1]
		if start == -1 {
			continue
		}
		name := c.groupNames[i]
		term := c.terminals[name]
		return term, remainder[start:stop], loc[1], true
	}

	return nil, "", 0, false
}
