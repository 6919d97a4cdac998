package lex_test

import (
	"strings"
	"testing"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/lex"
	"github.com/dekarrin/parsegen/internal/types"
	"github.com/stretchr/testify/require"
)

// buildWordLexer wires a single-condition scanner over three terminals:
// NUMBER, WORD, and whitespace (ignorable), with EOF.
func buildWordLexer(t *testing.T) *lex.Lexer {
	t.Helper()

	reg := grammar.NewRegistry()
	must := func(_ *grammar.Terminal, err error) {
		t.Helper()
		require.NoError(t, err)
	}

	// WS tracks newlines explicitly, the same way a caller-supplied action
	// would have to: the default step-by-rune-count behavior has no way to
	// know a matched run of whitespace contains a line break.
	trackNewlines := func(ctx types.ScanContext) (any, bool) {
		text := ctx.Text()
		if n := strings.Count(text, "\n"); n > 0 {
			ctx.Lines(n)
		} else {
			ctx.Step(len(text))
		}
		return nil, false
	}

	must(reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: `[0-9]+`}))
	must(reg.DeclareTerminal("WORD", grammar.TerminalDecl{Pattern: `[a-zA-Z]+`}))
	must(reg.DeclareTerminal("WS", grammar.TerminalDecl{Pattern: `[ \t\n]+`, Ignorable: true, Action: trackNewlines}))
	must(reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true}))

	lx, err := lex.NewLexer(reg, []lex.ContextSpec{
		{Name: "default", Terminals: []string{"NUMBER", "WORD", "WS", "EOF"}},
	})
	require.NoError(t, err)
	return lx
}

// Test_Lexer_actionSuppressesEmission exercises the mechanism the lexer
// itself uses to drop a matched token from the stream: an action's second
// return value. The Ignorable flag is a separate, driver-level concept
// (package parse skips an ignorable lookahead when its state has no branch
// or reduce for it) and
// doesn't by itself suppress emission here.
func Test_Lexer_actionSuppressesEmission(t *testing.T) {
	lx := buildWordLexer(t)
	stream := lx.Lex("ab  12\tcd", lex.ScanOptions{})

	var labels, values []string
	for {
		tok, err := stream.Next()
		require.NoError(t, err)
		if tok.Label == "EOF" {
			break
		}
		labels = append(labels, tok.Label)
		values = append(values, tok.Value.(string))
	}

	require.Equal(t, []string{"WORD", "NUMBER", "WORD"}, labels)
	require.Equal(t, []string{"ab", "12", "cd"}, values)
}

func Test_Lexer_tracksLineAndColumn(t *testing.T) {
	lx := buildWordLexer(t)
	stream := lx.Lex("ab\ncd", lex.ScanOptions{Filename: "in.txt"})

	first, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, 1, first.Loc.Line)
	require.Equal(t, 1, first.Loc.Column)
	require.Equal(t, "in.txt", first.Loc.Filename)

	second, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, "cd", second.Value)
	require.Equal(t, 2, second.Loc.Line)
	require.Equal(t, 1, second.Loc.Column)
}

func Test_Lexer_trailingJunkIsErrorByDefault(t *testing.T) {
	lx := buildWordLexer(t)
	stream := lx.Lex("ab $$ cd", lex.ScanOptions{})

	_, err := stream.Next()
	require.NoError(t, err)

	_, err = stream.Next()
	require.Error(t, err)
}

func Test_Lexer_trailingJunkIgnoredWhenOptedIn(t *testing.T) {
	lx := buildWordLexer(t)
	stream := lx.Lex("ab $$", lex.ScanOptions{IgnoreTrailing: true})

	tok, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, "WORD", tok.Label)

	// The unmatched "$$" simply ends the scan rather than raising
	// TrailingJunkError; no further real token is produced.
	tok, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, "", tok.Label)
}

func Test_Lexer_peekDoesNotConsume(t *testing.T) {
	lx := buildWordLexer(t)
	stream := lx.Lex("ab cd", lex.ScanOptions{})

	peeked, err := stream.Peek()
	require.NoError(t, err)
	require.Equal(t, "ab", peeked.Value)

	next, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, peeked.Value, next.Value)

	second, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, "cd", second.Value)
}
