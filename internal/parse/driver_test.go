package parse_test

import (
	"io"
	"testing"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/parse"
	"github.com/dekarrin/parsegen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceStream is a minimal types.TokenStream over a fixed token slice,
// standing in for a real lex.Lexer so the driver can be exercised in
// isolation from scanning.
type sliceStream struct {
	toks []types.Token
	pos  int
}

func (s *sliceStream) Peek() (types.Token, error) {
	if s.pos >= len(s.toks) {
		return types.Token{}, io.EOF
	}
	return s.toks[s.pos], nil
}

func (s *sliceStream) Next() (types.Token, error) {
	tok, err := s.Peek()
	if err == nil {
		s.pos++
	}
	return tok, err
}

func (s *sliceStream) HasNext() bool {
	return s.pos < len(s.toks)
}

func tok(label, value string) types.Token {
	return types.Token{Label: label, Value: value}
}

// buildSumGrammar compiles "sum -> sum PLUS NUMBER | NUMBER" with WS
// declared Ignorable (but never scanned from text, since there is no real
// scanner here) so the driver's own lookahead-skipping
// path can be exercised directly by interleaving WS tokens into the
// stream by hand.
func buildSumGrammar(t *testing.T) (*grammar.Registry, *automaton.Automaton) {
	t.Helper()

	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: "[0-9]+"})
	require.NoError(t, err)
	_, err = reg.DeclareTerminal("PLUS", grammar.TerminalDecl{Pattern: `\+`})
	require.NoError(t, err)
	_, err = reg.DeclareTerminal("WS", grammar.TerminalDecl{Pattern: `\s+`, Ignorable: true})
	require.NoError(t, err)
	_, err = reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true})
	require.NoError(t, err)

	number := func(values []any) any { return values[0] }
	sum := func(values []any) any { return values[0].(int) + values[2].(int) }

	_, err = reg.AddRule("sum", []string{"NUMBER"}, grammar.Reducer(number), "number", nil)
	require.NoError(t, err)
	_, err = reg.AddRule("sum", []string{"sum", "PLUS", "NUMBER"}, grammar.Reducer(sum), "sum", nil)
	require.NoError(t, err)
	reg.SetStart("sum")

	auto, err := automaton.Compile(reg, "EOF", automaton.DefaultCompileOptions())
	require.NoError(t, err)
	return reg, auto
}

func intToken(n int) types.Token {
	return types.Token{Label: "NUMBER", Value: n}
}

func Test_Driver_Parse_shiftReduceAccumulates(t *testing.T) {
	reg, auto := buildSumGrammar(t)
	driver := parse.NewDriver(reg, auto)

	stream := &sliceStream{toks: []types.Token{
		intToken(1), tok("PLUS", "+"), intToken(2), tok("PLUS", "+"), intToken(3),
		tok("EOF", ""),
	}}

	got, err := driver.Parse(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func Test_Driver_Parse_skipsIgnorableLookahead(t *testing.T) {
	reg, auto := buildSumGrammar(t)
	driver := parse.NewDriver(reg, auto)

	// A WS token sits where the driver's current state has no branch and
	// no reduce rule; it must be silently skipped rather than raising a
	// SyntaxError.
	stream := &sliceStream{toks: []types.Token{
		intToken(1), tok("WS", " "), tok("PLUS", "+"), tok("WS", " "), intToken(2),
		tok("EOF", ""),
	}}

	got, err := driver.Parse(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func Test_Driver_Parse_unexpectedTokenIsSyntaxError(t *testing.T) {
	reg, auto := buildSumGrammar(t)
	driver := parse.NewDriver(reg, auto)

	stream := &sliceStream{toks: []types.Token{
		intToken(1), tok("PLUS", "+"), tok("PLUS", "+"),
	}}

	_, err := driver.Parse(stream, nil)
	require.Error(t, err)

	var syntaxErr *parse.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "PLUS", syntaxErr.Observed)
	assert.NotEmpty(t, syntaxErr.Expected)
}

func Test_Driver_Parse_contextThreadedToReducer(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: "[0-9]+"})
	require.NoError(t, err)
	_, err = reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true})
	require.NoError(t, err)

	type env struct{ seen int }
	record := func(ctx any, values []any) any {
		e := ctx.(*env)
		e.seen = values[0].(int)
		return e.seen
	}
	_, err = reg.AddRule("sum", []string{"NUMBER"}, grammar.Reducer(record), "record", nil)
	require.NoError(t, err)
	reg.SetStart("sum")

	auto, err := automaton.Compile(reg, "EOF", automaton.DefaultCompileOptions())
	require.NoError(t, err)

	driver := parse.NewDriver(reg, auto)
	stream := &sliceStream{toks: []types.Token{intToken(7), tok("EOF", "")}}

	e := &env{}
	got, err := driver.Parse(stream, e)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 7, e.seen)
}
