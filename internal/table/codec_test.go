package table_test

import (
	"testing"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/dekarrin/parsegen/internal/parse"
	"github.com/dekarrin/parsegen/internal/table"
	"github.com/dekarrin/parsegen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceStream is a fixed-size, pull-driven types.TokenStream over a slice,
// used by tests that don't need a real scanner.
type sliceStream struct {
	toks []types.Token
	pos  int
}

func (s *sliceStream) Peek() (types.Token, error) { return s.toks[s.pos], nil }
func (s *sliceStream) Next() (types.Token, error) {
	t := s.toks[s.pos]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return t, nil
}
func (s *sliceStream) HasNext() bool { return s.pos < len(s.toks)-1 }

func tok(label string, value any) types.Token {
	return types.Token{Label: label, Value: value}
}

func buildListGrammar(t *testing.T) (*grammar.Registry, *automaton.Automaton) {
	t.Helper()
	reg := grammar.NewRegistry()

	_, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: "[0-9]+"})
	require.NoError(t, err)
	_, err = reg.DeclareTerminal("EOF", grammar.TerminalDecl{EOF: true})
	require.NoError(t, err)

	count := func(values []any) any {
		if len(values) == 0 {
			return 0
		}
		return values[0].(int) + 1
	}

	_, err = reg.AddRule("list", []string{}, grammar.Reducer(count), "empty", nil)
	require.NoError(t, err)
	_, err = reg.AddRule("list", []string{"list", "NUMBER"}, grammar.Reducer(count), "append", nil)
	require.NoError(t, err)

	reg.SetStart("list")

	auto, err := automaton.Compile(reg, "EOF", automaton.DefaultCompileOptions())
	require.NoError(t, err)

	return reg, auto
}

func Test_EncodeDecode_roundTrip(t *testing.T) {
	reg, auto := buildListGrammar(t)

	encoded := table.Encode(reg, auto)
	require.NotEmpty(t, encoded)

	reducers := map[string]grammar.Reducer{
		"empty": func(values []any) any {
			if len(values) == 0 {
				return 0
			}
			return values[0].(int) + 1
		},
		"append": func(values []any) any {
			return values[0].(int) + 1
		},
	}

	decodedReg, decodedAuto, err := table.Decode(encoded, reducers)
	require.NoError(t, err)

	assert.Equal(t, auto.CompileID, decodedAuto.CompileID)
	assert.Equal(t, len(auto.States), len(decodedAuto.States))
	assert.Equal(t, auto.StartSymbol, decodedAuto.StartSymbol)
	assert.Equal(t, auto.EOFTerminal, decodedAuto.EOFTerminal)

	original := parse.NewDriver(reg, auto)
	restored := parse.NewDriver(decodedReg, decodedAuto)

	stream := func() types.TokenStream {
		return &sliceStream{toks: []types.Token{
			tok("NUMBER", 1),
			tok("NUMBER", 2),
			tok("NUMBER", 3),
			tok("EOF", nil),
		}}
	}

	wantVal, err := original.Parse(stream(), nil)
	require.NoError(t, err)
	gotVal, err := restored.Parse(stream(), nil)
	require.NoError(t, err)

	assert.Equal(t, wantVal, gotVal)
	assert.Equal(t, 3, gotVal)
}

// Test_Encode_isDeterministicAcrossRecompiles compiles the same grammar
// twice and checks that the encoded structural content — terminal table,
// rule table, and every state record — is byte-identical, independent of
// map iteration order or any other nondeterminism in the build/merge
// steps. The leading CompileID is excluded from the comparison: it is a
// fresh identifier minted per compilation by design, so two compiles of
// an identical grammar are expected to carry different ones.
func Test_Encode_isDeterministicAcrossRecompiles(t *testing.T) {
	reg1, auto1 := buildListGrammar(t)
	reg2, auto2 := buildListGrammar(t)

	encoded1 := table.Encode(reg1, auto1)
	encoded2 := table.Encode(reg2, auto2)

	const compileIDOffset = 4 + 2 + 16 // magic + version + CompileID
	require.True(t, len(encoded1) > compileIDOffset)
	assert.Equal(t, encoded1[compileIDOffset:], encoded2[compileIDOffset:])
}

func Test_Decode_rejectsBadMagic(t *testing.T) {
	_, _, err := table.Decode([]byte("not a table"), nil)
	require.Error(t, err)
	var formatErr *table.TableFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func Test_Decode_rejectsUnknownReducer(t *testing.T) {
	reg, auto := buildListGrammar(t)
	encoded := table.Encode(reg, auto)

	_, _, err := table.Decode(encoded, map[string]grammar.Reducer{})
	require.Error(t, err)
	var missingErr *table.MissingReducerError
	assert.ErrorAs(t, err, &missingErr)
}

func Test_Decode_rejectsTruncatedStream(t *testing.T) {
	reg, auto := buildListGrammar(t)
	encoded := table.Encode(reg, auto)

	_, _, err := table.Decode(encoded[:len(encoded)/2], nil)
	require.Error(t, err)
	var formatErr *table.TableFormatError
	assert.ErrorAs(t, err, &formatErr)
}
