package grammar_test

import (
	"testing"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_DeclareTerminal_duplicateIsError(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("A", grammar.TerminalDecl{Pattern: "a"})
	require.NoError(t, err)

	_, err = reg.DeclareTerminal("A", grammar.TerminalDecl{Pattern: "b"})
	require.Error(t, err)
	var dup *grammar.DuplicateTerminalError
	assert.ErrorAs(t, err, &dup)
}

func Test_Registry_OpenPrecedenceLevel_incrementsLevelAndSetsAssoc(t *testing.T) {
	reg := grammar.NewRegistry()
	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	plus, err := reg.DeclareTerminal("PLUS", grammar.TerminalDecl{Pattern: `\+`})
	require.NoError(t, err)
	assert.Equal(t, 1, plus.Precedence.Level)
	assert.Equal(t, grammar.AssocLeft, plus.Precedence.Assoc)

	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	star, err := reg.DeclareTerminal("STAR", grammar.TerminalDecl{Pattern: `\*`})
	require.NoError(t, err)
	assert.Equal(t, 2, star.Precedence.Level)
}

func Test_Registry_OpenPrecedenceLevel_noneBecomesShift(t *testing.T) {
	reg := grammar.NewRegistry()
	reg.OpenPrecedenceLevel(grammar.AssocNone)
	paren, err := reg.DeclareTerminal("LPAREN", grammar.TerminalDecl{Pattern: `\(`})
	require.NoError(t, err)
	assert.Equal(t, grammar.AssocShift, paren.Precedence.Assoc)
}

func Test_Registry_undeclaredTerminal_hasLevelZero(t *testing.T) {
	reg := grammar.NewRegistry()
	number, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: "[0-9]+"})
	require.NoError(t, err)
	assert.Equal(t, 0, number.Precedence.Level)
	assert.Equal(t, grammar.AssocNone, number.Precedence.Assoc)
}

func Test_Registry_AddRule_forwardReferenceIsLegal(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("A", grammar.TerminalDecl{Pattern: "a"})
	require.NoError(t, err)

	// "expr" references "term", which is not declared until after this
	// call returns: AddRule must not reject a forward reference, since
	// mutual recursion between non-terminals is legal.
	_, err = reg.AddRule("expr", []string{"term"}, nil, "", nil)
	require.NoError(t, err)

	_, err = reg.AddRule("term", []string{"A"}, nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, grammar.KindNonTerminal, reg.Kind("term"))
}

func Test_Registry_AddRule_precedenceInferredFromRightmostTerminal(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("NUMBER", grammar.TerminalDecl{Pattern: "[0-9]+"})
	require.NoError(t, err)
	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	_, err = reg.DeclareTerminal("PLUS", grammar.TerminalDecl{Pattern: `\+`})
	require.NoError(t, err)

	rule, err := reg.AddRule("expr", []string{"expr", "PLUS", "NUMBER"}, nil, "", nil)
	require.NoError(t, err)

	// NUMBER was never given an explicit level, so the rightmost terminal
	// with a non-zero level (PLUS) decides the rule's precedence.
	assert.Equal(t, 1, rule.Precedence.Level)
}

func Test_Registry_AddRule_explicitOverrideWins(t *testing.T) {
	reg := grammar.NewRegistry()
	reg.OpenPrecedenceLevel(grammar.AssocLeft)
	_, err := reg.DeclareTerminal("MINUS", grammar.TerminalDecl{Pattern: `-`})
	require.NoError(t, err)

	override := &grammar.Precedence{Level: 9, Assoc: grammar.AssocNonAssoc}
	rule, err := reg.AddRule("expr", []string{"MINUS", "expr"}, nil, "negate", override)
	require.NoError(t, err)

	assert.Equal(t, 9, rule.Precedence.Level)
	assert.Equal(t, grammar.AssocNonAssoc, rule.Precedence.Assoc)
	assert.Equal(t, "negate", rule.ReducerName)
}

func Test_Registry_AddRule_badReducerShapeIsError(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.AddRule("expr", nil, "not a reducer", "", nil)
	assert.ErrorIs(t, err, grammar.ErrBadReducer)
}

func Test_Registry_Rules_indexedInGlobalOrder(t *testing.T) {
	reg := grammar.NewRegistry()
	r1, err := reg.AddRule("a", nil, nil, "", nil)
	require.NoError(t, err)
	r2, err := reg.AddRule("b", nil, nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, r1.Index())
	assert.Equal(t, 1, r2.Index())
	assert.Equal(t, []*grammar.Rule{r1, r2}, reg.Rules())
}

func Test_Registry_Kind(t *testing.T) {
	reg := grammar.NewRegistry()
	_, err := reg.DeclareTerminal("A", grammar.TerminalDecl{Pattern: "a"})
	require.NoError(t, err)
	_, err = reg.AddRule("expr", []string{"A"}, nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, grammar.KindTerminal, reg.Kind("A"))
	assert.Equal(t, grammar.KindNonTerminal, reg.Kind("expr"))
	assert.Equal(t, grammar.Unknown, reg.Kind("nope"))
}

func Test_Registry_SetStart_roundTrips(t *testing.T) {
	reg := grammar.NewRegistry()
	assert.Equal(t, "", reg.Start())
	reg.SetStart("expr")
	assert.Equal(t, "expr", reg.Start())
}
