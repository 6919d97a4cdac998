package parsegen_test

import (
	"strings"
	"testing"

	"github.com/dekarrin/parsegen"
	"github.com/dekarrin/parsegen/internal/grammarfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sumDoc = `
start = "sum"

[[terminal]]
name = "NUMBER"
pattern = "[0-9]+"

[[terminal]]
name = "WS"
pattern = "[ \t]+"
ignorable = true

[[terminal]]
name = "EOF"
eof = true

[[terminal]]
open_level = "left"
name = "PLUS"
pattern = "\\+"

[[rule]]
lhs = "sum"
components = "sum PLUS NUMBER"
reducer = "sum"

[[rule]]
lhs = "sum"
components = "NUMBER"
reducer = "identity"

[[context]]
name = "default"
terminals = ["NUMBER", "WS", "PLUS", "EOF"]
`

func Test_Compile_parsesInputViaParseString(t *testing.T) {
	p, err := parsegen.Compile(strings.NewReader(sumDoc), parsegen.CompileOptions{})
	require.NoError(t, err)

	got, err := p.ParseString("1 + 2 + 3", nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func Test_Compile_encodeDecodeRoundTrips(t *testing.T) {
	p, err := parsegen.Compile(strings.NewReader(sumDoc), parsegen.CompileOptions{})
	require.NoError(t, err)

	data := p.Encode()

	loaded, err := parsegen.DecodeAutomaton(data, grammarfile.BuiltinReducers())
	require.NoError(t, err)
	assert.Equal(t, p.CompileID(), loaded.CompileID())
}
