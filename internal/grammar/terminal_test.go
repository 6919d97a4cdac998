package grammar_test

import (
	"testing"

	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Terminal_DisplayName_fallsBackToName(t *testing.T) {
	term := &grammar.Terminal{Name: "PLUS"}
	assert.Equal(t, "PLUS", term.DisplayName())
}

func Test_Terminal_DisplayName_prefersShowName(t *testing.T) {
	term := &grammar.Terminal{Name: "PLUS", ShowName: "'+'"}
	assert.Equal(t, "'+'", term.DisplayName())
}
