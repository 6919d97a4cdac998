package lex

import "github.com/dekarrin/parsegen/internal/types"

// scanContext is the concrete types.ScanContext a terminal's Action runs
// against. It is valid only for the duration of that single Action call.
type scanContext struct {
	s     *stream
	text  string
	value any
}

func (c *scanContext) Text() string          { return c.text }
func (c *scanContext) Location() types.Location { return c.s.loc }
func (c *scanContext) Value() any { return c.value }

func (c *scanContext) SetValue(v any) {
	c.value = v
	c.s.stack[len(c.s.stack)-1].value = v
}

func (c *scanContext) Step(n int) {
	c.s.loc.Step(n)
}

func (c *scanContext) Lines(n int) {
	c.s.loc.Lines(n)
}

func (c *scanContext) Enter(condName string, value any) {
	cond, ok := c.s.lx.conditions[condName]
	if !ok {
		panic("lex: Enter: unknown scan context " + condName)
	}
	c.s.stack = append(c.s.stack, &activeContext{
		cond:     cond,
		value:    value,
		entryLoc: c.s.loc,
	})
}

func (c *scanContext) Leave() {
	if len(c.s.stack) == 1 {
		c.s.pendingErr = &LeaveRootError{}
		return
	}
	c.s.leave = true
}
