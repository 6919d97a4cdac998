package lex

import "github.com/dekarrin/parsegen/internal/types"

type activeContext struct {
	cond     *Condition
	value    any
	entryLoc types.Location
}

// stream is the lazy, cancellable types.TokenStream produced by Lexer.Lex.
// It holds the one piece of state the run loop needs beyond the input
// itself: a non-empty stack of active contexts and the shared input
// position/location.
type stream struct {
	lx    *Lexer
	input string
	opts  ScanOptions

	pos   int
	loc   types.Location
	stack []*activeContext
	leave bool

	done       bool
	pendingErr error

	buffered    types.Token
	haveBuffer  bool
	bufferedErr error
}

// Lex scans input and returns a lazy token stream driven by the conditions
// this Lexer was built with.
func (lx *Lexer) Lex(input string, opts ScanOptions) types.TokenStream {
	s := &stream{
		lx:    lx,
		input: input,
		opts:  opts,
		loc:   types.NewLocation(opts.Filename),
	}
	s.stack = append(s.stack, &activeContext{cond: lx.conditions[lx.defaultCtx]})
	return s
}

func (s *stream) Peek() (types.Token, error) {
	if !s.haveBuffer {
		s.buffered, s.bufferedErr = s.advance()
		s.haveBuffer = true
	}
	return s.buffered, s.bufferedErr
}

func (s *stream) Next() (types.Token, error) {
	tok, err := s.Peek()
	s.haveBuffer = false
	return tok, err
}

func (s *stream) HasNext() bool {
	if s.haveBuffer {
		return true
	}
	if s.done {
		return false
	}
	tok, err := s.Peek()
	_ = tok
	return s.haveBuffer || err != nil
}

// advance runs the scanner loop until it can return exactly one
// token, a trailing-junk error, or a natural end of stream.
func (s *stream) advance() (types.Token, error) {
	for {
		if s.pendingErr != nil {
			err := s.pendingErr
			s.pendingErr = nil
			return types.Token{}, err
		}

		// Step 1: a prior action called Leave; pop the context and, if it
		// has a registered capture terminal, emit its token now.
		if s.leave {
			s.leave = false
			popped := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]

			if popped.cond.captureTerm != nil {
				value := popped.value
				return types.Token{
					Label: popped.cond.captureTerm.Name,
					Value: value,
					Loc:   popped.entryLoc,
				}, nil
			}
			continue
		}

		top := s.stack[len(s.stack)-1]

		// Step 2: end of input.
		if s.pos >= len(s.input) {
			tok := types.Token{Label: top.cond.eofTerminal.Name, Loc: s.loc}
			if s.opts.EOFStop {
				s.done = true
			}
			return tok, nil
		}

		// Step 3: match the top condition's regex at the current position.
		remainder := s.input[s.pos:]
		term, text, end, ok := top.cond.match(remainder)
		if !ok {
			if s.opts.IgnoreTrailing {
				s.done = true
				return types.Token{}, nil
			}
			return types.Token{}, &TrailingJunkError{Loc: s.loc}
		}

		// Step 4: run the terminal's action.
		matchLoc := s.loc
		ctx := &scanContext{s: s, text: text, value: top.value}

		var value any
		emit := true
		if term.Action != nil {
			value, emit = term.Action(ctx)
		} else {
			ctx.Step(len(text))
			value = text
		}

		s.pos += end

		if s.pendingErr != nil {
			err := s.pendingErr
			s.pendingErr = nil
			return types.Token{}, err
		}

		if term.Discard || !emit {
			continue
		}

		return types.Token{Label: term.Name, Value: value, Loc: matchLoc}, nil
	}
}
