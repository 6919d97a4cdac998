package table

import (
	"bytes"
	"fmt"

	"github.com/dekarrin/parsegen/internal/automaton"
	"github.com/dekarrin/parsegen/internal/grammar"
	"github.com/google/uuid"
)

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Encode walks auto's state arena in index order and writes the header,
// name tables, rule table, and per-state records described in this
// package's doc comment. reg must be the registry auto was compiled from.
func Encode(reg *grammar.Registry, auto *automaton.Automaton) []byte {
	w := &writer{}

	w.raw(magic[:])
	w.u16(formatVersion)
	w.raw(auto.CompileID[:])

	terminals := reg.Terminals()
	w.u32(uint32(len(terminals)))
	for _, t := range terminals {
		w.str(t.Name)
		w.str(t.ShowName)
		w.u8(boolByte(t.EOF))
		w.u8(boolByte(t.Ignorable))
		w.u8(boolByte(t.Discard))
		w.u8(boolByte(t.Capture))
		w.i32(int32(t.Precedence.Level))
		w.u8(uint8(t.Precedence.Assoc))
	}

	rules := reg.Rules()
	w.u32(uint32(len(rules)))
	for _, r := range rules {
		w.str(r.NonTerminal)
		w.strSlice(r.Production)
		w.i32(int32(r.Precedence.Level))
		w.u8(uint8(r.Precedence.Assoc))
		w.str(r.ReducerName)
	}

	w.str(auto.StartSymbol)
	w.str(auto.EOFTerminal)

	w.u32(uint32(len(auto.States)))
	w.u32(uint32(auto.Start.Index()))
	for _, s := range auto.States {
		bindIdx := int32(-1)
		if br := s.BindRule(); br != nil {
			bindIdx = int32(br.Index())
		}
		w.i32(bindIdx)
		w.i32(int32(s.BindIndex()))

		reduceIdx := int32(-1)
		if rr := s.ReduceRule(); rr != nil {
			reduceIdx = int32(rr.Index())
		}
		w.i32(reduceIdx)

		w.strSlice(s.ImmediateTokens())

		branches := s.Branches()
		w.u32(uint32(len(branches)))
		for _, name := range branches {
			target := s.Branch(name)
			w.str(name)
			w.u32(uint32(target.Index()))
		}
	}

	return w.bytes()
}

// Decode reverses Encode, rebuilding a Registry (terminals and rules, with
// each rule's reducer rebound by name against reducers) and the Automaton
// that drives it. reducers should contain every name any encoded rule was
// registered under; a name Decode cannot find is a *MissingReducerError,
// not a silently-nil reducer.
func Decode(data []byte, reducers map[string]grammar.Reducer) (*grammar.Registry, *automaton.Automaton, error) {
	r := newReader(data)

	gotMagic := r.raw(4)
	if r.err != nil {
		return nil, nil, r.err
	}
	if !bytes.Equal(gotMagic, magic[:]) {
		return nil, nil, &TableFormatError{Reason: "bad magic bytes"}
	}

	ver := r.u16()
	if r.err != nil {
		return nil, nil, r.err
	}
	if ver != formatVersion {
		return nil, nil, &TableFormatError{Reason: fmt.Sprintf("unsupported format version %d", ver)}
	}

	compileIDBytes := r.raw(16)
	if r.err != nil {
		return nil, nil, r.err
	}
	var compileID uuid.UUID
	copy(compileID[:], compileIDBytes)

	type termRec struct {
		name, showName                   string
		eof, ignorable, discard, capture bool
		level                             int32
		assoc                             uint8
	}
	nTerms := r.u32()
	if r.err != nil {
		return nil, nil, r.err
	}
	termRecs := make([]termRec, nTerms)
	for i := range termRecs {
		termRecs[i] = termRec{
			name:      r.str(),
			showName:  r.str(),
			eof:       r.u8() != 0,
			ignorable: r.u8() != 0,
			discard:   r.u8() != 0,
			capture:   r.u8() != 0,
			level:     r.i32(),
			assoc:     r.u8(),
		}
	}
	if r.err != nil {
		return nil, nil, r.err
	}

	reg := grammar.NewRegistry()
	for _, t := range termRecs {
		prec := grammar.Precedence{Level: int(t.level), Assoc: grammar.Associativity(t.assoc)}
		decl := grammar.TerminalDecl{
			ShowName:           t.showName,
			EOF:                t.eof,
			Ignorable:          t.ignorable,
			Discard:            t.discard,
			Capture:            t.capture,
			PrecedenceOverride: &prec,
		}
		if _, err := reg.DeclareTerminal(t.name, decl); err != nil {
			return nil, nil, err
		}
	}

	type ruleRec struct {
		lhs         string
		production  []string
		level       int32
		assoc       uint8
		reducerName string
	}
	nRules := r.u32()
	if r.err != nil {
		return nil, nil, r.err
	}
	ruleRecs := make([]ruleRec, nRules)
	for i := range ruleRecs {
		ruleRecs[i] = ruleRec{
			lhs:         r.str(),
			production:  r.strSlice(),
			level:       r.i32(),
			assoc:       r.u8(),
			reducerName: r.str(),
		}
	}
	if r.err != nil {
		return nil, nil, r.err
	}

	rules := make([]*grammar.Rule, len(ruleRecs))
	for i, rr := range ruleRecs {
		prec := grammar.Precedence{Level: int(rr.level), Assoc: grammar.Associativity(rr.assoc)}
		rule, err := reg.AddRule(rr.lhs, rr.production, nil, rr.reducerName, &prec)
		if err != nil {
			return nil, nil, err
		}
		if rr.reducerName != "" {
			fn, ok := reducers[rr.reducerName]
			if !ok {
				return nil, nil, &MissingReducerError{Rule: rr.lhs, Reducer: rr.reducerName}
			}
			if err := rule.Rebind(fn); err != nil {
				return nil, nil, err
			}
		}
		rules[i] = rule
	}

	startSymbol := r.str()
	eofTerminal := r.str()
	if r.err != nil {
		return nil, nil, r.err
	}
	reg.SetStart(startSymbol)

	nStates := r.u32()
	startIdx := r.u32()
	if r.err != nil {
		return nil, nil, r.err
	}

	raws := make([]automaton.RawState, nStates)
	for i := range raws {
		bindIdx := r.i32()
		bindPos := r.i32()
		reduceIdx := r.i32()
		immediate := r.strSlice()
		nBranches := r.u32()
		branches := make([]automaton.RawBranch, nBranches)
		for j := range branches {
			name := r.str()
			target := r.u32()
			branches[j] = automaton.RawBranch{Component: name, Target: int(target)}
		}
		raws[i] = automaton.RawState{
			BindRuleIndex:   int(bindIdx),
			BindIndex:       int(bindPos),
			ReduceRuleIndex: int(reduceIdx),
			ImmediateTokens: immediate,
			Branches:        branches,
		}
	}
	if r.err != nil {
		return nil, nil, r.err
	}

	auto, err := automaton.Assemble(rules, raws, int(startIdx), startSymbol, eofTerminal, compileID)
	if err != nil {
		return nil, nil, err
	}

	return reg, auto, nil
}
