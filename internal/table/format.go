// Package table is the compiled-table codec (component C7): it serializes
// a finalized automaton.Automaton and the grammar.Registry it was compiled
// from into a compact binary stream, and reconstructs both from that stream
// without re-running the builder or merger.
//
// No third-party binary serialization library appears anywhere in the
// corpus this toolkit was grounded on, so the wire format below is a
// hand-rolled length-prefixed stream over encoding/binary, in the same
// spirit as the header/magic-bytes scheme many infra tools of this kind use.
//
// A stream holds, in order: a header (magic bytes, format version, the
// automaton's CompileID); the terminal table (name, display name, flags,
// precedence); the rule table (left-hand side, production, precedence,
// reducer name); the start symbol and EOF terminal names; and one record per
// state in arena order (bind rule index and dot position, reduce rule index
// or -1, immediate tokens, and branches as name/target-index pairs). Scanner
// patterns, trailing lookaheads, and scanner actions are not part of the
// stream, so a lexer has to be built from the grammar itself.
package table

import "encoding/binary"

// magic identifies a parsegen table file. formatVersion changes whenever
// the layout below changes incompatibly; Decode refuses to load a stream
// whose version it does not recognize.
var magic = [4]byte{'P', 'G', 'T', 'B'}

const formatVersion uint16 = 1

var byteOrder = binary.BigEndian
