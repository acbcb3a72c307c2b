// Package skyval validates "skyscrapers" puzzle boards: square character
// grids whose interior cells hold building heights and whose border cells
// hold edge-visibility hints.
//
// What is skyval?
//
//	A small, pure-Go validation library that decides whether a fully- or
//	partially-filled board is consistent with the skyscraper rules:
//		• Completeness: no unfilled cells remain
//		• Uniqueness: no height repeats within a row or a column
//		• Visibility: every edge hint is satisfiable by the running-maximum
//		  count of buildings seen from that edge
//
// Why choose skyval?
//
//   - Fail-fast boundary – malformed grids are rejected with sentinel errors
//     before any rule runs; rule checks themselves never error
//   - Immutable data – a Board is deep-copied once and never mutated, so
//     every check is a pure function, safe under concurrent use
//   - Explicit policy – the lenient "at least N visible" reading and the
//     strict "exactly N visible" reading are both first-class options
//
// The code is organized under three packages:
//
//	board/      — the immutable Board: construction, structural validation,
//	              line extraction, transposition
//	rules/      — the validation engine: completeness, uniqueness,
//	              visibility, column projection, top-level verdict
//	cmd/skyval/ — minimal CLI: read a board file, print true or false
//
// Quick ASCII example (7×7 board, 5×5 interior):
//
//	***21**
//	412453*      ← "4" on the left edge: four buildings must be
//	423145*        visible looking right along 1 2 4 5 3
//	*543215
//	*35214*
//	*41532*
//	*2*1***
//
//	go get github.com/katalvlaran/skyval
package skyval
