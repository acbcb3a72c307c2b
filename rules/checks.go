// Package rules - the four board-level checks and their AND-reduction.
//
// Every function here is a total, pure predicate over an immutable
// *board.Board: no errors, no logging, no mutation. Structural validation
// already happened in board.New.
package rules

import (
	"github.com/katalvlaran/skyval/board"
)

// Complete reports whether no cell on the board equals board.Unfilled.
// The scan covers the whole grid, borders included.
// Complexity: O(N²).
func Complete(b *board.Board) bool {
	n := b.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if b.At(i, j) == board.Unfilled {
				return false
			}
		}
	}

	return true
}

// UniqueRows reports whether no interior row repeats a height. Unfilled
// cells carry no height yet and never count as duplicates. Vacuously true
// when the interior is empty.
// Complexity: O(N²).
func UniqueRows(b *board.Board) bool {
	for _, ln := range b.Lines() {
		var seen [board.MaxHeight + 1]bool
		for _, h := range ln.Heights {
			if h == 0 {
				continue
			}
			if seen[h] {
				return false
			}
			seen[h] = true
		}
	}

	return true
}

// VisibleRows reports whether every hinted edge of every interior row is
// satisfiable: the left hint against the height sequence in reading order,
// the right hint against the reversed sequence. A row with no hints passes
// vacuously.
// Complexity: O(N²).
func VisibleRows(b *board.Board, opts ...Option) bool {
	for _, ln := range b.Lines() {
		if ln.Left != 0 && !HintSatisfied(ln.Heights, ln.Left, opts...) {
			return false
		}
		if ln.Right != 0 && !HintSatisfied(reversed(ln.Heights), ln.Right, opts...) {
			return false
		}
	}

	return true
}

// Columns reports whether the board's columns satisfy uniqueness and
// visibility. It transposes once and reuses the row routines: for
// T = b.Transpose(), Columns(b) == UniqueRows(T) && VisibleRows(T).
// Complexity: O(N²) time and memory.
func Columns(b *board.Board, opts ...Option) bool {
	t := b.Transpose()

	return UniqueRows(t) && VisibleRows(t, opts...)
}

// Validate is the top-level verdict: the AND of Complete, UniqueRows,
// VisibleRows, and Columns. A single boolean with no explanation of which
// rule failed; use Inspect for a per-rule breakdown.
// Complexity: O(N²).
func Validate(b *board.Board, opts ...Option) bool {
	return Inspect(b, opts...).OK()
}

// Inspect runs every check unconditionally and returns the per-rule
// outcomes; Inspect(b).OK() equals Validate(b). The checks are independent
// pure predicates, so no short-circuiting is needed for correctness.
// Complexity: O(N²).
func Inspect(b *board.Board, opts ...Option) Report {
	t := b.Transpose()

	return Report{
		Complete:       Complete(b),
		RowsUnique:     UniqueRows(b),
		RowsVisible:    VisibleRows(b, opts...),
		ColumnsUnique:  UniqueRows(t),
		ColumnsVisible: VisibleRows(t, opts...),
	}
}
