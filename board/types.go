// Package board defines core types, cell markers, and sentinel errors
// for the board subpackage of github.com/katalvlaran/skyval.
package board

import (
	"errors"
)

// Cell markers shared by every position domain.
const (
	// Blank marks "no hint" on a border cell and every corner cell.
	Blank byte = '*'
	// Unfilled marks an interior cell whose height has not been assigned.
	Unfilled byte = '?'
)

// MinSize is the smallest admissible board side: one interior cell
// framed by the four hint borders.
const MinSize = 3

// MaxHeight is the tallest building a single character can encode.
const MaxHeight = 9

// Sentinel errors for board construction.
var (
	// ErrTooSmall indicates fewer than MinSize rows.
	ErrTooSmall = errors.New("board: board must have at least 3 rows")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrNonSquare indicates the row count differs from the row length.
	ErrNonSquare = errors.New("board: row count must equal row length")
	// ErrCornerNotBlank indicates a corner cell other than the blank marker.
	ErrCornerNotBlank = errors.New("board: corner cells must be blank")
	// ErrCellDomain indicates a character outside its position's value domain.
	ErrCellDomain = errors.New("board: cell value outside its domain")
	// ErrHintRange indicates a border hint digit outside 1..N-2.
	ErrHintRange = errors.New("board: hint outside valid range")
)

// Board is an immutable N×N character grid. The input rows are deep-copied
// during construction and never mutated afterwards, so a Board may be
// shared freely across goroutines.
type Board struct {
	size  int
	cells [][]byte
}

// Line is the logical view of one interior board row: an optional hint on
// each edge and the ordered interior height sequence between them.
// Hints use 0 for "absent"; an unfilled interior cell contributes height 0.
type Line struct {
	// Left is the left-edge hint digit, 0 when the edge cell is blank.
	Left int
	// Heights holds the interior cells in viewing order, left to right.
	Heights []int
	// Right is the right-edge hint digit, 0 when the edge cell is blank.
	Right int
}
