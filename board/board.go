// Package board - construction and read-only access for skyscraper boards.
//
// This file is the fail-fast boundary of the module: New performs staged
// structural validation (shape → corners → cell domains) and returns
// sentinel errors from types.go. Deterministic, side-effect free; no
// logging, no panics on user input.
package board

import (
	"fmt"
	"strings"
)

// New constructs a Board from a sequence of already-trimmed text rows.
// It validates the grid in stages, each stage guarded by its own sentinel:
//
//  1. shape: at least MinSize rows (ErrTooSmall), every row as long as
//     row 0 (ErrNonRectangular), row count equal to row length (ErrNonSquare);
//  2. corners: all four must be Blank (ErrCornerNotBlank);
//  3. domains: border cells are Blank or a hint digit in 1..N-2
//     (ErrCellDomain / ErrHintRange); interior cells are a height digit
//     1..MaxHeight or Unfilled (ErrCellDomain).
//
// On success the input is deep-copied; the Board never aliases caller memory.
// Complexity: O(N²) time and memory.
func New(rows []string) (*Board, error) {
	if err := validateShape(rows); err != nil {
		return nil, err
	}
	n := len(rows)
	if err := validateCells(rows, n); err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation.
	cells := make([][]byte, n)
	for i, row := range rows {
		cells[i] = []byte(row)
	}

	return &Board{size: n, cells: cells}, nil
}

// validateShape enforces stage 1: row count and rectangular/square shape.
func validateShape(rows []string) error {
	if len(rows) < MinSize {
		return fmt.Errorf("%w: got %d rows", ErrTooSmall, len(rows))
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has length %d, row 0 has %d",
				ErrNonRectangular, i, len(row), width)
		}
	}
	if len(rows) != width {
		return fmt.Errorf("%w: %d rows of length %d", ErrNonSquare, len(rows), width)
	}

	return nil
}

// validateCells enforces stages 2 and 3: corner blanks and per-position
// cell domains. Hint digits must lie in 1..n-2, the largest count of
// buildings visible along an interior line of length n-2.
func validateCells(rows []string, n int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := rows[i][j]
			corner := (i == 0 || i == n-1) && (j == 0 || j == n-1)
			border := i == 0 || i == n-1 || j == 0 || j == n-1

			switch {
			case corner:
				if c != Blank {
					return fmt.Errorf("%w: corner (%d,%d) holds %q", ErrCornerNotBlank, i, j, c)
				}
			case border:
				if c == Blank {
					continue
				}
				if !isDigit(c) {
					return fmt.Errorf("%w: border cell (%d,%d) holds %q", ErrCellDomain, i, j, c)
				}
				if hint := int(c - '0'); hint < 1 || hint > n-2 {
					return fmt.Errorf("%w: hint %d at (%d,%d), valid range 1..%d",
						ErrHintRange, hint, i, j, n-2)
				}
			default: // interior
				if c != Unfilled && !isDigit(c) {
					return fmt.Errorf("%w: interior cell (%d,%d) holds %q", ErrCellDomain, i, j, c)
				}
			}
		}
	}

	return nil
}

// isDigit reports whether c encodes a height or hint digit 1..MaxHeight.
func isDigit(c byte) bool {
	return c >= '1' && c <= '0'+MaxHeight
}

// Size returns the side length N of the board.
// Complexity: O(1).
func (b *Board) Size() int {
	return b.size
}

// Interior returns the side length of the interior height grid, N−2.
// Complexity: O(1).
func (b *Board) Interior() int {
	return b.size - 2
}

// InBounds reports whether (row, col) lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the character stored at (row, col).
// Panics when (row, col) is out of bounds; callers gate with InBounds.
func (b *Board) At(row, col int) byte {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("board: At(%d,%d) out of bounds on %d×%d board", row, col, b.size, b.size))
	}

	return b.cells[row][col]
}

// Row returns row i as a fresh string.
// Complexity: O(N).
func (b *Board) Row(i int) string {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("board: Row(%d) out of bounds on %d×%d board", i, b.size, b.size))
	}

	return string(b.cells[i])
}

// Rows returns all rows as fresh strings, top to bottom.
// Complexity: O(N²).
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for i := range b.cells {
		rows[i] = string(b.cells[i])
	}

	return rows
}

// String renders the board as newline-joined rows.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
