// Package board models a skyscraper puzzle board as an immutable square
// character grid and provides the structural boundary every rule check
// relies on.
//
// What:
//
//   - Board wraps N equal-length rows (N ≥ 3), deep-copied at construction.
//   - Row 0 and row N−1 are the top/bottom hint rows; column 0 and column
//     N−1 the left/right hint columns; the four corners are always Blank.
//   - Line extracts the logical view of one interior row: left hint,
//     interior height sequence, right hint.
//   - Transpose produces a fresh Board with rows and columns swapped, so
//     column rules reduce to row rules.
//
// Why:
//
//   - Rule checks stay total functions: New rejects every malformed grid
//     up front, so checks never see a board they could misread.
//   - Immutability makes every downstream check pure and safe to run
//     concurrently on a shared Board.
//
// Complexity:
//
//   - New:       O(N²) time and memory (validation + deep copy).
//   - Line(s):   O(N) per row.
//   - Transpose: O(N²) time and memory.
//
// Errors:
//
//   - ErrTooSmall:       fewer than MinSize rows.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonSquare:      row count differs from row length.
//   - ErrCornerNotBlank: a corner cell is not the blank marker.
//   - ErrCellDomain:     a cell holds a character outside its position's domain.
//   - ErrHintRange:      a border hint digit outside 1..N−2.
package board
