package board

import "fmt"

// Line extracts the logical view of interior row i: the hint digit on each
// edge (0 when the edge cell is blank) and the interior height sequence in
// left-to-right viewing order. Unfilled cells contribute height 0; blank
// cells are skipped, so the extraction assumes nothing about hint placement
// beyond "first and last positions are excluded" and serves the transposed
// orientation unchanged.
//
// i must address an interior row (1..N−2); anything else is a programmer
// error and panics.
// Complexity: O(N).
func (b *Board) Line(i int) Line {
	if i < 1 || i > b.size-2 {
		panic(fmt.Sprintf("board: Line(%d) is not an interior row on %d×%d board", i, b.size, b.size))
	}

	row := b.cells[i]
	ln := Line{Heights: make([]int, 0, b.size-2)}
	if c := row[0]; c != Blank {
		ln.Left = int(c - '0')
	}
	if c := row[b.size-1]; c != Blank {
		ln.Right = int(c - '0')
	}
	for _, c := range row[1 : b.size-1] {
		switch c {
		case Blank:
			continue
		case Unfilled:
			ln.Heights = append(ln.Heights, 0)
		default:
			ln.Heights = append(ln.Heights, int(c-'0'))
		}
	}

	return ln
}

// Lines returns the logical view of every interior row, top to bottom.
// Complexity: O(N²).
func (b *Board) Lines() []Line {
	lines := make([]Line, 0, b.size-2)
	for i := 1; i <= b.size-2; i++ {
		lines = append(lines, b.Line(i))
	}

	return lines
}
