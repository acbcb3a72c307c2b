package board

// Transpose returns a fresh Board with rows and columns swapped:
// out(i,j) == in(j,i). The receiver is left untouched; the result shares
// no memory with it. Hint columns become hint rows (and corners stay
// corners), so the transposed board satisfies the same structural
// invariants and every row routine applies to it unchanged — this is what
// reduces column checks to row checks.
//
// Transpose is an involution: b.Transpose().Transpose() equals b.
// Complexity: O(N²) time and memory.
func (b *Board) Transpose() *Board {
	n := b.size
	cells := make([][]byte, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]byte, n)
		for j := 0; j < n; j++ {
			cells[i][j] = b.cells[j][i]
		}
	}

	return &Board{size: n, cells: cells}
}
