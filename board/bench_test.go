package board_test

import (
	"testing"

	"github.com/katalvlaran/skyval/board"
)

// syntheticRows builds a structurally valid n×n board with blank borders
// and deterministic interior heights ((i+j) mod 9)+1.
func syntheticRows(n int) []string {
	rows := make([]string, n)
	blank := make([]byte, n)
	for j := range blank {
		blank[j] = board.Blank
	}
	rows[0], rows[n-1] = string(blank), string(blank)
	for i := 1; i < n-1; i++ {
		row := make([]byte, n)
		row[0], row[n-1] = board.Blank, board.Blank
		for j := 1; j < n-1; j++ {
			row[j] = byte('1' + (i+j)%9)
		}
		rows[i] = string(row)
	}

	return rows
}

// BenchmarkNew measures construction (validation + deep copy) of a
// 1000×1000 board.
// Complexity: O(N²)
func BenchmarkNew(b *testing.B) {
	rows := syntheticRows(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := board.New(rows); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkTranspose measures the column projection of a 1000×1000 board.
// Complexity: O(N²)
func BenchmarkTranspose(b *testing.B) {
	bd, err := board.New(syntheticRows(1000))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.Transpose()
	}
}
