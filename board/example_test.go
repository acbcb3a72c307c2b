// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/skyval/board"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New + Line
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates constructing a board and reading one interior
// row as a logical line: the hint "4" on the left edge and the five
// heights 1 2 4 5 3 between the hint columns.
func ExampleNew() {
	b, _ := board.New([]string{
		"***21**",
		"412453*",
		"423145*",
		"*543215",
		"*35214*",
		"*41532*",
		"*2*1***",
	})

	ln := b.Line(1)
	fmt.Println("size:", b.Size(), "interior:", b.Interior())
	fmt.Println("left hint:", ln.Left, "heights:", ln.Heights)

	// Output:
	// size: 7 interior: 5
	// left hint: 4 heights: [1 2 4 5 3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Transpose
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_Transpose demonstrates the column projection: the top hint
// row of the original becomes a left hint column of the transpose, so the
// same row routines serve both orientations.
func ExampleBoard_Transpose() {
	b, _ := board.New([]string{
		"***21**",
		"412453*",
		"423145*",
		"*543215",
		"*35214*",
		"*41532*",
		"*2*1***",
	})

	fmt.Println(b.Transpose())

	// Output:
	// *44****
	// *125342
	// *23451*
	// 2413251
	// 154213*
	// *35142*
	// ***5***
}
