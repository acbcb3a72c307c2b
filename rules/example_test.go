// File: rules/example_test.go
package rules_test

import (
	"fmt"

	"github.com/katalvlaran/skyval/board"
	"github.com/katalvlaran/skyval/rules"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Validate
////////////////////////////////////////////////////////////////////////////////

// ExampleValidate demonstrates the end-to-end verdict on a fully filled,
// rule-satisfying 7×7 board and on the same board with one height
// duplicated in row 1.
func ExampleValidate() {
	good, _ := board.New([]string{
		"***21**",
		"412453*",
		"423145*",
		"*543215",
		"*35214*",
		"*41532*",
		"*2*1***",
	})
	bad, _ := board.New([]string{
		"***21**",
		"452453*", // height 5 repeats
		"423145*",
		"*543215",
		"*35214*",
		"*41532*",
		"*2*1***",
	})

	fmt.Println(rules.Validate(good))
	fmt.Println(rules.Validate(bad))

	// Output:
	// true
	// false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Validate with the Exact policy
////////////////////////////////////////////////////////////////////////////////

// ExampleValidate_exact demonstrates the policy split on a board whose only
// hint reads "1" while two buildings are visible down that column: a lower
// bound under AtLeast, a mismatch under Exact.
func ExampleValidate_exact() {
	b, _ := board.New([]string{
		"**1**",
		"*123*",
		"*231*",
		"*312*",
		"*****",
	})

	fmt.Println("at least:", rules.Validate(b))
	fmt.Println("exact:   ", rules.Validate(b, rules.WithExactVisibility()))

	// Output:
	// at least: true
	// exact:    false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Inspect
////////////////////////////////////////////////////////////////////////////////

// ExampleInspect demonstrates the per-rule breakdown on an unfinished
// board: only completeness fails, the rules stay unrefuted.
func ExampleInspect() {
	b, _ := board.New([]string{
		"***21**",
		"4?????*",
		"4?????*",
		"*?????5",
		"*?????*",
		"*?????*",
		"*2*1***",
	})

	r := rules.Inspect(b)
	fmt.Println("complete:", r.Complete)
	fmt.Println("rows unique:", r.RowsUnique, "visible:", r.RowsVisible)
	fmt.Println("cols unique:", r.ColumnsUnique, "visible:", r.ColumnsVisible)
	fmt.Println("ok:", r.OK())

	// Output:
	// complete: false
	// rows unique: true visible: true
	// cols unique: true visible: true
	// ok: false
}
