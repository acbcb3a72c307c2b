// Package rules implements the skyscraper validation engine: four
// independent pure checks over an immutable board.Board, AND-reduced into
// a single verdict.
//
// What:
//
//   - Complete: no unfilled cells remain anywhere on the board.
//   - UniqueRows: no interior row repeats a height.
//   - VisibleRows: every hinted edge of every interior row is satisfiable
//     by the running-maximum count of visible buildings.
//   - Columns: UniqueRows and VisibleRows re-applied to the transposed board.
//   - Validate: the AND of all four; Inspect returns the same outcomes as a
//     structured Report without changing the boolean contract.
//
// Why:
//
//   - Checks are total functions of an already-validated Board: they never
//     error, never log, never mutate, and are safe to call concurrently on
//     a shared Board.
//
// Complexity:
//
//   - Every check: O(N²) time; Columns allocates one transposed O(N²) grid.
//
// Options:
//
//   - WithVisibilityPolicy / WithExactVisibility select how a visible count
//     satisfies a hint. The default, AtLeast, treats a hint as a lower bound
//     (count ≥ hint); Exact requires count == hint, the conventional puzzle
//     rule. Both readings exist in the wild, so the policy is explicit
//     rather than baked in.
//
// Errors: none. Rule violations and incompleteness are outcomes, not
// faults — they yield false. Malformed grids never reach this package;
// board.New rejects them first.
package rules
