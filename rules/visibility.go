// Package rules - the visibility-satisfiability primitive.
//
// A building is visible from an edge iff it is strictly taller than every
// building before it in the viewing order, i.e. it is a new running
// maximum. Deterministic, side-effect free; O(len) time, O(1) space.
package rules

// VisibleCount returns the number of buildings visible when looking along
// heights from its first element toward its last: the count of running-
// maximum elements. An empty sequence has zero visible buildings.
// Complexity: O(len(heights)) time, O(1) space.
func VisibleCount(heights []int) int {
	if len(heights) == 0 {
		return 0
	}
	count, tallest := 1, heights[0]
	for _, h := range heights[1:] {
		if h > tallest {
			count++
			tallest = h
		}
	}

	return count
}

// HintSatisfied reports whether the edge hint is satisfiable for the given
// height sequence, viewed from the hint's edge toward the far end.
//
// Under the default AtLeast policy the hint is a lower bound: satisfied
// when VisibleCount(heights) ≥ hint. Under Exact the count must equal the
// hint. A sequence containing an unfilled height (0) is indeterminate —
// no hint can be refuted yet, so it is reported satisfied; the
// completeness check keeps an incomplete board from validating.
func HintSatisfied(heights []int, hint int, opts ...Option) bool {
	o := buildOptions(opts)
	for _, h := range heights {
		if h == 0 {
			return true
		}
	}
	count := VisibleCount(heights)
	if o.Policy == Exact {
		return count == hint
	}

	return count >= hint
}

// reversed returns a fresh copy of heights in the opposite viewing order,
// for checking a right/bottom edge hint with the same primitive.
func reversed(heights []int) []int {
	out := make([]int, len(heights))
	for i, h := range heights {
		out[len(heights)-1-i] = h
	}

	return out
}
