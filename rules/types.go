// Package rules defines tunable options for the skyscraper validation
// engine of github.com/katalvlaran/skyval.
package rules

// VisibilityPolicy controls how a line's visible-building count satisfies
// an edge hint.
//
//   - AtLeast — satisfied when count ≥ hint. The hint acts as a lower
//     bound; every hint below the actual count also passes.
//   - Exact   — satisfied only when count == hint. The conventional
//     skyscraper rule.
type VisibilityPolicy int

const (
	// AtLeast accepts any visible count greater than or equal to the hint.
	AtLeast VisibilityPolicy = iota
	// Exact accepts only a visible count equal to the hint.
	Exact
)

// Options holds the parameters of a validation run.
type Options struct {
	// Policy selects the hint-satisfaction reading; AtLeast by default.
	Policy VisibilityPolicy
}

// DefaultOptions returns Options with default settings: Policy=AtLeast.
func DefaultOptions() Options {
	return Options{
		Policy: AtLeast,
	}
}

// Option configures validation behavior via functional arguments.
type Option func(*Options)

// WithVisibilityPolicy sets the hint-satisfaction policy.
func WithVisibilityPolicy(p VisibilityPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithExactVisibility is shorthand for WithVisibilityPolicy(Exact).
func WithExactVisibility() Option {
	return WithVisibilityPolicy(Exact)
}

// buildOptions resolves functional options against the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Report carries the outcome of each rule check separately. The zero value
// means "every check failed"; use Inspect to obtain a populated Report.
type Report struct {
	// Complete reports that no unfilled cell remains.
	Complete bool
	// RowsUnique reports that no interior row repeats a height.
	RowsUnique bool
	// RowsVisible reports that every row hint is satisfiable.
	RowsVisible bool
	// ColumnsUnique reports that no column repeats a height.
	ColumnsUnique bool
	// ColumnsVisible reports that every column hint is satisfiable.
	ColumnsVisible bool
}

// OK reports whether every check passed; it equals the Validate verdict
// for the same board and options.
func (r Report) OK() bool {
	return r.Complete && r.RowsUnique && r.RowsVisible && r.ColumnsUnique && r.ColumnsVisible
}
