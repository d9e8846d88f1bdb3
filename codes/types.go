// Package codes: option types for target code generation.
package codes

// Options configures Generate.
//
// Fields:
//   - Transitions — when positive, restrict the result to codes with exactly
//     this many rising (0→1) bit transitions, counted from the least
//     significant bit upward without wrapping (see CountTransitions).
//     Zero (the default) disables the filter.  Negative values are rejected
//     with ErrInvalidTransitionCount.
//
// Example:
//
//	opts := codes.DefaultOptions()
//	opts.Transitions = 4
//
//	list, err := codes.Generate(14, &opts)
//	if err != nil {
//	  // handle ErrInvalidBitWidth or ErrInvalidTransitionCount
//	}
type Options struct {
	Transitions int
}

// DefaultOptions returns the canonical defaults: no transitions filter.
func DefaultOptions() Options {
	return Options{Transitions: NoTransitionFilter}
}
