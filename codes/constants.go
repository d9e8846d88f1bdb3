// Package codes defines shared constants for width validation and option
// defaults, keeping literals out of the generation pass.
package codes

const (
	// MinBitWidth is the smallest supported code width: one pair of
	// diametrically opposite segments.
	MinBitWidth = 2

	// MaxBitWidth is the largest supported code width; codes are stored in a
	// uint64, so wider patterns cannot be represented.
	MaxBitWidth = 64

	// NoTransitionFilter disables the transition-count filter in Options.
	NoTransitionFilter = 0
)
