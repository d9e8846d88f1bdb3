// Package codes: sentinel errors for generation parameter validation.
//
// Error policy (matching the rest of the module):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   - Implementations attach call context via %w wrapping (see validators.go).
//   - Both errors are detected before enumeration starts; Generate never
//     returns partial results alongside an error.
package codes

import "errors"

var (
	// ErrInvalidBitWidth indicates a requested code width that is not a
	// positive even integer, or one too wide for the uint64 code storage.
	// Usage: if errors.Is(err, ErrInvalidBitWidth) { /* reject width */ }.
	ErrInvalidBitWidth = errors.New("codes: bit width must be even, positive and at most 64")

	// ErrInvalidTransitionCount indicates a negative Options.Transitions.
	// Zero is not an error at this level: it means "filter disabled".
	// Usage: if errors.Is(err, ErrInvalidTransitionCount) { /* reject T */ }.
	ErrInvalidTransitionCount = errors.New("codes: transition count must be positive")
)
