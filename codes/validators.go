// Package codes provides validation helpers enforcing the Generate
// parameter contract.  Each helper wraps the matching sentinel with the
// method name and the offending value via %w, preserving errors.Is.
package codes

import "fmt"

// methodGenerate prefixes validation errors with the public entry point name.
const methodGenerate = "Generate"

// validateBitWidth ensures bits is even, positive and representable in a
// uint64.  Returns ErrInvalidBitWidth (wrapped) otherwise.
//
// Complexity: O(1) time and space.
func validateBitWidth(bits int) error {
	if bits < MinBitWidth || bits > MaxBitWidth || bits%2 != 0 {
		return fmt.Errorf("%s: bits=%d: %w", methodGenerate, bits, ErrInvalidBitWidth)
	}

	return nil
}

// validateTransitions ensures the resolved transition filter is not negative.
// Zero is the documented "disabled" value and passes.
//
// Complexity: O(1) time and space.
func validateTransitions(transitions int) error {
	if transitions < NoTransitionFilter {
		return fmt.Errorf("%s: transitions=%d: %w", methodGenerate, transitions, ErrInvalidTransitionCount)
	}

	return nil
}
