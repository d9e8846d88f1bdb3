package codes

// Generate — valid code enumeration for circular coded targets.
//
// Description:
//
//	Generate produces the ordered set of canonical codes of the given width
//	that satisfy the coding scheme's structural constraints: even parity,
//	at least one pair of diametrically opposite bits both set, and (when
//	opts.Transitions > 0) an exact rising-transition count.
//
// Algorithm Outline:
//  1. Enumerate i ∈ [0, 2^(bits−2)).  Candidate code = (i << 1) | 1 — the
//     search runs only over patterns whose lowest bit is 1.  Every valid
//     code has at least one set bit, so some rotation of it ends in 1 and
//     its class is still reached; this halves the scan.
//  2. Replace the candidate with its minimal rotation (Canonicalize).
//  3. Opposite-pair test: AND the low bits/2 bits against the high bits/2
//     bits shifted down; a non-zero result means some segment and its
//     diametric twin are both set.
//  4. Parity test: EvenParity.
//  5. Transition test (only when the filter is enabled): CountTransitions
//     must equal opts.Transitions exactly.
//  6. Accept in encounter order, skipping canonical values already seen —
//     distinct i may collapse to the same representative.
//
// The result is deterministic: same inputs, same elements, same order.
//
// Complexity:
//
//	Time   = O(2^(bits−2) · bits)
//	Memory = O(K) for K accepted codes
//
// Errors:
//   - ErrInvalidBitWidth         — bits odd, < 2, or > 64.
//   - ErrInvalidTransitionCount  — opts.Transitions negative.
//
// A nil opts is equivalent to DefaultOptions().  Validation runs before the
// enumeration starts; on error the returned slice is always nil.
func Generate(bits int, opts *Options) ([]uint64, error) {
	if err := validateBitWidth(bits); err != nil {
		return nil, err
	}

	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if err := validateTransitions(resolved.Transitions); err != nil {
		return nil, err
	}

	half := bits >> 1
	halfMask := widthMask(half)

	result := make([]uint64, 0)
	seen := make(map[uint64]struct{})

	for i := uint64(0); i < uint64(1)<<uint(bits-2); i++ {
		// Force the lowest bit to 1; see step 1 above.
		code := Canonicalize(i<<1|1, bits)

		// Diametrically opposite segments both set.
		if code&halfMask&(code>>uint(half)) == 0 {
			continue
		}
		if !EvenParity(code) {
			continue
		}
		if resolved.Transitions != NoTransitionFilter && CountTransitions(code) != resolved.Transitions {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}

		seen[code] = struct{}{}
		result = append(result, code)
	}

	return result, nil
}
