package codes

// Bit-level primitives for N-bit circular patterns.
//
// All functions treat a uint64 value as the low `bits` positions of a ring:
// bit i and bit (i+1) mod bits are circularly adjacent.  Bits above the
// field are ignored on input and never set on output.

// Rotate returns v rotated left by shift positions within a bits-wide field.
//
// Contract:
//   - the result is always in [0, 2^bits − 1]
//   - rotating by bits (or any multiple) is the identity
//   - Rotate(Rotate(v, a, bits), b, bits) == Rotate(v, (a+b) mod bits, bits)
//
// shift is reduced modulo bits, so negative shifts rotate right.
// bits must be in [1, 64]; the caller (Generate / Canonicalize) guarantees it.
//
// Complexity: O(1).
func Rotate(v uint64, shift, bits int) uint64 {
	mask := widthMask(bits)
	shift %= bits
	if shift < 0 {
		shift += bits
	}
	if shift == 0 {
		return v & mask
	}

	return (v<<uint(shift))&mask | (v&mask)>>uint(bits-shift)
}

// Canonicalize returns the minimum value over all bits rotations of v,
// the canonical representative of v's rotation-equivalence class.
//
// Guarantees: the result is a fixed point of Canonicalize (idempotent) and
// is ≤ every rotation of v.
//
// Complexity: O(bits).
func Canonicalize(v uint64, bits int) uint64 {
	smallest := v & widthMask(bits)
	for shift := 1; shift < bits; shift++ {
		if rotated := Rotate(v, shift, bits); rotated < smallest {
			smallest = rotated
		}
	}

	return smallest
}

// EvenParity reports whether v has an even number of set bits (zero counts
// as even).  Implemented by clearing the lowest set bit per iteration and
// toggling the parity flag, so it runs in O(popcount) steps.
func EvenParity(v uint64) bool {
	parity := true
	for v != 0 {
		parity = !parity
		v &= v - 1 // clear lowest set bit
	}

	return parity
}

// CountTransitions counts the rising (0→1) bit transitions of v, scanning
// from the least significant bit upward.  The implicit bit before the scan
// is 0, so a set lowest bit counts as a transition.
//
// The scan is linear and bounded by v's own significant bits: it stops once
// the remaining value is zero and never wraps the most significant bit back
// to position 0.  Leading zero positions of the nominal code width therefore
// do not contribute, which is the behavior the established coding scheme
// relies on.
//
// Complexity: O(bit length of v).
func CountTransitions(v uint64) int {
	transitions := 0
	prev := uint64(0)
	for v != 0 {
		cur := v & 1
		if cur > prev {
			transitions++
		}
		prev = cur
		v >>= 1
	}

	return transitions
}

// widthMask returns a mask of the low bits positions; bits must be in [1, 64].
func widthMask(bits int) uint64 {
	return ^uint64(0) >> uint(64-bits)
}
