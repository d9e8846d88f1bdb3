// Package codes enumerates the valid bit-codes for circular coded
// photogrammetry targets under a rotation-invariant binary coding scheme.
//
// 🚀 What is a target code?
//
//	A target is a ring of N equal arc segments (N even), each filled or
//	empty — an N-bit pattern read around the circle.  Because the camera
//	sees the target at an unknown rotation, all N rotations of a pattern
//	are the same physical target.  A code is valid iff:
//	  • its set-bit count is even (parity check word)
//	  • at least one segment and its diametric opposite are both filled
//	    (the decodability anchor)
//	  • optionally, it has exactly T rising (0→1) bit transitions
//
// ✨ Key features:
//   - Rotate / Canonicalize — N-bit circular rotation and minimal-rotation
//     canonical form, the equivalence-class representative
//   - EvenParity / CountTransitions — the two structural filters
//   - Generate — one deterministic pass producing the ordered, duplicate-free
//     code list for a given width (and optional transition count)
//
// ⚙️ Usage:
//
//	import "github.com/photomark/ringcode/codes"
//
//	opts := codes.DefaultOptions()
//	opts.Transitions = 4              // optional: keep 4-transition codes only
//
//	list, err := codes.Generate(14, &opts)
//	if err != nil {
//	  // ErrInvalidBitWidth or ErrInvalidTransitionCount
//	}
//	fmt.Println(len(list))
//
// Performance:
//
//   - Time:   O(2^(N−2) · N) — each of 2^(N−2) candidates is canonicalized
//     over N rotations
//   - Memory: O(K) for K accepted codes (plus the dedup set)
//
// All functions are pure: no I/O, no shared state, no goroutines.  Repeated
// invocations with identical inputs produce identical, identically ordered
// results, so concurrent use needs no synchronization.
//
// See example_test.go for runnable examples.
package codes
