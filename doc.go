// Package ringcode generates the catalog of valid bit-codes for circular
// coded photogrammetry targets — ring-shaped fiducial markers whose identity
// survives arbitrary in-plane rotation of the photographed target.
//
// 🚀 What is ringcode?
//
//	A small, dependency-light library built around one hard problem:
//	enumerating rotation-invariant circular bit patterns under three
//	structural constraints:
//	  • Even parity — an even number of ring segments is filled
//	  • Opposite pair — at least one segment and its diametric twin are both filled
//	  • Transitions — optionally, an exact number of 0→1 edges along the ring
//
// ✨ Why choose ringcode?
//
//   - Deterministic — identical inputs always yield the identical ordered catalog
//   - Pure Go — no cgo, no I/O, no global state; safe to call concurrently
//   - Bit-exact — binary and decimal output match the established coding
//     scheme for circular coded targets
//   - Small API — a handful of pure functions over fixed-width unsigned integers
//
// Everything is organized under two packages plus a CLI:
//
//	codes/       — rotation canonicalization, parity, transition counting, generation
//	catalog/     — the consumer-facing view: 1-based numbering, segment queries,
//	               binary rendering for print layouts
//	cmd/ringcode — command-line front end emitting the printable catalog
//
// Quick ASCII example (width 4, the single valid code 0101):
//
//	      ░░
//	    ▓▓  ▓▓      segments 1 and 3 filled — diametrically
//	      ░░        opposite, parity even
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/photomark/ringcode
package ringcode
