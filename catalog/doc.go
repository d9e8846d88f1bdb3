// Package catalog presents a generated code list the way sheet-layout
// consumers use it: numbered entries plus per-segment queries and the
// zero-padded binary rendering that appears on printed target sheets.
//
// 🚀 What is a catalog?
//
//	An immutable, ordered list of Entry values built on top of
//	codes.Generate.  Entry numbering is 1-based — printed targets are
//	labeled "1", "2", ... beneath the ring — and order is the generator's
//	discovery order, so the same width always yields the same numbering.
//
// ✨ Key features:
//   - Build — one call from (width, options) to a numbered catalog
//   - Segment — is arc segment i of a code filled?  Segment 0 maps to the
//     most significant bit of the stored width, matching the drawing
//     convention that lays segments clockwise from the positive x-axis
//   - FormatBinary — MSB-first, zero-padded binary for labels and reports
//
// ⚙️ Usage:
//
//	cat, err := catalog.Build(14, nil)
//	if err != nil { ... }
//	for _, e := range cat.Entries() {
//	  for i := 0; i < cat.Bits(); i++ {
//	    if catalog.Segment(e.Code, i, cat.Bits()) {
//	      // draw arc segment i of target e.Index
//	    }
//	  }
//	}
//
// The package holds no rendering or geometry logic; it only answers the
// questions a renderer asks.
package catalog
