package catalog

import (
	"fmt"

	"github.com/photomark/ringcode/codes"
)

// firstIndex is the number printed under the first target on a sheet.
const firstIndex = 1

// Entry is one catalog position: a code value and its 1-based index.
type Entry struct {
	// Index is the 1-based catalog number, stable for a given width.
	Index int

	// Code is the canonical code value.
	Code uint64
}

// Catalog is an immutable, ordered collection of entries for one bit width.
type Catalog struct {
	bits    int
	entries []Entry
}

// Build generates the code list for the given width and options (see
// codes.Generate) and numbers it in discovery order starting at 1.
//
// Errors are those of codes.Generate: ErrInvalidBitWidth and
// ErrInvalidTransitionCount, checked before any work happens.
func Build(bits int, opts *codes.Options) (*Catalog, error) {
	list, err := codes.Generate(bits, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog.Build: %w", err)
	}

	entries := make([]Entry, len(list))
	for i, code := range list {
		entries[i] = Entry{Index: i + firstIndex, Code: code}
	}

	return &Catalog{bits: bits, entries: entries}, nil
}

// Bits returns the code width the catalog was built for.
func (c *Catalog) Bits() int { return c.bits }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the entries in catalog order.  The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Codes returns just the code values in catalog order, the shape consumed
// by report writers.
func (c *Catalog) Codes() []uint64 {
	out := make([]uint64, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Code
	}

	return out
}

// Segment reports whether arc segment i of code is filled at the given
// width.  Segments are numbered 0..bits−1, segment 0 being the most
// significant bit of the stored width.  Out-of-range i reports false.
func Segment(code uint64, i, bits int) bool {
	if i < 0 || i >= bits {
		return false
	}

	return code&(uint64(1)<<uint(bits-1-i)) != 0
}

// Segment reports whether arc segment i of the entry's code is filled,
// using the catalog's width.
func (c *Catalog) Segment(e Entry, i int) bool {
	return Segment(e.Code, i, c.bits)
}

// FormatBinary renders code as a zero-padded, MSB-first binary string of
// the given width — the form printed on target sheets and reports.
func FormatBinary(code uint64, bits int) string {
	return fmt.Sprintf("%0*b", bits, code)
}
