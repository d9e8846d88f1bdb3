package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/photomark/ringcode/catalog"
)

// writeReport emits the printable catalog report:
//
//	Codes (as binary):
//	<one zero-padded width-N binary string per code>
//	<blank>
//	Codes (as integer):
//	[c1, c2, ...]
//	<blank>
//	Number of codes: <count>
//
// The layout is byte-stable; downstream sheet tooling parses it as-is.
func writeReport(w io.Writer, cat *catalog.Catalog) error {
	var b strings.Builder

	b.WriteString("Codes (as binary):\n")
	for _, e := range cat.Entries() {
		b.WriteString(catalog.FormatBinary(e.Code, cat.Bits()))
		b.WriteByte('\n')
	}

	b.WriteString("\nCodes (as integer):\n")
	b.WriteString(formatIntegerList(cat.Codes()))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "\nNumber of codes: %d\n", cat.Len())

	_, err := io.WriteString(w, b.String())

	return err
}

// formatIntegerList renders codes as a bracketed, comma-separated decimal
// list: "[17, 23, 27]"; an empty catalog renders as "[]".
func formatIntegerList(list []uint64) string {
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = strconv.FormatUint(c, 10)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
