package catalog_test

import (
	"testing"

	"github.com/photomark/ringcode/catalog"
	"github.com/photomark/ringcode/codes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_NumbersEntriesFromOne verifies 1-based numbering in generator
// discovery order.
func TestBuild_NumbersEntriesFromOne(t *testing.T) {
	cat, err := catalog.Build(8, nil)
	require.NoError(t, err)
	require.Equal(t, 13, cat.Len())
	assert.Equal(t, 8, cat.Bits())

	entries := cat.Entries()
	assert.Equal(t, catalog.Entry{Index: 1, Code: 17}, entries[0])
	assert.Equal(t, catalog.Entry{Index: 2, Code: 23}, entries[1])
	assert.Equal(t, catalog.Entry{Index: 13, Code: 119}, entries[12])
}

// TestBuild_PropagatesValidation ensures the generator's sentinels survive
// the catalog wrapper.
func TestBuild_PropagatesValidation(t *testing.T) {
	_, err := catalog.Build(5, nil)
	assert.ErrorIs(t, err, codes.ErrInvalidBitWidth)

	opts := codes.DefaultOptions()
	opts.Transitions = -3
	_, err = catalog.Build(14, &opts)
	assert.ErrorIs(t, err, codes.ErrInvalidTransitionCount)
}

// TestBuild_EmptyCatalog: width 2 yields a valid but empty catalog.
func TestBuild_EmptyCatalog(t *testing.T) {
	cat, err := catalog.Build(2, nil)
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
	assert.Empty(t, cat.Entries())
	assert.Empty(t, cat.Codes())
}

// TestCodes_MatchesGenerator: Codes() is the generator output verbatim.
func TestCodes_MatchesGenerator(t *testing.T) {
	cat, err := catalog.Build(10, nil)
	require.NoError(t, err)

	want, err := codes.Generate(10, nil)
	require.NoError(t, err)
	assert.Equal(t, want, cat.Codes())
}

// TestEntries_ReturnsCopy: callers cannot corrupt the catalog through the
// returned slice.
func TestEntries_ReturnsCopy(t *testing.T) {
	cat, err := catalog.Build(4, nil)
	require.NoError(t, err)

	leaked := cat.Entries()
	leaked[0].Code = 999

	assert.Equal(t, uint64(5), cat.Entries()[0].Code, "catalog must be immutable")
}

// TestSegment_MSBFirstNumbering pins the drawing convention: segment 0 is
// the most significant bit of the stored width.
func TestSegment_MSBFirstNumbering(t *testing.T) {
	// Code 5 at width 4 is 0101: segments 1 and 3 filled.
	assert.False(t, catalog.Segment(5, 0, 4))
	assert.True(t, catalog.Segment(5, 1, 4))
	assert.False(t, catalog.Segment(5, 2, 4))
	assert.True(t, catalog.Segment(5, 3, 4))
}

// TestSegment_OutOfRange: invalid segment indices report an absent segment
// rather than panicking.
func TestSegment_OutOfRange(t *testing.T) {
	assert.False(t, catalog.Segment(5, -1, 4))
	assert.False(t, catalog.Segment(5, 4, 4))
	assert.False(t, catalog.Segment(5, 100, 4))
}

// TestSegment_AgainstBinaryString cross-checks Segment with FormatBinary
// across a full catalog: segment i filled ⇔ character i is '1'.
func TestSegment_AgainstBinaryString(t *testing.T) {
	cat, err := catalog.Build(14, nil)
	require.NoError(t, err)

	for _, e := range cat.Entries() {
		bin := catalog.FormatBinary(e.Code, cat.Bits())
		require.Len(t, bin, 14)
		for i := 0; i < cat.Bits(); i++ {
			assert.Equal(t, bin[i] == '1', cat.Segment(e, i),
				"entry %d (%s) segment %d", e.Index, bin, i)
		}
	}
}

// TestFormatBinary pins zero padding and MSB-first ordering.
func TestFormatBinary(t *testing.T) {
	assert.Equal(t, "0101", catalog.FormatBinary(5, 4))
	assert.Equal(t, "00010001", catalog.FormatBinary(17, 8))
	assert.Equal(t, "00000010000001", catalog.FormatBinary(129, 14))
	assert.Equal(t, "00", catalog.FormatBinary(0, 2))
}
