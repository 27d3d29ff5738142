package reclaim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// alignedSample has alignment 8, wide enough to exercise Bits0..Bits3.
type alignedSample struct {
	value int64
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	s := &alignedSample{value: 8}
	p := ComposePtr[alignedSample, Bits1](s, 1)

	addr, tag := p.Decompose()
	require.Equal(t, s, addr)
	require.Equal(t, uint(1), tag)
}

func TestComposeTruncatesOverWideTag(t *testing.T) {
	s := &alignedSample{value: 8}
	p := ComposePtr[alignedSample, Bits2](s, 0b1111)

	require.Equal(t, uint(0b11), p.DecomposeTag())
	require.Equal(t, s, p.DecomposePtr())
}

func TestClearTagAndWithTag(t *testing.T) {
	s := &alignedSample{value: 8}
	p := ComposePtr[alignedSample, Bits2](s, 0b10)

	cleared := p.ClearTag()
	require.Equal(t, uint(0), cleared.DecomposeTag())
	require.Equal(t, s, cleared.DecomposePtr())

	retag := cleared.WithTag(0b11)
	require.Equal(t, uint(0b11), retag.DecomposeTag())
	require.Equal(t, s, retag.DecomposePtr())
}

func TestNullPtrIsNull(t *testing.T) {
	null := NullPtr[alignedSample, Bits2]()
	require.True(t, null.IsNull())
	require.Equal(t, uint(0), null.DecomposeTag())

	tagged := null.WithTag(0b10)
	require.True(t, tagged.IsNull())
	require.Equal(t, uint(0b10), tagged.DecomposeTag())
}

func TestMarkedPtrEqual(t *testing.T) {
	s := &alignedSample{value: 8}
	a := ComposePtr[alignedSample, Bits1](s, 1)
	b := ComposePtr[alignedSample, Bits1](s, 1)
	c := ComposePtr[alignedSample, Bits1](s, 0)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestConvertPtrWidensTagCapacity(t *testing.T) {
	s := &alignedSample{value: 8}
	narrow := ComposePtr[alignedSample, Bits1](s, 1)
	wide := ConvertPtr[alignedSample, Bits3](narrow)

	require.Equal(t, s, wide.DecomposePtr())
	require.Equal(t, uint(1), wide.DecomposeTag())
}

func TestConvertPtrPanicsWhenNarrowing(t *testing.T) {
	s := &alignedSample{value: 8}
	wide := ComposePtr[alignedSample, Bits3](s, 0b101)

	require.Panics(t, func() {
		ConvertPtr[alignedSample, Bits1](wide)
	})
}

func TestComposePtrPanicsWhenTagExceedsAlignment(t *testing.T) {
	type tiny struct{ b byte }
	v := tiny{}
	require.Panics(t, func() {
		ComposePtr[tiny, Bits1](&v, 1)
	})
}
