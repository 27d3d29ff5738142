package reclaim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMarkedNonNullRejectsNull(t *testing.T) {
	null := NullPtr[alignedSample, Bits1]()
	_, ok := NewMarkedNonNull[alignedSample, Bits1](null)
	require.False(t, ok)
}

func TestNewMarkedNonNullAcceptsNonNull(t *testing.T) {
	s := &alignedSample{value: 1}
	raw := ComposePtr[alignedSample, Bits1](s, 1)

	nn, ok := NewMarkedNonNull[alignedSample, Bits1](raw)
	require.True(t, ok)

	addr, tag := nn.Decompose()
	require.Equal(t, s, addr)
	require.Equal(t, uint(1), tag)
}

func TestNewMarkedPreservesNullTag(t *testing.T) {
	null := NullPtr[alignedSample, Bits2]().WithTag(0b10)

	m := NewMarked[alignedSample, Bits2](null)
	require.True(t, m.IsNull())
	require.Equal(t, uint(0b10), m.Tag())

	_, ok := m.Value()
	require.False(t, ok)
}

func TestNewMarkedValuePresent(t *testing.T) {
	s := &alignedSample{value: 1}
	raw := ComposePtr[alignedSample, Bits1](s, 1)

	m := NewMarked[alignedSample, Bits1](raw)
	require.False(t, m.IsNull())

	nn, ok := m.Value()
	require.True(t, ok)
	require.Equal(t, s, nn.DecomposePtr())
}

func TestDanglingMarkedNonNullIsNonNull(t *testing.T) {
	d := DanglingMarkedNonNull[alignedSample, Bits1]()
	addr, tag := d.Decompose()
	require.NotNil(t, addr)
	require.Equal(t, uint(0), tag)
}

func TestMarkedNonNullEqual(t *testing.T) {
	s := &alignedSample{value: 1}
	a, _ := NewMarkedNonNull[alignedSample, Bits1](ComposePtr[alignedSample, Bits1](s, 1))
	b, _ := NewMarkedNonNull[alignedSample, Bits1](ComposePtr[alignedSample, Bits1](s, 1))
	c, _ := NewMarkedNonNull[alignedSample, Bits1](ComposePtr[alignedSample, Bits1](s, 0))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
