package reclaim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicMarkedPtrLoadStore(t *testing.T) {
	s := &alignedSample{value: 1}
	a := NewAtomicMarkedPtr[alignedSample, Bits1](NullPtr[alignedSample, Bits1]())

	require.True(t, a.Load(Relaxed).IsNull())

	p := ComposePtr[alignedSample, Bits1](s, 1)
	a.Store(p, Relaxed)

	loaded := a.Load(Acquire)
	require.True(t, loaded.Equal(p))
}

func TestAtomicMarkedPtrSwap(t *testing.T) {
	s1, s2 := &alignedSample{value: 1}, &alignedSample{value: 2}
	a := NewAtomicMarkedPtr[alignedSample, Bits1](ComposePtr[alignedSample, Bits1](s1, 0))

	prev := a.Swap(ComposePtr[alignedSample, Bits1](s2, 1), SeqCst)
	require.Equal(t, s1, prev.DecomposePtr())
	require.Equal(t, s2, a.Load(SeqCst).DecomposePtr())
}

func TestAtomicMarkedPtrCompareExchange(t *testing.T) {
	s1, s2 := &alignedSample{value: 1}, &alignedSample{value: 2}
	current := ComposePtr[alignedSample, Bits1](s1, 0)
	a := NewAtomicMarkedPtr[alignedSample, Bits1](current)

	observed, ok := a.CompareExchange(current, ComposePtr[alignedSample, Bits1](s2, 1), SeqCst, Relaxed)
	require.True(t, ok)
	require.True(t, observed.Equal(current))
	require.Equal(t, s2, a.Load(SeqCst).DecomposePtr())

	stale := ComposePtr[alignedSample, Bits1](s1, 0)
	observed, ok = a.CompareExchange(stale, ComposePtr[alignedSample, Bits1](s1, 1), SeqCst, Relaxed)
	require.False(t, ok)
	require.Equal(t, s2, observed.DecomposePtr())
}

func TestLoadOrderRejectsReleaseAndAcqRel(t *testing.T) {
	a := NewAtomicMarkedPtr[alignedSample, Bits1](NullPtr[alignedSample, Bits1]())
	require.Panics(t, func() { a.Load(Release) })
	require.Panics(t, func() { a.Load(AcqRel) })
}

func TestStoreOrderRejectsAcquireAndAcqRel(t *testing.T) {
	a := NewAtomicMarkedPtr[alignedSample, Bits1](NullPtr[alignedSample, Bits1]())
	require.Panics(t, func() { a.Store(NullPtr[alignedSample, Bits1](), Acquire) })
	require.Panics(t, func() { a.Store(NullPtr[alignedSample, Bits1](), AcqRel) })
}

func TestCASOrdersRejectReleaseFailure(t *testing.T) {
	a := NewAtomicMarkedPtr[alignedSample, Bits1](NullPtr[alignedSample, Bits1]())
	null := NullPtr[alignedSample, Bits1]()
	require.Panics(t, func() {
		a.CompareExchange(null, null, SeqCst, Release)
	})
}

func TestCASOrdersRejectFailureStrongerThanSuccess(t *testing.T) {
	a := NewAtomicMarkedPtr[alignedSample, Bits1](NullPtr[alignedSample, Bits1]())
	null := NullPtr[alignedSample, Bits1]()
	require.Panics(t, func() {
		a.CompareExchange(null, null, Acquire, SeqCst)
	})
}
