package reclaim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	reclaim "github.com/oliver-giersch/reclaim-sub000"
	"github.com/oliver-giersch/reclaim-sub000/leak"
)

type node struct {
	value int
}

func TestAtomicLoadEmptyIsNull(t *testing.T) {
	a := reclaim.NullAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]]()

	guard := leak.NewGuard[node, reclaim.Bits1]()
	_, ok := a.Load(reclaim.Acquire, guard)
	require.False(t, ok)
}

func TestAtomicStoreThenLoad(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 42})

	guard := leak.NewGuard[node, reclaim.Bits1]()
	shared, ok := a.Load(reclaim.Acquire, guard)
	require.True(t, ok)
	require.Equal(t, 42, shared.Deref().value)
}

func TestAtomicSwap(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 1})
	next := reclaim.NewOwned[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 2})

	unlinked, ok := a.Swap(next, reclaim.AcqRel)
	require.True(t, ok)
	require.Equal(t, 1, unlinked.Deref().value)

	guard := leak.NewGuard[node, reclaim.Bits1]()
	shared, ok := a.Load(reclaim.Acquire, guard)
	require.True(t, ok)
	require.Equal(t, 2, shared.Deref().value)
}

func TestAtomicCompareExchangeSuccess(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 1})
	guard := leak.NewGuard[node, reclaim.Bits1]()

	current, ok := a.Load(reclaim.Acquire, guard)
	require.True(t, ok)

	next := reclaim.NewOwned[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 2})
	unlinked, err := a.CompareExchange(current, next, reclaim.AcqRel, reclaim.Relaxed)
	require.NoError(t, err)
	require.Equal(t, 1, unlinked.Deref().value)
}

func TestAtomicCompareExchangeFailureCarriesInputs(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 1})
	staleGuard := leak.NewGuard[node, reclaim.Bits1]()
	stale, ok := staleGuard.Acquire(a, reclaim.Acquire).Value()
	require.True(t, ok)

	// Displace the slot so `stale` no longer matches.
	a.Store(reclaim.NewOwned[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 99}), reclaim.Release)

	next := reclaim.NewOwned[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 2})
	_, err := a.CompareExchange(stale, next, reclaim.AcqRel, reclaim.Relaxed)
	require.Error(t, err)

	var failure *reclaim.CompareExchangeFailure[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]]
	require.ErrorAs(t, err, &failure)
	require.Equal(t, next, failure.New)

	observed, ok := failure.Observed.Value()
	require.True(t, ok)
	require.Equal(t, 99, observed.DerefUnprotected().value)
}

func TestAtomicTake(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 5})

	owned, ok := a.Take()
	require.True(t, ok)
	require.Equal(t, 5, owned.Deref().value)

	require.True(t, a.LoadRaw(reclaim.Relaxed).IsNull())

	_, ok = a.Take()
	require.False(t, ok)
}

func TestAtomicLoadIfEqual(t *testing.T) {
	a := reclaim.NewAtomic[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 1})
	raw := a.LoadRaw(reclaim.Relaxed)

	guard := leak.NewGuard[node, reclaim.Bits1]()
	marked, err := a.LoadIfEqual(raw, reclaim.Acquire, guard)
	require.NoError(t, err)
	shared, ok := marked.Value()
	require.True(t, ok)
	require.Equal(t, 1, shared.Deref().value)

	a.Store(reclaim.NewOwned[node, reclaim.Bits1, leak.Header, leak.Reclaimer[node, reclaim.Bits1]](node{value: 2}), reclaim.Release)

	_, err = a.LoadIfEqual(raw, reclaim.Acquire, guard)
	require.ErrorIs(t, err, reclaim.ErrNotEqual)

	// A mismatched LoadIfEqual must leave the guard's prior protected
	// value dereferenceable and unchanged.
	stillShared, ok := guard.Marked().Value()
	require.True(t, ok)
	require.Equal(t, 1, stillShared.Deref().value)
}
