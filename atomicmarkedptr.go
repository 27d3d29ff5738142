package reclaim

import (
	"sync/atomic"
	"unsafe"
)

// AtomicMarkedPtr is a word-sized atomic cell holding a MarkedPtr[T,N].
//
// The tagged word is stored as unsafe.Pointer, never as a bare
// uintptr, and manipulated exclusively through sync/atomic's
// Pointer-specific functions (LoadPointer, CompareAndSwapPointer, ...)
// operating on an *unsafe.Pointer field. This matters for
// garbage-collector correctness: a tag only ever overwrites bits that a correctly
// aligned address already guarantees to be zero, so the tagged word is
// always an interior pointer into the very allocation its address
// component identifies. Go's precise collector keeps an object alive
// given any interior pointer into it, so no separate retention
// bookkeeping is required to keep a record reachable while a tagged
// reference to it exists. See gcassume.go for the accompanying
// moving-GC canary import.
type AtomicMarkedPtr[T any, N TagBits] struct {
	addr unsafe.Pointer
}

// NewAtomicMarkedPtr constructs an atomic cell holding p.
func NewAtomicMarkedPtr[T any, N TagBits](p MarkedPtr[T, N]) *AtomicMarkedPtr[T, N] {
	return &AtomicMarkedPtr[T, N]{addr: p.ptr}
}

// Load atomically reads the current word.
func (a *AtomicMarkedPtr[T, N]) Load(order Ordering) MarkedPtr[T, N] {
	validateLoadOrder(order)
	return MarkedPtr[T, N]{ptr: atomic.LoadPointer(&a.addr)}
}

// Store atomically writes p.
func (a *AtomicMarkedPtr[T, N]) Store(p MarkedPtr[T, N], order Ordering) {
	validateStoreOrder(order)
	atomic.StorePointer(&a.addr, p.ptr)
}

// Swap atomically writes p and returns the previous word.
func (a *AtomicMarkedPtr[T, N]) Swap(p MarkedPtr[T, N], order Ordering) MarkedPtr[T, N] {
	// sync/atomic has no ordering-parameterized SwapPointer; Go's
	// pointer atomics are always sequentially consistent, which
	// satisfies any ordering this package's contract could request.
	_ = order
	old := atomic.SwapPointer(&a.addr, p.ptr)
	return MarkedPtr[T, N]{ptr: old}
}

// CompareExchange attempts to replace the word with new if it
// currently equals current. On success it returns (current, true). On
// failure it returns the actually-observed word (re-read with the
// failure ordering) and false.
func (a *AtomicMarkedPtr[T, N]) CompareExchange(current, new MarkedPtr[T, N], success, failure Ordering) (MarkedPtr[T, N], bool) {
	validateCASOrders(success, failure)
	if atomic.CompareAndSwapPointer(&a.addr, current.ptr, new.ptr) {
		return current, true
	}
	return a.Load(failure), false
}
