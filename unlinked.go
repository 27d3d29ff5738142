package reclaim

import "fmt"

// Unlinked is the unique "retire right" token produced by a successful
// swap or compare-exchange that removed a record from an atomic slot.
// It is the only thing Reclaimer.Retire/RetireUnchecked accept; a
// record must never be retired without one, and an Unlinked must never
// be produced except by an operation that genuinely unlinked the
// record it addresses.
type Unlinked[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	inner MarkedNonNull[T, N]
}

// Deref returns a pointer to the element. The value is still valid to
// read — it has been unlinked, not yet reclaimed.
func (u Unlinked[T, N, H, R]) Deref() *T {
	return u.inner.DecomposePtr()
}

// Header returns a pointer to the record's reclaimer-private header.
func (u Unlinked[T, N, H, R]) Header() *H {
	return HeaderOf[H](u.inner.DecomposePtr())
}

// Tag returns the current tag.
func (u Unlinked[T, N, H, R]) Tag() uint { return u.inner.DecomposeTag() }

// IntoUnprotected downgrades u to an Unprotected view, e.g. for
// storage back into a slot by a reclaimer that recycles unlinked
// records rather than freeing them.
func (u Unlinked[T, N, H, R]) IntoUnprotected() Unprotected[T, N, H, R] {
	return Unprotected[T, N, H, R]{inner: u.inner}
}

// IntoMarkedPtr implements Storable.
func (u Unlinked[T, N, H, R]) IntoMarkedPtr() MarkedPtr[T, N] { return u.inner.IntoMarked() }
func (u Unlinked[T, N, H, R]) sealed()                        {}

// UnlinkedFromMarkedPtr reconstructs an Unlinked from a raw tagged
// word.
//
// Safety precondition: raw must be the non-null result of an atomic
// operation (Swap/CompareExchange) that genuinely removed the record
// it addresses from every data structure it was reachable through.
func UnlinkedFromMarkedPtr[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](raw MarkedPtr[T, N]) (Unlinked[T, N, H, R], bool) {
	nn, ok := NewMarkedNonNull[T, N](raw)
	if !ok {
		return Unlinked[T, N, H, R]{}, false
	}
	return Unlinked[T, N, H, R]{inner: nn}, true
}

func (u Unlinked[T, N, H, R]) String() string {
	addr, tag := u.inner.Decompose()
	return fmt.Sprintf("Unlinked{ptr: %p, tag: %d}", addr, tag)
}
