package reclaim

import "fmt"

// Unprotected is a non-null value loaded from an Atomic slot without
// any reclamation guarantee. It is freely copyable and storable; its
// IntoMarkedPtr word (address and tag) can be compared with that of any
// other view, but it does not implement Comparable and so cannot be the
// "current" argument of CompareExchange. Dereferencing it is the
// caller's proof obligation: nothing
// in this package guarantees the record it addresses has not already
// been (or concurrently is being) reclaimed.
type Unprotected[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	inner MarkedNonNull[T, N]
}

// Tag returns the current tag.
func (u Unprotected[T, N, H, R]) Tag() uint { return u.inner.DecomposeTag() }

// DerefUnprotected dereferences the pointer without any protection
// against concurrent reclamation.
//
// Safety precondition: the caller must independently guarantee the
// referenced record has not been reclaimed — e.g. because it holds an
// unrelated guard over the same data structure, or because the
// configured reclaimer is known never to actually free memory (as the
// leak package's reference scheme does not).
func (u Unprotected[T, N, H, R]) DerefUnprotected() *T {
	return u.inner.DecomposePtr()
}

// IntoMarkedPtr implements Storable.
func (u Unprotected[T, N, H, R]) IntoMarkedPtr() MarkedPtr[T, N] { return u.inner.IntoMarked() }
func (u Unprotected[T, N, H, R]) sealed()                        {}

// UnprotectedFromMarkedPtr reconstructs a Marked[Unprotected] from a
// raw tagged word, preserving a null address's tag.
func UnprotectedFromMarkedPtr[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](raw MarkedPtr[T, N]) Marked[Unprotected[T, N, H, R]] {
	nn, ok := NewMarkedNonNull[T, N](raw)
	if !ok {
		return MarkedNull[Unprotected[T, N, H, R]](raw.DecomposeTag())
	}
	return MarkedValue(Unprotected[T, N, H, R]{inner: nn})
}

func (u Unprotected[T, N, H, R]) String() string {
	addr, tag := u.inner.Decompose()
	return fmt.Sprintf("Unprotected{ptr: %p, tag: %d}", addr, tag)
}
