package reclaim

import (
	"fmt"
	"unsafe"
)

// Shared is a borrowed, read-only reference to a value actively
// protected from reclamation by the guard that produced it. It is
// copyable but, unlike Rust's Shared<'g, ...>, Go has no lifetime
// parameter to bind its validity to the guard's borrow at compile
// time: callers must not retain a Shared past the guard's Release
// call or its next Acquire, exactly as the guard's doc comments
// describe. This is a deliberate, documented relaxation of the
// original's compile-time guarantee — Go generics have no lifetime
// parameters to encode it with.
type Shared[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	inner MarkedNonNull[T, N]
}

// sharedFromNonNull is the unexported constructor guards use to wrap
// a freshly loaded non-null address.
func sharedFromNonNull[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](nn MarkedNonNull[T, N]) Shared[T, N, H, R] {
	return Shared[T, N, H, R]{inner: nn}
}

// Deref returns a pointer to the shared element.
func (s Shared[T, N, H, R]) Deref() *T {
	return s.inner.DecomposePtr()
}

// Header returns a pointer to the record's reclaimer-private header.
func (s Shared[T, N, H, R]) Header() *H {
	return HeaderOf[H](s.inner.DecomposePtr())
}

// Tag returns the current tag.
func (s Shared[T, N, H, R]) Tag() uint { return s.inner.DecomposeTag() }

// ClearTag returns a copy of s with its tag cleared.
func (s Shared[T, N, H, R]) ClearTag() Shared[T, N, H, R] {
	addr, _ := s.inner.Decompose()
	return Shared[T, N, H, R]{inner: nonNullFromAddr[T, N](unsafe.Pointer(addr))}
}

// WithTag returns a copy of s with its tag replaced.
func (s Shared[T, N, H, R]) WithTag(tag uint) Shared[T, N, H, R] {
	addr, _ := s.inner.Decompose()
	nn, _ := NewMarkedNonNull[T, N](ComposePtr[T, N](addr, tag))
	return Shared[T, N, H, R]{inner: nn}
}

// IntoMarkedPtr implements Storable.
func (s Shared[T, N, H, R]) IntoMarkedPtr() MarkedPtr[T, N] { return s.inner.IntoMarked() }
func (s Shared[T, N, H, R]) sealed()                        {}
func (s Shared[T, N, H, R]) comparable_()                   {}

// Equal compares the full word (address + tag) with another Shared.
func (s Shared[T, N, H, R]) Equal(other Shared[T, N, H, R]) bool {
	return s.inner.Equal(other.inner)
}

// SharedFromMarkedPtr reconstructs a Marked[Shared] from a raw tagged
// word loaded from an Atomic slot, preserving a null address's tag.
//
// Safety precondition: raw must have been loaded while the returned
// Shared's guard scope (or an equivalent external protection) is still
// live; this package cannot verify that mechanically.
func SharedFromMarkedPtr[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](raw MarkedPtr[T, N]) Marked[Shared[T, N, H, R]] {
	nn, ok := NewMarkedNonNull[T, N](raw)
	if !ok {
		return MarkedNull[Shared[T, N, H, R]](raw.DecomposeTag())
	}
	return MarkedValue(sharedFromNonNull[T, N, H, R](nn))
}

func (s Shared[T, N, H, R]) String() string {
	addr, tag := s.inner.Decompose()
	return fmt.Sprintf("Shared{ptr: %p, tag: %d}", addr, tag)
}
