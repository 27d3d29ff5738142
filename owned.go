package reclaim

import (
	"fmt"
	"unsafe"
)

// Owned is a unique, heap-allocating pointer to a T, analogous to Box
// in the ownership-typed pointer layer: read/write, storable into an
// Atomic slot, and convertible to Unlinked the moment it is swapped
// into one. An owned value and an unlinked value never coexist for the
// same record: the swap that produces one consumes the other.
type Owned[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	inner MarkedNonNull[T, N]
}

// NewOwned allocates a fresh record holding v with a zero-valued
// header and returns a unique owning pointer to it.
func NewOwned[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](v T) Owned[T, N, H, R] {
	rec := NewRecord[H, T](v)
	return Owned[T, N, H, R]{inner: nonNullFromAddr[T, N](unsafe.Pointer(&rec.Elem))}
}

// NewOwnedWithHeader is like NewOwned but with an explicit header
// value instead of H's zero value.
func NewOwnedWithHeader[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](v T, header H) Owned[T, N, H, R] {
	rec := NewRecordWithHeader[H](v, header)
	return Owned[T, N, H, R]{inner: nonNullFromAddr[T, N](unsafe.Pointer(&rec.Elem))}
}

// nonNullFromAddr is an unexported helper used only by constructors
// that already know addr is non-null and properly aligned (it comes
// straight from a freshly allocated Record's Elem field, or from a
// pointer a caller is reconstructing a wrapper from).
func nonNullFromAddr[T any, N TagBits](addr unsafe.Pointer) MarkedNonNull[T, N] {
	return MarkedNonNull[T, N]{ptr: composeAddr[T, N](addr, 0)}
}

// Deref returns a pointer to the owned element.
func (o Owned[T, N, H, R]) Deref() *T {
	return o.inner.DecomposePtr()
}

// Header returns a pointer to the record's reclaimer-private header.
func (o Owned[T, N, H, R]) Header() *H {
	return HeaderOf[H](o.inner.DecomposePtr())
}

// Tag returns the current tag.
func (o Owned[T, N, H, R]) Tag() uint { return o.inner.DecomposeTag() }

// ClearTag returns a copy of o with its tag cleared.
func (o Owned[T, N, H, R]) ClearTag() Owned[T, N, H, R] {
	addr, _ := o.inner.Decompose()
	return Owned[T, N, H, R]{inner: nonNullFromAddr[T, N](unsafe.Pointer(addr))}
}

// WithTag returns a copy of o with its tag replaced.
func (o Owned[T, N, H, R]) WithTag(tag uint) Owned[T, N, H, R] {
	addr, _ := o.inner.Decompose()
	nn, _ := NewMarkedNonNull[T, N](ComposePtr[T, N](addr, tag))
	return Owned[T, N, H, R]{inner: nn}
}

// IntoMarkedPtr implements Storable.
func (o Owned[T, N, H, R]) IntoMarkedPtr() MarkedPtr[T, N] { return o.inner.IntoMarked() }
func (o Owned[T, N, H, R]) sealed()                        {}

// OwnedFromMarkedPtr reconstructs an Owned from a raw tagged word.
//
// Safety precondition: raw must be non-null and must genuinely be the
// unique owning reference to the record it addresses — e.g. the
// result of Owned.IntoMarkedPtr, never a pointer a Shared/Unprotected
// view still has a live reference to.
func OwnedFromMarkedPtr[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](raw MarkedPtr[T, N]) (Owned[T, N, H, R], bool) {
	nn, ok := NewMarkedNonNull[T, N](raw)
	if !ok {
		return Owned[T, N, H, R]{}, false
	}
	return Owned[T, N, H, R]{inner: nn}, true
}

// Leak consumes o and returns a plain Go pointer to the element,
// severing it from this package's ownership bookkeeping. Unlike Rust's
// leak, which skips a deallocator call, Go's garbage collector reclaims
// the backing record on its own once it becomes unreachable; Leak's
// role is purely to hand the caller an ordinary *T they may now hold
// and mutate without respecting the single-owner discipline.
func (o Owned[T, N, H, R]) Leak() *T {
	return o.inner.DecomposePtr()
}

// IntoRaw converts o into an untyped pointer suitable for crossing an
// FFI-like boundary (e.g. storage in a map keyed by unsafe.Pointer).
func (o Owned[T, N, H, R]) IntoRaw() unsafe.Pointer {
	return unsafe.Pointer(o.inner.DecomposePtr())
}

// OwnedFromRaw reconstructs an Owned from a pointer previously produced
// by IntoRaw. Safety precondition: ptr must have come from exactly one
// prior IntoRaw call on an Owned of this same (T, N, H, R) instantiation,
// with no other Owned reconstructed from it since.
func OwnedFromRaw[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](ptr unsafe.Pointer) Owned[T, N, H, R] {
	return Owned[T, N, H, R]{inner: nonNullFromAddr[T, N](ptr)}
}

// Free severs o's last reachable reference from this package's
// perspective. It does not call an allocator — Go's garbage collector
// reclaims the backing Record once it becomes unreachable, which
// happens once Free's caller also stops holding any *T obtained via
// Deref/Leak. Calling Free is this package's closest analogue to
// Rust's deterministic Drop timing; it exists so a caller's intent to
// stop owning the value is explicit in the code even though it performs
// no GC-visible action beyond dropping o's own reference.
func (o *Owned[T, N, H, R]) Free() {
	*o = Owned[T, N, H, R]{}
}

func (o Owned[T, N, H, R]) String() string {
	addr, tag := o.inner.Decompose()
	return fmt.Sprintf("Owned{ptr: %p, tag: %d}", addr, tag)
}
