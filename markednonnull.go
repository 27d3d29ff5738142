package reclaim

import "unsafe"

// MarkedNonNull is a tagged pointer whose address component is
// guaranteed non-zero; the tag may still be anything representable in
// N bits.
type MarkedNonNull[T any, N TagBits] struct {
	ptr unsafe.Pointer
}

// NewMarkedNonNull checks raw's address component and returns a
// MarkedNonNull plus true if it is non-zero, or the zero value and
// false if raw's address was null (regardless of its tag). Callers
// that need to retain a null tag should use NewMarked instead.
func NewMarkedNonNull[T any, N TagBits](raw MarkedPtr[T, N]) (MarkedNonNull[T, N], bool) {
	addr, _ := decomposeAddr[N](raw.ptr)
	if addr == nil {
		return MarkedNonNull[T, N]{}, false
	}
	return MarkedNonNull[T, N]{ptr: raw.ptr}, true
}

// NewMarked checks raw and returns the three-state Marked view of it:
// Value(nonNull) if the address is non-zero, Null(tag) otherwise. This
// is the tri-state counterpart of NewMarkedNonNull, used wherever a
// null address's tag must not be discarded.
func NewMarked[T any, N TagBits](raw MarkedPtr[T, N]) Marked[MarkedNonNull[T, N]] {
	nn, ok := NewMarkedNonNull[T, N](raw)
	if !ok {
		return MarkedNull[MarkedNonNull[T, N]](raw.DecomposeTag())
	}
	return MarkedValue(nn)
}

// DanglingMarkedNonNull returns a well-aligned, non-null sentinel
// value suitable for a lazily-initialized slot that has not yet
// allocated a real record. Unlike Rust's NonNull::dangling(), Go has
// no way to manufacture a non-null pointer without some backing
// allocation; each call allocates a fresh zero-valued T and returns a
// pointer to it. Callers must still treat it as a sentinel: dereferencing
// it observes T's zero value, which is never a meaningful record.
func DanglingMarkedNonNull[T any, N TagBits]() MarkedNonNull[T, N] {
	return MarkedNonNull[T, N]{ptr: unsafe.Pointer(new(T))}
}

// Decompose splits the value into its non-null address and tag.
func (p MarkedNonNull[T, N]) Decompose() (*T, uint) {
	addr, tag := decomposeAddr[N](p.ptr)
	return (*T)(addr), tag
}

// DecomposePtr returns just the non-null address.
func (p MarkedNonNull[T, N]) DecomposePtr() *T {
	addr, _ := decomposeAddr[N](p.ptr)
	return (*T)(addr)
}

// DecomposeTag returns just the tag.
func (p MarkedNonNull[T, N]) DecomposeTag() uint {
	_, tag := decomposeAddr[N](p.ptr)
	return tag
}

// IntoMarked converts the non-null value into a plain (possibly null,
// though never in practice for a legitimately constructed
// MarkedNonNull) MarkedPtr.
func (p MarkedNonNull[T, N]) IntoMarked() MarkedPtr[T, N] {
	return MarkedPtr[T, N]{ptr: p.ptr}
}

// Equal compares the full word: address and tag must both match.
func (p MarkedNonNull[T, N]) Equal(other MarkedNonNull[T, N]) bool {
	return p.ptr == other.ptr
}
