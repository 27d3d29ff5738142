package reclaim

import (
	"fmt"
	"unsafe"
)

// composeAddr packs tag into the N low bits of addr. addr must already
// be nil or aligned so that its low N bits are zero; tag is masked to
// its low N bits before being packed in, silently truncating any
// over-wide tag (scenario 2 of the testable properties: compose with
// N=2 and tag 0b1111 decomposes back to tag 0b11).
func composeAddr[T any, N TagBits](addr unsafe.Pointer, tag uint) unsafe.Pointer {
	assertTagWidth[T, N]()
	mask := tagMask[N]()
	if a := uintptr(addr); a != 0 && a&mask != 0 {
		panic("reclaim: address is not aligned for the requested tag width")
	}
	return unsafe.Pointer(uintptr(addr) | (uintptr(tag) & mask))
}

// decomposeAddr splits word back into its address and tag components.
func decomposeAddr[N TagBits](word unsafe.Pointer) (unsafe.Pointer, uint) {
	mask := tagMask[N]()
	a := uintptr(word)
	return unsafe.Pointer(a &^ mask), uint(a & mask)
}

// MarkedPtr is a machine-word-sized pointer to T that steals its N
// lowest bits to carry a small integer tag. It may be null; it carries
// no ownership and is freely copyable.
type MarkedPtr[T any, N TagBits] struct {
	ptr unsafe.Pointer
}

// NullPtr returns the zero word: both the address and the tag are
// zero.
func NullPtr[T any, N TagBits]() MarkedPtr[T, N] {
	return MarkedPtr[T, N]{}
}

// ComposePtr packs addr and tag into a single tagged word. addr must be
// nil or properly aligned for the requested tag width; tag is
// truncated to its low N bits.
func ComposePtr[T any, N TagBits](addr *T, tag uint) MarkedPtr[T, N] {
	return MarkedPtr[T, N]{ptr: composeAddr[T, N](unsafe.Pointer(addr), tag)}
}

// Decompose splits the word into its address and tag.
func (p MarkedPtr[T, N]) Decompose() (*T, uint) {
	addr, tag := decomposeAddr[N](p.ptr)
	return (*T)(addr), tag
}

// DecomposePtr returns just the address component, with the tag bits
// cleared.
func (p MarkedPtr[T, N]) DecomposePtr() *T {
	addr, _ := decomposeAddr[N](p.ptr)
	return (*T)(addr)
}

// DecomposeTag returns just the tag component.
func (p MarkedPtr[T, N]) DecomposeTag() uint {
	_, tag := decomposeAddr[N](p.ptr)
	return tag
}

// ClearTag returns a copy of p with the tag bits set to zero.
func (p MarkedPtr[T, N]) ClearTag() MarkedPtr[T, N] {
	addr, _ := decomposeAddr[N](p.ptr)
	return MarkedPtr[T, N]{ptr: addr}
}

// WithTag returns a copy of p with the tag replaced by tag (truncated
// to N bits); the address component is unchanged.
func (p MarkedPtr[T, N]) WithTag(tag uint) MarkedPtr[T, N] {
	addr, _ := decomposeAddr[N](p.ptr)
	return MarkedPtr[T, N]{ptr: composeAddr[T, N](addr, tag)}
}

// IsNull reports whether the address component is zero, regardless of
// the tag.
func (p MarkedPtr[T, N]) IsNull() bool {
	addr, _ := decomposeAddr[N](p.ptr)
	return addr == nil
}

// Equal compares the full word: address and tag must both match.
func (p MarkedPtr[T, N]) Equal(other MarkedPtr[T, N]) bool {
	return p.ptr == other.ptr
}

// Less imposes the natural ordering of the underlying word (address
// then tag, since the tag occupies the low bits).
func (p MarkedPtr[T, N]) Less(other MarkedPtr[T, N]) bool {
	return uintptr(p.ptr) < uintptr(other.ptr)
}

func (p MarkedPtr[T, N]) String() string {
	addr, tag := p.Decompose()
	return fmt.Sprintf("MarkedPtr{ptr: %p, tag: %d}", addr, tag)
}

// ConvertPtr widens the tag capacity of p from M bits to N bits; it
// panics if N is narrower than M. Rust enforces M <= N at compile time via a trait bound; Go
// generics cannot express that numeric constraint on type parameters,
// so it is checked here at call time instead.
func ConvertPtr[T any, N TagBits, M TagBits](p MarkedPtr[T, M]) MarkedPtr[T, N] {
	if tagBitsOf[M]() > tagBitsOf[N]() {
		panic("reclaim: cannot convert a marked pointer to a narrower tag width")
	}
	addr, tag := decomposeAddr[M](p.ptr)
	return MarkedPtr[T, N]{ptr: composeAddr[T, N](addr, tag)}
}
