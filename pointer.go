package reclaim

// Storable is implemented by every pointer view that may be written
// into an Atomic slot's Store/Swap/CompareExchange "new" position:
// Owned, Shared, Unlinked, Unprotected, and the shared null form
// returned by None (and NoneComparable).
//
// The interface carries an unexported method so that it is sealed:
// only types defined in this package can implement it, mirroring the
// crate-private `Internal` marker trait in the original source, which
// existed for exactly this purpose.
type Storable[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] interface {
	// IntoMarkedPtr is the canonical conversion from a typed pointer
	// view to the raw tagged word the slot actually stores.
	IntoMarkedPtr() MarkedPtr[T, N]
	sealed()
}

// Comparable is implemented by the pointer views that may be used as
// the "current" argument of Atomic.CompareExchange: Shared and its
// null form. Owned and Unlinked deliberately do not implement it —
// comparing against them would require moving a unique token into the
// comparison, which the original source's Compare trait also refuses
// to allow (only Shared/Option<Shared> implement Compare there).
// Unprotected does not implement Compare in the source either, so it
// is excluded here too.
type Comparable[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] interface {
	Storable[T, N, H, R]
	comparable_()
}
