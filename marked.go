package reclaim

// Marked is a three-state value carried by guard loads and atomic slot
// results. It is distinct from a plain two-state optional because a
// null address may still carry a meaningful tag (e.g. a data structure
// that uses the tag bits of a null slot to encode a "deleted" marker).
//
//   - MarkedValue(s): the address component was non-null; s is the
//     associated non-null pointer view (Shared, Unprotected, ...).
//   - MarkedNull(tag): the address component was null; tag is whatever
//     tag accompanied it.
//
// Reducing a Marked to a plain (S, bool) optional, via Option, discards
// the tag in the null case.
type Marked[S any] struct {
	value   S
	nullTag uint
	isNull  bool
}

// MarkedValue wraps a non-null pointer view as the "value present"
// state of a Marked.
func MarkedValue[S any](v S) Marked[S] {
	return Marked[S]{value: v}
}

// MarkedNull constructs the "address is null" state of a Marked,
// retaining the tag that accompanied the null address.
func MarkedNull[S any](tag uint) Marked[S] {
	return Marked[S]{isNull: true, nullTag: tag}
}

// IsNull reports whether the address component was null.
func (m Marked[S]) IsNull() bool {
	return m.isNull
}

// Tag returns the tag that accompanied a null address. Calling it on a
// non-null Marked returns zero; use Value to retrieve the tag of a
// non-null pointer view instead.
func (m Marked[S]) Tag() uint {
	return m.nullTag
}

// Value returns the wrapped pointer view and true if the address was
// non-null, or the zero value and false otherwise.
func (m Marked[S]) Value() (S, bool) {
	return m.value, !m.isNull
}

// Option reduces the three-state Marked to a plain two-state optional,
// discarding the tag that would have accompanied a null address.
func (m Marked[S]) Option() (S, bool) {
	return m.Value()
}
