package reclaim

// Protect is implemented by a "point guard": a per-thread protection
// handle that protects at most one non-null pointer at a time. Calling
// Acquire replaces whatever the guard previously protected.
type Protect[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] interface {
	// Marked returns the three-state view of whatever this guard
	// currently protects, without touching the atomic slot.
	Marked() Marked[Shared[T, N, H, R]]

	// Acquire atomically loads atomic's current value, records it as
	// this guard's protected pointer (replacing whatever it protected
	// before, regardless of the loaded value), and returns the
	// three-state view of the result.
	Acquire(atomic *Atomic[T, N, H, R], order Ordering) Marked[Shared[T, N, H, R]]

	// AcquireIfEqual behaves like Acquire but only commits the load if
	// the observed raw word equals expected; on mismatch it returns
	// ErrNotEqual and leaves the guard's current protection unchanged.
	AcquireIfEqual(atomic *Atomic[T, N, H, R], expected MarkedPtr[T, N], order Ordering) (Marked[Shared[T, N, H, R]], error)

	// Release clears this guard's protection. After Release, any
	// Shared previously returned by this guard is no longer guaranteed
	// protected.
	Release()
}

// ProtectRegion is implemented by a "region guard": a protection
// handle whose mere liveness protects every pointer loaded through it
// during its scope (e.g. an epoch-based scheme, where entering the
// epoch is what protects, not any particular stored address). Unlike
// Protect, a region guard needs no exclusive (pointer) receiver to
// load — acquiring a second pointer does not displace protection over
// the first — and so carries no Release method: the scope itself,
// not an individual acquired value, is what ends protection.
type ProtectRegion[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] interface {
	Acquire(atomic *Atomic[T, N, H, R], order Ordering) Marked[Shared[T, N, H, R]]
	AcquireIfEqual(atomic *Atomic[T, N, H, R], expected MarkedPtr[T, N], order Ordering) (Marked[Shared[T, N, H, R]], error)
}
