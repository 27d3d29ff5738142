package reclaim

// Atomic is the reclamation-aware atomic slot: the building block data
// structures use in place of a raw atomic pointer field. It wraps an
// AtomicMarkedPtr and layers the ownership discipline on top of it —
// every read returns a guard-protected or explicitly-unprotected view,
// and every operation that removes a record hands back an Unlinked
// token rather than a bare pointer.
type Atomic[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	raw AtomicMarkedPtr[T, N]
}

// NullAtomic constructs a slot whose initial value is the null pointer
// with a zero tag.
func NullAtomic[T any, N TagBits, H any, R Reclaimer[T, N, H, R]]() *Atomic[T, N, H, R] {
	return &Atomic[T, N, H, R]{}
}

// NewAtomic allocates a fresh record holding v and returns a slot
// already storing it (tag zero).
func NewAtomic[T any, N TagBits, H any, R Reclaimer[T, N, H, R]](v T) *Atomic[T, N, H, R] {
	owned := NewOwned[T, N, H, R](v)
	a := &Atomic[T, N, H, R]{}
	a.raw = *NewAtomicMarkedPtr[T, N](owned.IntoMarkedPtr())
	return a
}

// LoadRaw atomically reads the slot's tagged word without any
// protection and without any attempt to dereference it. Like
// LoadUnprotected it takes no guard, and it returns the bare tagged
// word, useful for e.g. null checks before deciding whether to protect
// at all.
func (a *Atomic[T, N, H, R]) LoadRaw(order Ordering) MarkedPtr[T, N] {
	return a.raw.Load(order)
}

// LoadUnprotected atomically reads the slot and returns the three-state
// Unprotected view of it. The caller takes on the obligation described
// by Unprotected.DerefUnprotected: nothing here proves the loaded
// record is still live.
func (a *Atomic[T, N, H, R]) LoadUnprotected(order Ordering) Marked[Unprotected[T, N, H, R]] {
	return UnprotectedFromMarkedPtr[T, N, H, R](a.raw.Load(order))
}

// Load atomically reads the slot, protects the result with guard
// (displacing whatever guard previously protected), and returns the
// non-null Shared view plus true — or the zero Shared and false if the
// slot held null.
func (a *Atomic[T, N, H, R]) Load(order Ordering, guard Protect[T, N, H, R]) (Shared[T, N, H, R], bool) {
	return guard.Acquire(a, order).Value()
}

// LoadMarked is like Load but returns the three-state Marked view
// directly, preserving a null slot's tag instead of discarding it.
func (a *Atomic[T, N, H, R]) LoadMarked(order Ordering, guard Protect[T, N, H, R]) Marked[Shared[T, N, H, R]] {
	return guard.Acquire(a, order)
}

// LoadIfEqual behaves like LoadMarked but only commits the protection
// if the slot's raw word equals expected at the moment of the load;
// otherwise it returns ErrNotEqual and leaves guard's prior protection
// untouched.
func (a *Atomic[T, N, H, R]) LoadIfEqual(expected MarkedPtr[T, N], order Ordering, guard Protect[T, N, H, R]) (Marked[Shared[T, N, H, R]], error) {
	return guard.AcquireIfEqual(a, expected, order)
}

// Store atomically writes v's tagged word into the slot. Any record
// previously stored there is neither retired nor freed — overwriting a
// slot that still owns a reachable record is a caller error exactly as
// it is for Rust's Atomic::store.
func (a *Atomic[T, N, H, R]) Store(v Storable[T, N, H, R], order Ordering) {
	a.raw.Store(v.IntoMarkedPtr(), order)
}

// Swap atomically writes v's tagged word into the slot and returns the
// previous value as an Unlinked token (ok is false if the previous
// value was null, in which case the Unlinked is the zero value and must
// not be used).
func (a *Atomic[T, N, H, R]) Swap(v Storable[T, N, H, R], order Ordering) (Unlinked[T, N, H, R], bool) {
	prev := a.raw.Swap(v.IntoMarkedPtr(), order)
	return UnlinkedFromMarkedPtr[T, N, H, R](prev)
}

// CompareExchangeFailure is returned by a failed CompareExchange or
// CompareExchangeWeak. It carries both the word actually observed in
// the slot (as an Unprotected view, tag preserved even if null) and the
// caller's "new" input, un-lost so the caller may retry or otherwise
// reuse it (e.g. an Owned that must still eventually be freed or
// retried) without having to reconstruct it from raw.
type CompareExchangeFailure[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct {
	Observed Marked[Unprotected[T, N, H, R]]
	New      Storable[T, N, H, R]
}

func (e *CompareExchangeFailure[T, N, H, R]) Error() string {
	return "reclaim: compare-exchange failed: " + ErrNotEqual.Error()
}

// CompareExchange attempts to replace the slot's current value with new
// if it currently equals current (compared by full tagged word). On
// success it returns the previous value as an Unlinked token and a nil
// error. On failure it returns the zero Unlinked and a
// *CompareExchangeFailure carrying the observed value and new.
func (a *Atomic[T, N, H, R]) CompareExchange(
	current Comparable[T, N, H, R],
	new Storable[T, N, H, R],
	success, failure Ordering,
) (Unlinked[T, N, H, R], error) {
	return a.compareExchange(current, new, success, failure)
}

// CompareExchangeWeak is identical to CompareExchange. This package has
// no spurious-failure-prone primitive to expose a genuinely weaker
// variant of, so it is provided only to preserve call-site parity with
// code ported from an environment that distinguishes the two.
func (a *Atomic[T, N, H, R]) CompareExchangeWeak(
	current Comparable[T, N, H, R],
	new Storable[T, N, H, R],
	success, failure Ordering,
) (Unlinked[T, N, H, R], error) {
	return a.compareExchange(current, new, success, failure)
}

func (a *Atomic[T, N, H, R]) compareExchange(
	current Comparable[T, N, H, R],
	new Storable[T, N, H, R],
	success, failure Ordering,
) (Unlinked[T, N, H, R], error) {
	currentWord := current.IntoMarkedPtr()
	newWord := new.IntoMarkedPtr()
	observed, ok := a.raw.CompareExchange(currentWord, newWord, success, failure)
	if !ok {
		return Unlinked[T, N, H, R]{}, &CompareExchangeFailure[T, N, H, R]{
			Observed: UnprotectedFromMarkedPtr[T, N, H, R](observed),
			New:      new,
		}
	}
	unlinked, _ := UnlinkedFromMarkedPtr[T, N, H, R](observed)
	return unlinked, nil
}

// Take requires exclusive (pointer-level, non-concurrent) access to the
// slot — the same precondition Rust's Atomic::take expresses through
// &mut self — and converts whatever the slot currently holds into an
// Owned, leaving the slot null. It returns false if the slot was
// already null.
//
// Safety precondition: no concurrent Load/Store/Swap/CompareExchange
// may be in flight against this slot while Take runs, and any
// Unprotected previously obtained via LoadUnprotected before this call
// must not be dereferenced afterward without the caller's own
// independent liveness proof — Take does not itself invalidate earlier
// Unprotected values, it only certifies that this package no longer
// considers the slot to hold them (resolves the first open question
// carried over from the source: the caller, not this package, is
// responsible for that invariant once load_unprotected is mixed with
// exclusive access).
func (a *Atomic[T, N, H, R]) Take() (Owned[T, N, H, R], bool) {
	word := a.raw.Load(Relaxed)
	if word.IsNull() {
		return Owned[T, N, H, R]{}, false
	}
	a.raw.Store(MarkedPtr[T, N]{}, Relaxed)
	return OwnedFromMarkedPtr[T, N, H, R](word)
}
