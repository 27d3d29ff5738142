package reclaim

// noneValue is the shared representation of the "no record" state for
// every ownership-typed wrapper's optional form (Owned::none(),
// Shared::none(), Unlinked::none(), Unprotected::none() in the
// original source). All four wrap the same null MarkedPtr, so one
// zero-size type backs all of them; the exported constructors below
// pin the returned interface to the one the call site needs.
type noneValue[T any, N TagBits, H any, R Reclaimer[T, N, H, R]] struct{}

func (noneValue[T, N, H, R]) IntoMarkedPtr() MarkedPtr[T, N] { return MarkedPtr[T, N]{} }
func (noneValue[T, N, H, R]) sealed()                        {}
func (noneValue[T, N, H, R]) comparable_()                   {}

// None returns the null Storable value usable wherever an Atomic
// operation's Store/Swap/CompareExchange "new" position needs to
// insert "no record" explicitly. Comparing against "no record" takes
// NoneComparable.
func None[T any, N TagBits, H any, R Reclaimer[T, N, H, R]]() Storable[T, N, H, R] {
	return noneValue[T, N, H, R]{}
}

// NoneComparable returns the null Comparable value usable as the
// "current" argument of Atomic.CompareExchange when the caller expects
// the slot to currently be empty.
func NoneComparable[T any, N TagBits, H any, R Reclaimer[T, N, H, R]]() Comparable[T, N, H, R] {
	return noneValue[T, N, H, R]{}
}
