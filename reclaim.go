package reclaim

import "errors"

// ErrNotEqual is returned by LoadIfEqual/AcquireIfEqual when the
// observed word did not match the caller's expectation. It carries no
// data beyond its identity: the guard's previously protected value, if
// any, is left unchanged.
var ErrNotEqual = errors.New("reclaim: observed word did not match expected value")

// Reclaimer is implemented by a concrete memory reclamation scheme
// (epoch-based, hazard pointers, quiescent-state, or the leak package's
// reference "leaking" scheme) for one specific protected element type
// T, tag width N, and per-record header type H.
//
// Self must be the implementing type itself — the constraint is
// self-referential (F-bounded) so that Retire/RetireUnchecked can
// accept Unlinked values produced for this exact scheme. Go forbids
// type parameters on methods, which rules out a direct port of Rust's
// `fn retire<T: 'static, N: Unsigned>(...)`; binding T, N and H onto
// the Reclaimer type itself, once per protected type, is the
// workaround. H plays the role of Rust's `Reclaim::RecordHeader`
// associated type, which Go has no way to express directly.
//
// There is deliberately no separate thread-local "Local" state type
// here (see Rust's split Local/Reclaim traits): Go has no associated
// types, so a scheme that needs goroutine-local bookkeeping holds it
// as ordinary fields on its own concrete type instead of through a
// second trait.
type Reclaimer[T any, N TagBits, H any, Self Reclaimer[T, N, H, Self]] interface {
	// Retire consumes an unlinked pointer and caches it at least
	// until it is safe to reclaim, i.e. once no live guard can still
	// observe it. The caller must guarantee unlinked genuinely came
	// from a successful swap/compare-exchange that removed it from
	// every data structure it was reachable through; retiring the
	// same physical record twice is a contract violation.
	Retire(unlinked Unlinked[T, N, H, Self])

	// RetireUnchecked is identical to Retire except the caller
	// additionally promises that T's finalization (if this scheme
	// performs any) does not dereference any reference that might
	// have been invalidated by the time reclamation actually runs —
	// the reclaimer makes no promise about exactly when that is.
	RetireUnchecked(unlinked Unlinked[T, N, H, Self])
}
