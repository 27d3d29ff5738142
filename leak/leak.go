// Package leak provides Reclaimer, a no-op memory reclamation scheme
// that never frees a retired record. It exists mainly as a reference
// implementation of the Reclaimer contract and for tests that want
// deterministic, allocation-free retirement behavior.
package leak

import (
	"errors"
	"unsafe"

	"go.uber.org/zap"

	"github.com/oliver-giersch/reclaim-sub000"
)

// ErrNilLogger is returned by WithLogger when passed a nil logger.
var ErrNilLogger = errors.New("leak: logger must not be nil")

// Convenience aliases that hide the Header/Reclaimer parameters for the
// common case of using the leaking scheme directly, the same way the
// original crate exposes leak::{Atomic, Owned, Shared, Unlinked,
// Unprotected} as pre-bound type aliases over its generic counterparts.
type (
	Atomic[T any, N reclaim.TagBits]      = reclaim.Atomic[T, N, Header, Reclaimer[T, N]]
	Owned[T any, N reclaim.TagBits]       = reclaim.Owned[T, N, Header, Reclaimer[T, N]]
	Shared[T any, N reclaim.TagBits]      = reclaim.Shared[T, N, Header, Reclaimer[T, N]]
	Unlinked[T any, N reclaim.TagBits]    = reclaim.Unlinked[T, N, Header, Reclaimer[T, N]]
	Unprotected[T any, N reclaim.TagBits] = reclaim.Unprotected[T, N, Header, Reclaimer[T, N]]
)

// Header is the per-record metadata the leaking scheme attaches to
// every record. Checksum carries no meaning to Reclaimer itself; it
// exists so record.go's offset-based HeaderOf/RecordOf recovery has
// something non-trivial to verify against in tests.
type Header struct {
	Checksum uint64
}

// DefaultChecksum is the sentinel value NewHeader puts in a Header,
// mirroring the original source's 0xDEAD_BEEF test fixture. Records
// allocated through NewOwned or NewAtomic get the zero Header instead;
// NewOwnedWithHeader(v, NewHeader()) gives a record this checksum.
const DefaultChecksum uint64 = 0xDEADBEEF

// NewHeader returns a Header carrying DefaultChecksum.
func NewHeader() Header {
	return Header{Checksum: DefaultChecksum}
}

// Options configures a Reclaimer.
type Options struct {
	Logger       *zap.Logger
	WarnOnRetire bool
}

// Option configures a Reclaimer via New.
type Option func(*Options) error

// WithLogger sets the structured logger a Reclaimer uses to report
// leaked retirements. A nil Reclaimer (the zero value) uses
// zap.NewNop() and never logs.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return ErrNilLogger
		}
		o.Logger = logger
		return nil
	}
}

// WithLeakWarnings enables or disables a warn-level log line on every
// Retire/RetireUnchecked call. Off by default, since leaking on every
// retirement is this scheme's entire purpose, not a fault condition.
func WithLeakWarnings(enabled bool) Option {
	return func(o *Options) error {
		o.WarnOnRetire = enabled
		return nil
	}
}

// Reclaimer is the no-op memory "reclamation" scheme: it deliberately
// leaks every record it retires. T is the protected element type and N
// the tag width this instantiation is bound to, matching the
// F-bounded Reclaimer[T,N,Header,Self] constraint from the root
// package (Self is Reclaimer[T,N] itself).
type Reclaimer[T any, N reclaim.TagBits] struct {
	logger *zap.Logger
	warn   bool
}

// New constructs a Reclaimer. The zero value is also directly usable
// (it logs nothing and warns nothing); New exists for callers that
// want a configured logger.
func New[T any, N reclaim.TagBits](opts ...Option) (Reclaimer[T, N], error) {
	cfg := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Reclaimer[T, N]{}, err
		}
	}
	return Reclaimer[T, N]{logger: cfg.Logger, warn: cfg.WarnOnRetire}, nil
}

func (r Reclaimer[T, N]) activeLogger() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

// Retire leaks unlinked: it does nothing beyond optionally logging.
func (r Reclaimer[T, N]) Retire(unlinked reclaim.Unlinked[T, N, Header, Reclaimer[T, N]]) {
	r.retire(unlinked)
}

// RetireUnchecked is identical to Retire for this scheme: leaking
// never dereferences the retired record, so there is nothing the
// "unchecked" relaxation could make unsafe.
func (r Reclaimer[T, N]) RetireUnchecked(unlinked reclaim.Unlinked[T, N, Header, Reclaimer[T, N]]) {
	r.retire(unlinked)
}

func (r Reclaimer[T, N]) retire(unlinked reclaim.Unlinked[T, N, Header, Reclaimer[T, N]]) {
	if !r.warn {
		return
	}
	r.activeLogger().Warn("leak: record intentionally not reclaimed",
		zap.Uintptr("addr", uintptr(unsafe.Pointer(unlinked.Deref()))),
		zap.Uint("tag", unlinked.Tag()),
	)
}

// Guard is the point guard for the leaking scheme. Since leaking
// reclamation never actually protects anything from concurrent
// reclamation (there is none), Guard is just a thin wrapper around the
// last tagged pointer it loaded, exactly as the original source's
// LeakingGuard is documented to be.
type Guard[T any, N reclaim.TagBits] struct {
	ptr reclaim.MarkedPtr[T, N]
}

// NewGuard returns a Guard protecting nothing (a null pointer).
func NewGuard[T any, N reclaim.TagBits]() *Guard[T, N] {
	return &Guard[T, N]{}
}

// Marked returns the three-state view of whatever this guard currently
// holds, without touching any atomic slot.
func (g *Guard[T, N]) Marked() reclaim.Marked[reclaim.Shared[T, N, Header, Reclaimer[T, N]]] {
	return reclaim.SharedFromMarkedPtr[T, N, Header, Reclaimer[T, N]](g.ptr)
}

// Acquire loads atomic's current raw word, unconditionally records it
// as this guard's protected value, and returns its three-state view.
func (g *Guard[T, N]) Acquire(atomic *reclaim.Atomic[T, N, Header, Reclaimer[T, N]], order reclaim.Ordering) reclaim.Marked[reclaim.Shared[T, N, Header, Reclaimer[T, N]]] {
	g.ptr = atomic.LoadRaw(order)
	return reclaim.SharedFromMarkedPtr[T, N, Header, Reclaimer[T, N]](g.ptr)
}

// AcquireIfEqual loads atomic's current raw word and commits it to
// this guard only if it equals expected; otherwise it returns
// reclaim.ErrNotEqual and leaves the guard's prior value untouched.
func (g *Guard[T, N]) AcquireIfEqual(
	atomic *reclaim.Atomic[T, N, Header, Reclaimer[T, N]],
	expected reclaim.MarkedPtr[T, N],
	order reclaim.Ordering,
) (reclaim.Marked[reclaim.Shared[T, N, Header, Reclaimer[T, N]]], error) {
	word := atomic.LoadRaw(order)
	if !word.Equal(expected) {
		return reclaim.Marked[reclaim.Shared[T, N, Header, Reclaimer[T, N]]]{}, reclaim.ErrNotEqual
	}
	g.ptr = word
	return reclaim.SharedFromMarkedPtr[T, N, Header, Reclaimer[T, N]](word), nil
}

// Release discards this guard's currently held value, replacing it
// with null.
func (g *Guard[T, N]) Release() {
	g.ptr = reclaim.NullPtr[T, N]()
}

var (
	_ reclaim.Reclaimer[int, reclaim.Bits0, Header, Reclaimer[int, reclaim.Bits0]] = Reclaimer[int, reclaim.Bits0]{}
	_ reclaim.Protect[int, reclaim.Bits0, Header, Reclaimer[int, reclaim.Bits0]]   = (*Guard[int, reclaim.Bits0])(nil)
)
