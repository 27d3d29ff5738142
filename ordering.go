package reclaim

import "fmt"

// Ordering mirrors the memory-ordering arguments taken by the
// underlying platform atomic word. Every atomic operation in this
// package requires one explicitly and validates it, but the operations
// are carried out with sync/atomic, which is always sequentially
// consistent: the ordering actually imposed is SeqCst whatever is
// requested.
type Ordering uint8

const (
	// Relaxed imposes no ordering constraints beyond atomicity.
	Relaxed Ordering = iota
	// Acquire prevents subsequent reads from being reordered before
	// this operation. Refused by stores.
	Acquire
	// Release prevents prior writes from being reordered after this
	// operation. Refused by loads and as a compare-exchange failure
	// ordering.
	Release
	// AcqRel combines Acquire and Release semantics. Refused by loads,
	// stores and as a compare-exchange failure ordering.
	AcqRel
	// SeqCst additionally establishes a single total order over all
	// SeqCst operations. Valid everywhere.
	SeqCst
)

func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	default:
		return fmt.Sprintf("Ordering(%d)", uint8(o))
	}
}

// validateLoadOrder rejects orderings that make no sense for a load:
// a load cannot Release anything, so Release and AcqRel are refused.
func validateLoadOrder(order Ordering) {
	switch order {
	case Release, AcqRel:
		panic("reclaim: load does not accept Release or AcqRel ordering")
	}
}

// validateStoreOrder rejects orderings that make no sense for a store:
// a store cannot Acquire anything, so Acquire and AcqRel are refused.
func validateStoreOrder(order Ordering) {
	switch order {
	case Acquire, AcqRel:
		panic("reclaim: store does not accept Acquire or AcqRel ordering")
	}
}

// validateCASOrders rejects failure orderings that cannot be satisfied:
// the failure branch never writes, so Release/AcqRel make no sense
// there, and a failure ordering stronger than the success ordering
// would promise more than a failed operation can deliver.
func validateCASOrders(success, failure Ordering) {
	switch failure {
	case Release, AcqRel:
		panic("reclaim: compare-exchange failure ordering must not be Release or AcqRel")
	}
	if orderingStrength(failure) > orderingStrength(success) {
		panic("reclaim: compare-exchange failure ordering must not be stronger than success ordering")
	}
}

func orderingStrength(o Ordering) int {
	switch o {
	case Relaxed:
		return 0
	case Acquire, Release:
		return 1
	case AcqRel:
		return 2
	case SeqCst:
		return 3
	default:
		return 0
	}
}
