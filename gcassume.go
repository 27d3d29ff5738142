package reclaim

// This package packs tag bits into the low bits of otherwise-valid
// heap pointers and relies on Go's garbage collector treating the
// result as a correct interior pointer into the same allocation (see
// AtomicMarkedPtr's doc comment in atomicmarkedptr.go). That
// assumption holds for every Go runtime released to date, all of which
// use a non-moving collector for the heap. Importing
// assume-no-moving-gc for its side effect turns a silent future
// violation of that assumption into a failure at program start-up
// instead.
import _ "go4.org/unsafe/assume-no-moving-gc"
