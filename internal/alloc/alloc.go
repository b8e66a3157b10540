// Package alloc specifies the host-supplied interfaces the spec treats
// as external collaborators (§6.2): an allocator that returns
// uniquely-owned regions, and a reference-count discipline exposing an
// "is unique" predicate. internal/bigint implements this discipline
// itself against the Go heap (a BigInt's own refs field), since that
// is the only collaborator every host needs by default; this package
// exists for embedders that want to swap in a different backing
// allocator (for instance, an arena that frees every digit buffer a
// request allocated in one shot) without touching the arithmetic
// layer.
package alloc

// Allocator is the host collaborator the spec's storage layer
// consumes: something that returns freshly-allocated, uniquely-owned
// digit-buffer regions, and can grow or shrink one in place.
// internal/bigint calls through this interface for every BigInt
// backing buffer it creates, defaulting to GoHeap.
type Allocator interface {
	// Alloc returns n zeroed digits, uniquely owned by the caller.
	Alloc(n int) []int32
	// Realloc grows or shrinks a previously-allocated region to n
	// digits, preserving its prefix, and returns the (possibly moved)
	// result.
	Realloc(b []int32, n int) []int32
	// Free releases a region obtained from Alloc or Realloc. Hosts
	// with a tracing GC may implement this as a no-op.
	Free(b []int32)
}

// RefCounted is the ownership discipline the spec's §3.3/§6.2 ask a
// host to expose for any heap object it hands back to the core: an
// increment, a decrement, and a predicate for "am I the only owner".
type RefCounted interface {
	IncRef()
	DecRef()
	IsUnique() bool
}

// GoHeap is the default Allocator, backed directly by the Go runtime's
// garbage-collected heap. This is what internal/bigint uses when no
// host allocator is configured; "freeing" is a no-op because the GC
// already owns the lifetime question once nothing references a slice.
type GoHeap struct{}

func (GoHeap) Alloc(n int) []int32 { return make([]int32, n) }

func (GoHeap) Realloc(b []int32, n int) []int32 {
	if n <= cap(b) {
		return b[:n]
	}
	nb := make([]int32, n)
	copy(nb, b)
	return nb
}

func (GoHeap) Free([]int32) {}
