package alloc

import (
	"unsafe"

	"modernc.org/memory"
)

// Arena is an Allocator backed by modernc.org/memory's manually-managed
// allocator, for hosts that want every digit buffer allocated during a
// request or a compilation unit to live in one arena and be released
// in a single Close call, instead of depending on the Go garbage
// collector to notice a BigInt's buffer is unreachable. This is the
// direct analogue of the spec's "allocator that returns
// uniquely-owned regions" host collaborator (§1, §6.2).
//
// modernc.org/memory deals in bytes; Arena is the one place that
// reinterprets its byte regions as []int32 digit buffers, since
// memory.Allocator has no notion of a digit.
type Arena struct {
	a *memory.Allocator
}

// NewArena constructs an empty arena.
func NewArena() *Arena {
	return &Arena{a: &memory.Allocator{}}
}

const digitSize = int(unsafe.Sizeof(int32(0)))

func bytesToDigits(b []byte, n int) []int32 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&b[0])), n)
}

func digitsToBytes(d []int32) []byte {
	if len(d) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&d[0])), len(d)*digitSize)
}

// Alloc returns n uniquely-owned, zeroed digits from the arena.
func (r *Arena) Alloc(n int) []int32 {
	b, err := r.a.Calloc(n * digitSize)
	if err != nil {
		panic(err)
	}
	return bytesToDigits(b, n)
}

// Realloc grows or shrinks a region previously obtained from Alloc,
// preserving its prefix.
func (r *Arena) Realloc(d []int32, n int) []int32 {
	nb, err := r.a.Realloc(digitsToBytes(d), n*digitSize)
	if err != nil {
		panic(err)
	}
	return bytesToDigits(nb, n)
}

// Free returns a single region to the arena for reuse.
func (r *Arena) Free(d []int32) {
	b := digitsToBytes(d)
	if len(b) == 0 {
		return
	}
	if err := r.a.Free(b); err != nil {
		panic(err)
	}
}

// Close releases every region the arena ever handed out at once. Call
// it when a request, compilation, or REPL evaluation that allocated
// many short-lived integers is finished.
func (r *Arena) Close() error {
	return r.a.UnsafeFree()
}
