package bigint

import hostalloc "github.com/sentra-lang/bignum/internal/alloc"

// digitAlloc is the host collaborator every digit buffer in this
// package is drawn from (spec §6.2). It defaults to the Go heap;
// SetAllocator lets an embedding host swap in its own hostalloc.Allocator
// (for instance hostalloc.Arena) so every BigInt's backing buffer comes
// from one place it controls.
var digitAlloc hostalloc.Allocator = hostalloc.GoHeap{}

// SetAllocator replaces the allocator every subsequently-created digit
// buffer is drawn from. Not safe to call concurrently with allocation,
// matching this package's single-threaded-per-value discipline.
func SetAllocator(a hostalloc.Allocator) {
	digitAlloc = a
}

// capacityFor rounds a requested digit count up to at least 4 and to
// an even number, matching the spec's capacity policy.
func capacityFor(count int) int {
	if count < 4 {
		count = 4
	}
	if count%2 != 0 {
		count++
	}
	return count
}

// alloc returns a fresh BigInt (digits past the live count are
// whatever digitAlloc hands back, zeroed for GoHeap) with count live
// digits and capacity >= 4, even. The returned value is unique
// (refs == 1) and writable.
func alloc(count int, isNeg bool) *BigInt {
	if count < 1 {
		count = 1
	}
	return &BigInt{
		isNeg:  isNeg,
		count:  count,
		digits: digitAlloc.Alloc(capacityFor(count)),
		refs:   1,
	}
}

// allocZero is alloc with every digit, live or slack, zeroed. Several
// callers (mulSchoolbook's destination in particular) rely on a
// zero-filled buffer to make their carry chain well-defined.
func allocZero(count int, isNeg bool) *BigInt {
	return alloc(count, isNeg) // digitAlloc.Alloc already zero-fills
}

// zero returns a canonical zero BigInt.
func zero() *BigInt {
	return alloc(1, false)
}

// trim scans from the top of x, dropping leading zero digits until
// the top live digit is nonzero or count reaches 1. If the resulting
// slack (capacity - count) exceeds maxExtra and allowRealloc is true,
// the buffer is reallocated down to size; otherwise the waste is
// simply left in place. x must be unique. Returns x.
func trim(x *BigInt, allowRealloc bool) *BigInt {
	for x.count > 1 && x.digits[x.count-1] == 0 {
		x.count--
	}
	if x.count == 1 && x.digits[0] == 0 {
		x.isNeg = false
	}
	if allowRealloc && len(x.digits)-x.count > maxExtra {
		// A genuine fresh Alloc, not Realloc: reslicing down would keep
		// the oversized backing array reachable (Go slices don't release
		// spare capacity), which is exactly the waste this branch exists
		// to reclaim.
		old := x.digits
		x.digits = digitAlloc.Alloc(capacityFor(x.count))
		copy(x.digits, old[:x.count])
		digitAlloc.Free(old)
	}
	return x
}

// trimTo shrinks x to exactly count live digits. The caller asserts
// no nonzero digit above count is being dropped (used after an
// operation has computed an exact result length, e.g. denormalizing a
// division remainder). x must be unique. Returns x.
func trimTo(x *BigInt, count int, allowRealloc bool) *BigInt {
	if count < 1 {
		count = 1
	}
	x.count = count
	return trim(x, allowRealloc)
}

// ensureUnique returns x unchanged if it is uniquely owned, or a
// fresh deep copy (with its own refs == 1) otherwise. Does not alter
// x's own refcount either way: the caller still owns whichever
// reference it passed in.
func ensureUnique(x *BigInt) *BigInt {
	if x.IsUnique() {
		return x
	}
	return x.clone()
}

// allocReuse is the copy-on-write gate: if x is unique and
// requiredCount fits x's capacity within maxExtra slack, x itself is
// returned (count adjusted, sign left to the caller to set); otherwise
// a fresh BigInt(requiredCount, sign(x)) is allocated. This is the
// only place that decides whether an operation mutates in place or
// allocates, so every arithmetic routine funnels its destination
// buffer through here.
func allocReuse(x *BigInt, requiredCount int) *BigInt {
	if x.IsUnique() && requiredCount <= len(x.digits) && requiredCount+maxExtra >= len(x.digits) {
		x.count = requiredCount
		return x
	}
	return alloc(requiredCount, x.isNeg)
}

// push appends a digit to x, growing the backing array if needed.
// The caller must have already ensured x is unique (or be willing to
// accept silently extending a value someone else can see, which is a
// caller bug, not something push defends against).
func push(x *BigInt, d int32) *BigInt {
	if x.count == len(x.digits) {
		x.digits = digitAlloc.Realloc(x.digits, capacityFor(x.count+1))
	}
	x.digits[x.count] = d
	x.count++
	return x
}
