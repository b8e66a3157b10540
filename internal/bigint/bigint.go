// Package bigint implements the arbitrary-precision magnitude-and-sign
// integer used as the "Big" variant of the core's tagged integer value.
// It owns the digit buffer, the canonical-form invariants, the
// single-threaded ownership/reuse discipline, and every arithmetic
// primitive operating on base-10^9 digits.
//
// Every exported function follows the "operations consume their
// inputs" calling convention from the spec this package implements:
// a *BigInt passed into a function should not be read again by the
// caller unless the caller first calls Ref on it. Functions always
// return a fresh, canonical, uniquely-owned *BigInt.
package bigint

import "github.com/sentra-lang/bignum/internal/digit"

const (
	base      = digit.Base
	log10Base = digit.Log10Base
	maxExtra  = digit.MaxExtra
)

// BigInt is the heap-allocated magnitude-and-sign buffer. Digits are
// little-endian base-`base` limbs: value = (-1)^isNeg * sum(digits[i] * base^i).
type BigInt struct {
	isNeg  bool
	count  int
	digits []int32 // len(digits) == capacity; digits[:count] are live
	refs   int32
}

// Sign reports -1, 0 or 1 the way Signum does, without consuming x.
func (x *BigInt) Sign() int {
	if x.count == 1 && x.digits[0] == 0 {
		return 0
	}
	if x.isNeg {
		return -1
	}
	return 1
}

// IsZero reports whether x is the canonical zero, without consuming x.
func (x *BigInt) IsZero() bool {
	return x.count == 1 && x.digits[0] == 0
}

// IsNeg reports the sign bit directly (false for zero, by invariant).
func (x *BigInt) IsNeg() bool {
	return x.isNeg
}

// Count returns the live digit count, without consuming x.
func (x *BigInt) Count() int {
	return x.count
}

// IsEven reports whether x is divisible by two, without consuming x.
// Evenness never depends on sign, so this only ever looks at the
// lowest-order digit.
func (x *BigInt) IsEven() bool {
	return x.digits[0]%2 == 0
}

// Ref bumps x's reference count and returns x, for callers that need
// to pass the same BigInt into two consuming calls (e.g. sqr).
func (x *BigInt) Ref() *BigInt {
	x.refs++
	return x
}

// Unref drops a reference. The Go garbage collector reclaims the
// backing array once nothing reaches it; Unref exists purely to keep
// the refs bookkeeping that IsUnique relies on accurate.
func (x *BigInt) Unref() {
	x.refs--
}

// IsUnique reports whether the caller holds the only live reference,
// the gate every in-place mutation in this package must pass first.
func (x *BigInt) IsUnique() bool {
	return x.refs <= 1
}

// digitAt returns digit i of x, or 0 past the end — convenient for
// walking two operands of different lengths in lockstep.
func (x *BigInt) digitAt(i int) int32 {
	if i < x.count {
		return x.digits[i]
	}
	return 0
}

// clone returns a fresh, unique, deep copy of x (digits and sign),
// with a fresh refs count of 1. Does not consume x.
func (x *BigInt) clone() *BigInt {
	z := alloc(x.count, x.isNeg)
	copy(z.digits, x.digits[:x.count])
	return z
}
