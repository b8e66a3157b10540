// Package bignum implements the arbitrary-precision signed integer
// core used as the numeric backbone of a language runtime: a tagged
// Integer value that stays a plain machine int64 ("Small") while its
// value lies within [SmallMin, SmallMax], promotes itself to a
// heap-allocated base-10^9 magnitude ("Big") when a result falls
// outside that range, and comes back down again whenever a later
// result fits.
//
// Every public operation follows a consume-and-return convention: an
// Integer passed into Add, Mul, DivMod and friends should not be read
// again by the caller unless the caller calls Ref on it first. This
// mirrors the single-owner discipline internal/bigint enforces on its
// own heap buffers, extended uniformly to the façade so a caller never
// has to reason about which representation a given Integer happens to
// be in.
package bignum

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sentra-lang/bignum/internal/bigint"
	coreerrors "github.com/sentra-lang/bignum/internal/errors"
)

func divisionByZero() error {
	return errors.WithStack(coreerrors.NewDivisionByZero())
}

// SmallMin and SmallMax bound the range an Integer will represent as a
// machine int64 rather than promoting to Big. The spec recommends a
// conservative floor below the full int64 range so that every plausible
// host tagging scheme (NaN-boxing, pointer tagging, a 31-bit fixnum)
// has headroom to store a Small value in its native tagged word; ±2^30
// is that floor.
const (
	SmallMax int64 = 1 << 30
	SmallMin int64 = -(1 << 30)
)

// Integer is the tagged value: Small holds the value and Big is nil
// when the value fits the Small range, otherwise Big holds the
// magnitude and Small is ignored.
type Integer struct {
	small int64
	big   *bigint.BigInt
}

// FromInt64 wraps a machine integer as an Integer, promoting to Big
// only if v falls outside [SmallMin, SmallMax].
func FromInt64(v int64) Integer {
	if v >= SmallMin && v <= SmallMax {
		return Integer{small: v}
	}
	return Integer{big: bigint.FromInt64(v)}
}

// Zero is the canonical zero value; the Integer zero value already
// satisfies this (small == 0, big == nil), but Zero documents intent
// at call sites.
var Zero = Integer{}

func (x Integer) isSmall() bool { return x.big == nil }

// Ref bumps the reference count of x's Big backing store, if any, and
// returns x unchanged. Callers that need to pass the same Integer into
// two consuming operations — most commonly Sqr, or replaying one
// operand across a loop — must call Ref before the second use.
func (x Integer) Ref() Integer {
	if x.big != nil {
		x.big.Ref()
	}
	return x
}

// toBig forces x into its Big representation, consuming x.
func (x Integer) toBig() *bigint.BigInt {
	if x.big != nil {
		return x.big
	}
	return bigint.FromInt64(x.small)
}

// peekBig is toBig's non-consuming counterpart, for queries (ToString,
// CountDigits, Ctz) that read a Big's digits without taking ownership.
// Safe because it never bumps or drops x's reference count.
func (x Integer) peekBig() *bigint.BigInt {
	if x.big != nil {
		return x.big
	}
	return bigint.FromInt64(x.small)
}

// fromBig normalizes z back down to Small if it fits, consuming z.
func fromBig(z *bigint.BigInt) Integer {
	if v, ok := bigint.ToInt64(z); ok && v >= SmallMin && v <= SmallMax {
		return Integer{small: v}
	}
	return Integer{big: z}
}

// Neg returns -x. Consumes x.
func Neg(x Integer) Integer {
	if x.isSmall() {
		// SmallMin/SmallMax are symmetric around zero, so negating a
		// Small value always yields another representable Small value.
		return Integer{small: -x.small}
	}
	return fromBig(bigint.Neg(x.big))
}

// Signum returns -1, 0 or 1. Does not consume x.
func Signum(x Integer) int {
	if x.isSmall() {
		switch {
		case x.small < 0:
			return -1
		case x.small > 0:
			return 1
		default:
			return 0
		}
	}
	return bigint.Signum(x.big)
}

// IsEven reports whether x is divisible by two. Does not consume x.
func IsEven(x Integer) bool {
	if x.isSmall() {
		return x.small%2 == 0
	}
	return x.big.IsEven()
}

// Cmp compares x and y, returning -1, 0 or 1. Consumes x and y, per the
// core's convention that every public operation — including pure
// queries — consumes its arguments uniformly.
func Cmp(x, y Integer) int {
	if x.isSmall() && y.isSmall() {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		default:
			return 0
		}
	}
	return bigint.Cmp(x.toBig(), y.toBig())
}

// Add returns x + y. Consumes x and y.
func Add(x, y Integer) Integer {
	if x.isSmall() && y.isSmall() {
		sum := x.small + y.small
		if !addOverflows(x.small, y.small, sum) {
			return FromInt64(sum)
		}
	}
	xb, yb := x.toBig(), y.toBig()
	return fromBig(bigint.Add(xb, yb, yb.IsNeg()))
}

// Sub returns x - y. Consumes x and y.
func Sub(x, y Integer) Integer {
	if x.isSmall() && y.isSmall() {
		diff := x.small - y.small
		if !subOverflows(x.small, y.small, diff) {
			return FromInt64(diff)
		}
	}
	xb, yb := x.toBig(), y.toBig()
	return fromBig(bigint.Sub(xb, yb, yb.IsNeg()))
}

// Mul returns x * y. Consumes x and y.
func Mul(x, y Integer) Integer {
	if x.isSmall() && y.isSmall() {
		if p, ok := mulInt64(x.small, y.small); ok {
			return FromInt64(p)
		}
	}
	return fromBig(bigint.Mul(x.toBig(), y.toBig()))
}

// Sqr returns x * x. Consumes x.
func Sqr(x Integer) Integer {
	return Mul(x, x.Ref())
}

// DivMod returns (x / y, x mod y): quotient truncated toward zero,
// remainder taking the sign of the dividend. Consumes x and y. Panics
// with a *github.com/sentra-lang/bignum/internal/errors.CoreError of
// kind DivisionByZero if y is zero — callers that want an error return
// instead of a panic should check Signum(y) == 0 before calling.
func DivMod(x, y Integer) (Integer, Integer) {
	if Signum(y) == 0 {
		panic(divisionByZero())
	}
	if x.isSmall() && y.isSmall() {
		// y == math.MinInt64 never arises: Small values are bounded by
		// SmallMin/SmallMax, far inside int64 range, so the quotient and
		// remainder below can never overflow.
		q, r := x.small/y.small, x.small%y.small
		return FromInt64(q), FromInt64(r)
	}
	q, r := bigint.DivMod(x.toBig(), y.toBig())
	return fromBig(q), fromBig(r)
}

// Div returns x / y, truncated toward zero. Consumes x and y. Panics
// on a zero divisor exactly as DivMod does.
func Div(x, y Integer) Integer {
	q, _ := DivMod(x, y)
	return q
}

// Mod returns x mod y, taking the sign of the dividend. Consumes x and
// y. Panics on a zero divisor exactly as DivMod does.
func Mod(x, y Integer) Integer {
	_, r := DivMod(x, y)
	return r
}

// Pow raises x to a nonnegative exponent p by squaring. Consumes x.
// Negative p is a caller precondition violation, not a typed core
// error, since Pow's definition only ever covers p >= 0.
func Pow(x Integer, p int64) Integer {
	if p < 0 {
		panic("bignum: Pow exponent must be non-negative")
	}
	if x.isSmall() {
		if v, ok := smallPow(x.small, p); ok {
			return FromInt64(v)
		}
	}
	return fromBig(bigint.Pow(x.toBig(), p))
}

func addOverflows(a, b, sum int64) bool {
	return ((a ^ sum) & (b ^ sum)) < 0
}

func subOverflows(a, b, diff int64) bool {
	return ((a ^ b) & (a ^ diff)) < 0
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	if p == math.MinInt64 && (a == -1 || b == -1) {
		return 0, false
	}
	return p, true
}

// smallPow attempts x^p within int64, bailing out (ok == false) the
// moment an intermediate multiply would overflow, so the caller falls
// back to the Big path instead of wrapping silently.
func smallPow(x, p int64) (int64, bool) {
	result := int64(1)
	base := x
	for p > 0 {
		if p&1 == 1 {
			v, ok := mulInt64(result, base)
			if !ok {
				return 0, false
			}
			result = v
			p--
			continue
		}
		p >>= 1
		if p > 0 {
			v, ok := mulInt64(base, base)
			if !ok {
				return 0, false
			}
			base = v
		}
	}
	return result, true
}
