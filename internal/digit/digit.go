// Package digit holds the base-B decimal digit primitives the rest of
// the bignum core is built on: the radix itself, and the two
// digit-to-characters renderings the decimal codec needs.
package digit

// Base is the per-digit radix. Each BigInt digit holds a value in
// [0, Base). Base = 10^9 keeps a digit inside a signed 32-bit slot
// (2*Base+1 still fits) while letting nine decimal characters map onto
// exactly one digit, which is what makes linear-time decimal
// conversion possible.
const Base = 1_000_000_000

// Log10Base is the number of decimal digits one Base digit renders to.
const Log10Base = 9

// MaxExtra bounds the slack a BigInt's capacity is allowed to carry
// past its live digit count before bigint's trim (storage.go) reclaims it.
const MaxExtra = 32 * 1024

// pow10 is a lookup table for 10^0 .. 10^9, used by the decimal
// scaling operations (mul/div by a power of ten).
var pow10 = [Log10Base + 1]int64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Pow10 returns 10^n for 0 <= n <= Log10Base.
func Pow10(n int) int64 {
	return pow10[n]
}

// ToStringFull writes exactly Log10Base zero-padded decimal digits of
// d (0 <= d < Base) into buf, which must have length >= Log10Base, and
// returns the number of bytes written. Used for every digit except the
// most significant one, whose leading zeros must not appear.
func ToStringFull(d int32, buf []byte) int {
	for i := Log10Base - 1; i >= 0; i-- {
		buf[i] = byte('0' + d%10)
		d /= 10
	}
	return Log10Base
}

// ToStringPartial writes the decimal digits of d (0 <= d < Base)
// without leading zeros into buf, which must be large enough
// (Log10Base bytes is always sufficient), and returns the number of
// bytes written. d == 0 writes nothing: callers render the standalone
// zero value specially.
func ToStringPartial(d int32, buf []byte) int {
	if d == 0 {
		return 0
	}
	var tmp [Log10Base]byte
	n := 0
	for d > 0 {
		tmp[n] = byte('0' + d%10)
		d /= 10
		n++
	}
	for i := 0; i < n; i++ {
		buf[i] = tmp[n-1-i]
	}
	return n
}

// CountDigits10 returns the number of decimal digits of d, 1 <= d,
// matching the "partial" rendering's length. d must be > 0; the
// all-zero digit is handled by callers (a zero top digit never occurs
// in canonical form, and a zero low digit always counts Log10Base).
func CountDigits10(d int32) int {
	n := 0
	for d > 0 {
		n++
		d /= 10
	}
	return n
}

// TrailingZeros10 returns the number of trailing decimal zeros of d.
// d == 0 returns Log10Base: callers treat a fully-zero digit as
// contributing a whole digit's worth of trailing zeros and keep
// scanning into the next one.
func TrailingZeros10(d int32) int {
	if d == 0 {
		return Log10Base
	}
	n := 0
	for d%10 == 0 {
		d /= 10
		n++
	}
	return n
}

// SmallDecimalDigits returns the number of decimal digits of |v|
// (1 for zero), for machine-sized integers that never reach a BigInt.
func SmallDecimalDigits(v int64) int {
	if v < 0 {
		v = -v
	}
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}
