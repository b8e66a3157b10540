package bigint

import (
	"strings"

	"github.com/sentra-lang/bignum/internal/digit"
)

// FromDigits builds a BigInt from a pure decimal digit string (no
// sign, no separators, no fraction point — the public parser is
// responsible for reducing the literal's significant digits, its
// fractional digits and its exponent's implicit trailing zeros down
// to this single concatenated digit string before calling here). An
// empty string is treated as zero. Digits are consumed most
// significant first, filled from the top digit down in chunks of
// Log10Base, with the top chunk sized to the remainder, exactly as
// the spec's decimal-I/O section describes.
func FromDigits(neg bool, digits string) *BigInt {
	dec := len(digits)
	if dec == 0 {
		return zero()
	}
	count := (dec + digit.Log10Base - 1) / digit.Log10Base
	z := alloc(count, neg)

	firstLen := dec % digit.Log10Base
	if firstLen == 0 {
		firstLen = digit.Log10Base
	}
	pos := 0
	z.digits[count-1] = parseChunk(digits[pos : pos+firstLen])
	pos += firstLen
	for i := count - 2; i >= 0; i-- {
		z.digits[i] = parseChunk(digits[pos : pos+digit.Log10Base])
		pos += digit.Log10Base
	}
	return trim(z, false)
}

func parseChunk(s string) int32 {
	var v int32
	for i := 0; i < len(s); i++ {
		v = v*10 + int32(s[i]-'0')
	}
	return v
}

// ToString renders x in base 10: an optional leading '-', the partial
// (no-leading-zeros) rendering of the top digit, then full
// nine-character renderings of the remaining digits from high to low.
// Does not consume x.
func ToString(x *BigInt) string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if x.isNeg {
		sb.WriteByte('-')
	}
	var buf [digit.Log10Base]byte
	top := x.digits[x.count-1]
	n := digit.ToStringPartial(top, buf[:])
	sb.Write(buf[:n])
	for i := x.count - 2; i >= 0; i-- {
		digit.ToStringFull(x.digits[i], buf[:])
		sb.Write(buf[:])
	}
	return sb.String()
}

// CountDigits returns the number of decimal digits of |x| (1 for
// zero). Does not consume x.
func CountDigits(x *BigInt) int {
	n := digit.CountDigits10(x.digits[x.count-1])
	if n == 0 {
		n = 1 // only possible when x.count == 1 and the value is zero
	}
	return n + (x.count-1)*digit.Log10Base
}

// Ctz returns the number of trailing decimal zeros of |x| (0 for
// zero, by the spec's stated convention). Does not consume x.
func Ctz(x *BigInt) int {
	if x.IsZero() {
		return 0
	}
	n := 0
	for i := 0; i < x.count; i++ {
		if x.digits[i] != 0 {
			n += digit.TrailingZeros10(x.digits[i])
			break
		}
		n += digit.Log10Base
	}
	return n
}

// MulPow10 multiplies x by 10^p for p >= 0, splitting p into a
// digit-shift part and a single-digit multiply part. Consumes x.
func MulPow10(x *BigInt, p int) *BigInt {
	if p < 0 {
		return DivPow10(x, -p)
	}
	if p == 0 || x.IsZero() {
		if p == 0 {
			return x
		}
		x.Unref()
		return zero()
	}
	large := p / digit.Log10Base
	small := p % digit.Log10Base
	z := x
	if small > 0 {
		z = mulSmall(z, int32(digit.Pow10(small)))
	}
	if large > 0 {
		u := ensureUnique(z)
		if u != z {
			z.Unref()
		}
		z = shiftLeftByDigits(u, large)
	}
	return z
}

// DivPow10 divides x by 10^p for p >= 0 (truncating toward zero),
// the exact inverse of MulPow10: shift right by whole digits, then
// divide the remaining single digit's worth. Consumes x.
func DivPow10(x *BigInt, p int) *BigInt {
	if p < 0 {
		return MulPow10(x, -p)
	}
	if p == 0 || x.IsZero() {
		if p == 0 {
			return x
		}
		x.Unref()
		return zero()
	}
	large := p / digit.Log10Base
	small := p % digit.Log10Base

	z := x
	if large > 0 {
		if large >= z.count {
			z.Unref()
			return zero()
		}
		shifted := alloc(z.count-large, z.isNeg)
		copy(shifted.digits, z.digits[large:z.count])
		z.Unref()
		z = trim(shifted, true)
	}
	if small > 0 {
		q, _ := divModSmall(z, int32(digit.Pow10(small)))
		z = q
	}
	return z
}
