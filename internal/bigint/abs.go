package bigint

// addAbs adds the magnitudes of x and y, requiring count(x) >= count(y).
// The result's sign is left as x's sign (callers needing a specific
// sign reset it; most callers want exactly x's sign here). Consumes x
// and y; returns a fresh, trimmed, uniquely-owned BigInt.
func addAbs(x, y *BigInt) *BigInt {
	origCount := x.count
	maxCount := origCount
	// The top digit can carry out when x's and y's top digits plus an
	// incoming carry reach base (y's digit is 0 when y is shorter).
	if x.digits[origCount-1]+y.digitAt(origCount-1) >= base-1 {
		maxCount = origCount + 1
	}
	origDigits := x.digits[:origCount:origCount]
	z := allocReuse(x, maxCount)
	if z != x {
		copy(z.digits, origDigits)
		for i := origCount; i < maxCount; i++ {
			z.digits[i] = 0
		}
	} else if maxCount > origCount {
		// Reused x's own buffer but grew into a slot x.digits held as
		// slack capacity: that slot's prior contents are stale digits
		// from whatever used this buffer before, not zero.
		z.digits[maxCount-1] = 0
	}
	z.isNeg = x.isNeg

	var carry int32
	i := 0
	for ; i < y.count; i++ {
		s := z.digits[i] + y.digitAt(i) + carry
		if s >= base {
			s -= base
			carry = 1
		} else {
			carry = 0
		}
		z.digits[i] = s
	}
	for ; carry != 0 && i < z.count; i++ {
		s := z.digits[i] + carry
		if s >= base {
			s -= base
			carry = 1
		} else {
			carry = 0
		}
		z.digits[i] = s
	}
	x.Unref()
	y.Unref()
	return trim(z, true)
}

// subAbs subtracts |y| from |x|, requiring |x| >= |y| (count(x) >=
// count(y), and if equal, the caller has already established x's
// magnitude is not smaller). Sign is left as x's sign. Consumes x and
// y; returns a fresh, trimmed, uniquely-owned BigInt.
func subAbs(x, y *BigInt) *BigInt {
	z := allocReuse(x, x.count)
	if z != x {
		copy(z.digits, x.digits[:x.count])
	}
	z.isNeg = x.isNeg

	var borrow int32
	i := 0
	for ; i < y.count; i++ {
		d := z.digits[i] - y.digitAt(i) - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		z.digits[i] = d
	}
	for ; borrow != 0 && i < z.count; i++ {
		d := z.digits[i] - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		z.digits[i] = d
	}
	x.Unref()
	y.Unref()
	return trim(z, true)
}

// cmpAbs compares |x| and |y| without consuming either, returning -1,
// 0 or 1.
func cmpAbs(x, y *BigInt) int {
	if x.count != y.count {
		if x.count < y.count {
			return -1
		}
		return 1
	}
	for i := x.count - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// mulSchoolbook multiplies the magnitudes of x and y in O(count(x) *
// count(y)) with a 64-bit accumulator. Consumes x and y; returns a
// fresh, trimmed, uniquely-owned BigInt (never reuses x or y's
// storage, since every output digit depends on more than one input
// digit).
func mulSchoolbook(x, y *BigInt) *BigInt {
	z := allocZero(x.count+y.count, x.isNeg != y.isNeg)
	for i := 0; i < x.count; i++ {
		if x.digits[i] == 0 {
			continue
		}
		var carry int64
		xi := int64(x.digits[i])
		for j := 0; j < y.count; j++ {
			prod := xi*int64(y.digits[j]) + int64(z.digits[i+j]) + carry
			carry = prod / base
			z.digits[i+j] = int32(prod - carry*base)
		}
		k := i + y.count
		for carry != 0 {
			s := int64(z.digits[k]) + carry
			carry = s / base
			z.digits[k] = int32(s - carry*base)
			k++
		}
	}
	x.Unref()
	y.Unref()
	return trim(z, true)
}

// mulSmall multiplies the magnitude of x by a single digit 0 <= k <
// base, extending count as needed. Consumes x; returns a fresh,
// trimmed, uniquely-owned BigInt with x's original sign.
func mulSmall(x *BigInt, k int32) *BigInt {
	origCount := x.count
	origDigits := x.digits[:origCount:origCount]
	z := allocReuse(x, origCount+1)
	if z != x {
		copy(z.digits, origDigits)
	}
	z.digits[origCount] = 0
	z.isNeg = x.isNeg

	var carry int64
	kk := int64(k)
	for i := 0; i < origCount; i++ {
		prod := int64(z.digits[i])*kk + carry
		carry = prod / base
		z.digits[i] = int32(prod - carry*base)
	}
	z.digits[origCount] = int32(carry)
	x.Unref()
	return trim(z, true)
}

// divModSmall divides the magnitude of x by a single digit 1 <= d <
// base using top-down long division with a 64-bit accumulator.
// Consumes x; returns a fresh quotient BigInt (x's sign) and the
// int32 remainder (always >= 0, magnitude semantics are the caller's
// job).
func divModSmall(x *BigInt, d int32) (*BigInt, int32) {
	q := allocReuse(x, x.count)
	if q != x {
		copy(q.digits, x.digits[:x.count])
	}
	q.isNeg = x.isNeg

	var rem int64
	dd := int64(d)
	for i := x.count - 1; i >= 0; i-- {
		acc := rem*base + int64(q.digits[i])
		q.digits[i] = int32(acc / dd)
		rem = acc % dd
	}
	x.Unref()
	return trim(q, true), int32(rem)
}

// shiftLeftByDigits prepends n zero base-digits to x (multiplies the
// magnitude by base^n). Consumes x; returns a fresh, uniquely-owned
// BigInt. n == 0 returns x unchanged (still consuming-and-returning,
// for call-site uniformity).
func shiftLeftByDigits(x *BigInt, n int) *BigInt {
	if n == 0 {
		return x
	}
	if x.IsZero() {
		x.Unref()
		return zero()
	}
	z := alloc(x.count+n, x.isNeg)
	for i := 0; i < n; i++ {
		z.digits[i] = 0
	}
	copy(z.digits[n:], x.digits[:x.count])
	x.Unref()
	return z
}

// slice extracts digits[lo:hi) of x as a new BigInt with x's sign. An
// empty range (lo >= hi, or lo >= x.count) yields a canonical zero.
// Does not consume x (used internally by Karatsuba to read both
// halves of one operand).
func slice(x *BigInt, lo, hi int) *BigInt {
	if hi > x.count {
		hi = x.count
	}
	if lo >= hi {
		return zero()
	}
	z := alloc(hi-lo, x.isNeg)
	copy(z.digits, x.digits[lo:hi])
	return trim(z, false)
}
