package bigint

// divModAbs implements Knuth's Algorithm D for count(x) >= count(y) >=
// 2 magnitudes. It normalizes so the divisor's top digit occupies the
// upper half of the base range before the main loop (bounding the
// trial quotient digit's error), forms a trial digit per window from
// the top two remainder digits and the divisor's top digit, subtracts
// qd*divisor from the window, and corrects an overestimated qd by
// decrementing it and adding the divisor back until the addition
// carries out of the window's top digit. Does not consume x or y;
// returns nonnegative-magnitude quotient and remainder.
func divModAbs(x, y *BigInt) (q, r *BigInt) {
	yTop := int64(y.digits[y.count-1])
	lambda := (int64(base) + 2*yTop - 1) / (2 * yTop)

	xn := mulSmall(x.clone(), int32(lambda))
	yn := mulSmall(y.clone(), int32(lambda))
	// Normalizing can grow xn by one digit; Algorithm D also wants one
	// extra zero digit above that so index shift+count(y) is always
	// defined.
	xn = push(ensureUnique(xn), 0)

	n := yn.count
	// The pushed zero guarantees index xn.count-1 is the top valid
	// digit, so the first window's top digit (shift+n) must start at
	// xn.count-1, i.e. shift starts at xn.count-n-1, not xn.count-n.
	m := xn.count - n - 1
	divisorTop := int64(yn.digits[n-1])

	qq := alloc(m+1, false)
	qDigits := qq.digits

	for shift := m; shift >= 0; shift-- {
		remHi := int64(xn.digits[shift+n])
		remHi1 := int64(xn.digits[shift+n-1])

		var qd int64
		if remHi == divisorTop {
			qd = int64(base) - 1
		} else {
			qd = (remHi*int64(base) + remHi1) / divisorTop
		}

		// Subtract qd*yn from the window xn[shift : shift+n+1],
		// tracking a multiplicative carry through yn and a
		// subtractive borrow through xn.
		var mulCarry, borrow int64
		for i := 0; i < n; i++ {
			prod := qd*int64(yn.digits[i]) + mulCarry
			mulCarry = prod / base
			lo := prod - mulCarry*base
			d := int64(xn.digits[shift+i]) - lo - borrow
			if d < 0 {
				d += base
				borrow = 1
			} else {
				borrow = 0
			}
			xn.digits[shift+i] = int32(d)
		}
		top := int64(xn.digits[shift+n]) - mulCarry - borrow
		negative := top < 0
		if negative {
			top += base
		}
		xn.digits[shift+n] = int32(top)

		for negative {
			// Overestimated qd: add the divisor back into the window
			// and retry. The addition's carry-out of the window's
			// top digit cancels the earlier negative adjustment.
			qd--
			var addCarry int64
			for i := 0; i < n; i++ {
				s := int64(xn.digits[shift+i]) + int64(yn.digits[i]) + addCarry
				if s >= base {
					s -= base
					addCarry = 1
				} else {
					addCarry = 0
				}
				xn.digits[shift+i] = int32(s)
			}
			newTop := int64(xn.digits[shift+n]) + addCarry
			if newTop >= base {
				newTop -= base
				negative = false
			}
			xn.digits[shift+n] = int32(newTop)
		}

		qDigits[shift] = int32(qd)
	}

	trim(qq, false)

	xn = trimTo(xn, n, false)
	remUnscaled, _ := divModSmall(xn, int32(lambda))
	return qq, remUnscaled
}
