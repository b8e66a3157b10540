package bigint

// FromInt64 builds a BigInt representing v. Used by the façade layer
// when a machine integer has been promoted out of its Small range
// (spec §4.5: "promote Small operands to Big, invoke the Big
// operation").
func FromInt64(v int64) *BigInt {
	neg := v < 0
	var uv uint64
	if neg {
		// Avoids overflow negating math.MinInt64.
		uv = uint64(-(v + 1)) + 1
	} else {
		uv = uint64(v)
	}
	if uv == 0 {
		return zero()
	}
	var ds []int32
	for uv > 0 {
		ds = append(ds, int32(uv%base))
		uv /= base
	}
	z := alloc(len(ds), neg)
	copy(z.digits, ds)
	return trim(z, false)
}

// ToInt64 reports whether |x| fits in an int64 and, if so, its value.
// Does not consume x.
func ToInt64(x *BigInt) (int64, bool) {
	if x.count > 3 {
		return 0, false
	}
	const maxUint64 = ^uint64(0)
	var uv uint64
	for i := x.count - 1; i >= 0; i-- {
		d := uint64(x.digits[i])
		if uv > (maxUint64-d)/base {
			return 0, false
		}
		uv = uv*base + d
	}
	if x.isNeg {
		if uv > 1<<63 {
			return 0, false
		}
		return -int64(uv), true
	}
	if uv > uint64(1<<63-1) {
		return 0, false
	}
	return int64(uv), true
}
