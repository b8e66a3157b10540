package bignum

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sentra-lang/bignum/internal/bigint"
	coreerrors "github.com/sentra-lang/bignum/internal/errors"
)

// smallExponent extracts p as a Go int, failing with BadScaleExponent
// if p is Big — the spec's own bound, since a decimal shift by more
// than a machine int's worth of digits is never a reasonable request
// and would allocate an unbounded digit buffer. Consumes p.
func smallExponent(p Integer) (int, error) {
	if !p.isSmall() {
		return 0, errors.WithStack(coreerrors.NewBadScaleExponent(ToString(p)))
	}
	if p.small < math.MinInt32 || p.small > math.MaxInt32 {
		return 0, errors.WithStack(coreerrors.NewBadScaleExponent(strconv.FormatInt(p.small, 10)))
	}
	return int(p.small), nil
}

// MulPow10 returns x * 10^p. Consumes x and p. Fails with
// BadScaleExponent if p does not fit a machine int.
func MulPow10(x Integer, p Integer) (Integer, error) {
	n, err := smallExponent(p)
	if err != nil {
		x.discard()
		return Zero, err
	}
	return fromBig(bigint.MulPow10(x.toBig(), n)), nil
}

// DivPow10 returns x / 10^p, truncated toward zero. Consumes x and p.
// Fails with BadScaleExponent if p does not fit a machine int.
func DivPow10(x Integer, p Integer) (Integer, error) {
	n, err := smallExponent(p)
	if err != nil {
		x.discard()
		return Zero, err
	}
	return fromBig(bigint.DivPow10(x.toBig(), n)), nil
}

// CountDigits returns the number of decimal digits of |x| (1 for
// zero). Does not consume x.
func CountDigits(x Integer) Integer {
	return FromInt64(int64(bigint.CountDigits(x.peekBig())))
}

// Ctz returns the number of trailing decimal zeros of |x| (0 for
// zero). Does not consume x.
func Ctz(x Integer) Integer {
	return FromInt64(int64(bigint.Ctz(x.peekBig())))
}

// discard drops x's reference without reading it, for error paths
// that consumed x per the calling convention but have no value to
// hand back.
func (x Integer) discard() {
	if x.big != nil {
		x.big.Unref()
	}
}
