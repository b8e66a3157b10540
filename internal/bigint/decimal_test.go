package bigint

import "testing"

func TestFromDigitsEmptyIsZero(t *testing.T) {
	x := FromDigits(false, "")
	if !x.IsZero() {
		t.Fatalf("FromDigits(false, \"\") = %s, want 0", ToString(x))
	}
}

func TestFromDigitsRoundTripsThroughToString(t *testing.T) {
	cases := []struct {
		neg    bool
		digits string
		want   string
	}{
		{false, "0", "0"},
		{false, "42", "42"},
		{true, "42", "-42"},
		{false, "000123", "123"},
		{false, "1000000000", "1000000000"},
		{false, "123456789123456789123456789", "123456789123456789123456789"},
	}
	for _, c := range cases {
		got := ToString(FromDigits(c.neg, c.digits))
		if got != c.want {
			t.Errorf("FromDigits(%v, %q) -> ToString = %s, want %s", c.neg, c.digits, got, c.want)
		}
	}
}

func TestFromDigitsAllZerosIsCanonicalZero(t *testing.T) {
	x := FromDigits(true, "0000")
	if x.IsNeg() || !x.IsZero() {
		t.Fatalf("FromDigits(true, \"0000\") should normalize to nonnegative zero, got isNeg=%v", x.IsNeg())
	}
}

func TestToStringNegativeHasSingleMinus(t *testing.T) {
	x := FromDigits(true, "7")
	if got := ToString(x); got != "-7" {
		t.Fatalf("ToString(-7) = %s, want -7", got)
	}
}

func TestCountDigitsZero(t *testing.T) {
	if got := CountDigits(zero()); got != 1 {
		t.Fatalf("CountDigits(0) = %d, want 1", got)
	}
}

func TestCountDigitsAcrossLimbBoundary(t *testing.T) {
	cases := []struct {
		digits string
		want   int
	}{
		{"9", 1},
		{"999999999", 9},
		{"1000000000", 10},
		{"123456789123456789", 18},
	}
	for _, c := range cases {
		got := CountDigits(FromDigits(false, c.digits))
		if got != c.want {
			t.Errorf("CountDigits(%s) = %d, want %d", c.digits, got, c.want)
		}
	}
}

func TestCtzZeroIsZeroByConvention(t *testing.T) {
	if got := Ctz(zero()); got != 0 {
		t.Fatalf("Ctz(0) = %d, want 0", got)
	}
}

func TestCtzCountsTrailingDecimalZeros(t *testing.T) {
	cases := []struct {
		digits string
		want   int
	}{
		{"100", 2},
		{"120", 1},
		{"123", 0},
		{"1000000000", 9}, // exactly one base-10^9 limb of trailing zero
		{"1000000001", 0},
		{"2000000000", 9}, // one whole zero limb, top digit itself has none
	}
	for _, c := range cases {
		got := Ctz(FromDigits(false, c.digits))
		if got != c.want {
			t.Errorf("Ctz(%s) = %d, want %d", c.digits, got, c.want)
		}
	}
}

func TestMulPow10ZeroExponentIsNoop(t *testing.T) {
	x := FromInt64(42)
	got := MulPow10(x, 0)
	if ToString(got) != "42" {
		t.Fatalf("MulPow10(42, 0) = %s, want 42", ToString(got))
	}
}

func TestMulPow10OfZero(t *testing.T) {
	got := MulPow10(zero(), 5)
	if !got.IsZero() {
		t.Fatalf("MulPow10(0, 5) = %s, want 0", ToString(got))
	}
}

func TestMulPow10SplitAcrossLimbs(t *testing.T) {
	x := FromInt64(3)
	got := MulPow10(x, 11)
	if want := "300000000000"; ToString(got) != want {
		t.Fatalf("MulPow10(3, 11) = %s, want %s", ToString(got), want)
	}
}

func TestDivPow10ZeroExponentIsNoop(t *testing.T) {
	x := FromInt64(42)
	got := DivPow10(x, 0)
	if ToString(got) != "42" {
		t.Fatalf("DivPow10(42, 0) = %s, want 42", ToString(got))
	}
}
