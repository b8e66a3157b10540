package bigint

import (
	"strings"
	"testing"
)

// bigDigitString returns a decimal string of n nines, a magnitude large
// enough to push mulGeneric across the Karatsuba cutover.
func bigDigitString(n int) string {
	return strings.Repeat("9", n)
}

func TestUseKaratsubaThreshold(t *testing.T) {
	cases := []struct {
		i, j int
		want bool
	}{
		{10, 10, false},
		{karatsubaCutoverMin, karatsubaCutoverMax + 1, false},
		{karatsubaCutoverMin + 1, karatsubaCutoverMax + 1, true},
		{karatsubaCutoverMax + 1, karatsubaCutoverMin + 1, true},
	}
	for _, c := range cases {
		got := useKaratsuba(c.i, c.j)
		if got != c.want {
			t.Errorf("useKaratsuba(%d, %d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestMulGenericBelowCutoverMatchesSchoolbook(t *testing.T) {
	x := FromDigits(false, "123456789123456789")
	y := FromDigits(false, "987654321987654321")
	z := mulGeneric(x, y)
	xb := FromDigits(false, "123456789123456789")
	yb := FromDigits(false, "987654321987654321")
	want := mulSchoolbook(xb, yb)
	if ToString(z) != ToString(want) {
		t.Fatalf("mulGeneric = %s, want %s", ToString(z), ToString(want))
	}
}

func TestMulGenericAboveCutoverUsesKaratsuba(t *testing.T) {
	a := bigDigitString(500)
	b := bigDigitString(500)

	x := FromDigits(false, a)
	y := FromDigits(false, b)
	if !useKaratsuba(x.count, y.count) {
		t.Fatal("500-nine operands should clear the Karatsuba cutover")
	}
	got := mulGeneric(x, y)

	xb := FromDigits(false, a)
	yb := FromDigits(false, b)
	want := mulSchoolbook(xb, yb)

	if ToString(got) != ToString(want) {
		t.Fatal("mulGeneric above the cutover disagrees with mulSchoolbook")
	}
}

func TestMulKaratsubaMatchesSchoolbookOnLargeOperands(t *testing.T) {
	// 300 decimal digits is comfortably more than 25 base-10^9 limbs,
	// forcing mulKaratsuba into actual recursion rather than its
	// schoolbook base case.
	a := bigDigitString(300)
	b := bigDigitString(300)

	x := FromDigits(false, a)
	y := FromDigits(false, b)
	got := mulKaratsuba(x, y)

	xb := FromDigits(false, a)
	yb := FromDigits(false, b)
	want := mulSchoolbook(xb, yb)

	if ToString(got) != ToString(want) {
		t.Fatalf("mulKaratsuba(%d nines, %d nines) disagrees with mulSchoolbook", len(a), len(b))
	}
}

func TestMulKaratsubaHandlesSignedOperands(t *testing.T) {
	a := bigDigitString(300)
	b := bigDigitString(300)

	x := FromDigits(true, a)
	y := FromDigits(false, b)
	got := mulKaratsuba(x, y)
	if !got.IsNeg() {
		t.Fatal("mulKaratsuba(-a, b) should be negative")
	}

	xb := FromDigits(true, a)
	yb := FromDigits(false, b)
	want := mulSchoolbook(xb, yb)
	if ToString(got) != ToString(want) {
		t.Fatalf("mulKaratsuba signed result = %s, want %s", ToString(got), ToString(want))
	}
}

func TestMulKaratsubaAsymmetricLengths(t *testing.T) {
	a := bigDigitString(400)
	b := bigDigitString(200)

	x := FromDigits(false, a)
	y := FromDigits(false, b)
	got := mulKaratsuba(x, y)

	xb := FromDigits(false, a)
	yb := FromDigits(false, b)
	want := mulSchoolbook(xb, yb)

	if ToString(got) != ToString(want) {
		t.Fatalf("mulKaratsuba(400 nines, 200 nines) disagrees with mulSchoolbook")
	}
}
