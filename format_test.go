package bignum

import (
	"bytes"
	"fmt"
	"testing"
)

func TestToStringSmallAndBig(t *testing.T) {
	cases := []struct {
		x    Integer
		want string
	}{
		{Zero, "0"},
		{FromInt64(42), "42"},
		{FromInt64(-42), "-42"},
		{FromInt64(SmallMax), "1073741824"},
		{mustParse(t, "123456789123456789123456789"), "123456789123456789123456789"},
		{mustParse(t, "-123456789123456789123456789"), "-123456789123456789123456789"},
	}
	for _, c := range cases {
		if got := ToString(c.x); got != c.want {
			t.Errorf("ToString(%v) = %s, want %s", c.x, got, c.want)
		}
	}
}

func TestStringerInterface(t *testing.T) {
	x := FromInt64(99)
	if got := x.String(); got != "99" {
		t.Errorf("Integer.String() = %s, want 99", got)
	}
	if got := fmt.Sprintf("%v", FromInt64(7)); got != "7" {
		t.Errorf("%%v formatting = %s, want 7", got)
	}
	if got := fmt.Sprintf("%s", FromInt64(7)); got != "7" {
		t.Errorf("%%s formatting = %s, want 7", got)
	}
	if got := fmt.Sprintf("%d", FromInt64(7)); got != "7" {
		t.Errorf("%%d formatting = %s, want 7", got)
	}
}

func TestFormatUnsupportedVerbDoesNotPanic(t *testing.T) {
	got := fmt.Sprintf("%x", FromInt64(255))
	if got == "" {
		t.Fatal("Format with an unsupported verb produced empty output")
	}
}

func TestFprintWritesNewlineTerminatedDecimal(t *testing.T) {
	var buf bytes.Buffer
	n, err := Fprint(&buf, FromInt64(123))
	if err != nil {
		t.Fatalf("Fprint returned error: %v", err)
	}
	if want := "123\n"; buf.String() != want {
		t.Fatalf("Fprint wrote %q, want %q", buf.String(), want)
	}
	if n != len(want) {
		t.Errorf("Fprint returned n=%d, want %d", n, len(want))
	}
}
