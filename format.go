package bignum

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sentra-lang/bignum/internal/bigint"
)

// ToString renders x in base 10: an optional leading '-', no leading
// zeros, exactly one '-' iff x is negative. Does not consume x, the
// same way Signum and IsEven leave their argument readable afterward.
func ToString(x Integer) string {
	if x.isSmall() {
		return strconv.FormatInt(x.small, 10)
	}
	return bigint.ToString(x.peekBig())
}

// String implements fmt.Stringer.
func (x Integer) String() string {
	return ToString(x)
}

// Format implements fmt.Formatter for the %v, %s and %d verbs, so an
// Integer behaves like any other Go value passed to fmt.Printf or
// log.Printf instead of requiring an explicit ToString call at every
// site.
func (x Integer) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
		io.WriteString(f, x.String())
	default:
		fmt.Fprintf(f, "%%!%c(bignum.Integer=%s)", verb, x.String())
	}
}

// Print writes x's decimal rendering to os.Stdout, terminated by a
// newline. Does not consume x. Formatting is deliberately this thin:
// the core only owns producing the digit string, not deciding where
// it goes.
func Print(x Integer) {
	fmt.Fprintln(os.Stdout, ToString(x))
}

// Fprint writes x's decimal rendering to w, terminated by a newline.
// Does not consume x.
func Fprint(w io.Writer, x Integer) (int, error) {
	return fmt.Fprintln(w, ToString(x))
}
