package bignum

import (
	"github.com/pkg/errors"

	coreerrors "github.com/sentra-lang/bignum/internal/errors"
)

// pkgWrapParse attaches a stack trace to a *coreerrors.CoreError so a
// host's own error reporting gets a %+v-able trace, while
// errors.Cause(err) still recovers the typed CoreError for callers
// that want to switch on Kind.
func pkgWrapParse(err *coreerrors.CoreError) error {
	return errors.WithStack(err)
}

// IsParseError, IsDivisionByZero and IsBadScaleExponent unwrap err
// (following any github.com/pkg/errors wrapping) to classify a failure
// returned by Parse, MulPow10 or DivPow10, or recovered from a panic
// raised by DivMod/Div/Mod.
func IsParseError(err error) bool {
	return coreerrors.IsParseError(errors.Cause(err))
}

func IsDivisionByZero(err error) bool {
	return coreerrors.IsDivisionByZero(errors.Cause(err))
}

func IsBadScaleExponent(err error) bool {
	return coreerrors.IsBadScaleExponent(errors.Cause(err))
}
