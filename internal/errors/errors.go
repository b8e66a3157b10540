// Package errors defines the small, value-returning error taxonomy the
// integer core reports: malformed decimal literals, division by zero,
// and unreasonable decimal-scaling exponents.
package errors

import (
	"fmt"
	"strings"
)

// Kind identifies which of the core's three failure categories an
// error belongs to.
type Kind string

const (
	KindParse      Kind = "ParseError"
	KindDivByZero  Kind = "DivisionByZero"
	KindBadScale   Kind = "BadScaleExponent"
)

// CoreError is the error type every core-level failure is reported as.
type CoreError struct {
	Kind    Kind
	Message string
	// Input is the offending text or a short description of the
	// offending value, included for diagnostics.
	Input string
	// Pos is the byte offset into Input where the problem was
	// detected, or -1 when not applicable (e.g. division by zero).
	Pos int
}

func (e *CoreError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Input != "" {
		sb.WriteString(fmt.Sprintf(" (input %q", e.Input))
		if e.Pos >= 0 {
			sb.WriteString(fmt.Sprintf(", position %d", e.Pos))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// NewParseError reports a malformed decimal literal. pos is the byte
// offset into input where the scanner gave up, or -1 if the failure
// isn't tied to one position (e.g. an empty string).
func NewParseError(message, input string, pos int) *CoreError {
	return &CoreError{Kind: KindParse, Message: message, Input: input, Pos: pos}
}

// NewDivisionByZero reports div/mod/div_mod called with a zero divisor.
func NewDivisionByZero() *CoreError {
	return &CoreError{Kind: KindDivByZero, Message: "division by zero", Pos: -1}
}

// NewBadScaleExponent reports mul_pow10/div_pow10 called with an
// exponent too large to be a Small integer.
func NewBadScaleExponent(exp string) *CoreError {
	return &CoreError{Kind: KindBadScale, Message: "scale exponent must fit a machine integer", Input: exp, Pos: -1}
}

// IsParseError reports whether err is a parse failure.
func IsParseError(err error) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Kind == KindParse
}

// IsDivisionByZero reports whether err is a division-by-zero failure.
func IsDivisionByZero(err error) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Kind == KindDivByZero
}

// IsBadScaleExponent reports whether err is a bad scale-exponent failure.
func IsBadScaleExponent(err error) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Kind == KindBadScale
}
