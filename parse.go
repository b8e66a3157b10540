package bignum

import (
	"strconv"
	"strings"

	"github.com/sentra-lang/bignum/internal/bigint"
	"github.com/sentra-lang/bignum/internal/digit"
	coreerrors "github.com/sentra-lang/bignum/internal/errors"
)

// Parse converts a decimal literal to an Integer. The grammar is:
//
//	literal    = [ sign ] digits [ "." digits ] [ exponent ]
//	sign       = "+" | "-"
//	digits     = decdigit { decdigit | "_" }  (each "_" must be flanked by digits)
//	exponent   = ( "e" | "E" ) decdigit { decdigit }
//
// The exponent is unsigned: "1e+5" and "1e-5" are both malformed, not
// just rejected later for failing the fractional-digits check below.
//
// The exponent, if present, must be at least the number of fractional
// digits, so the literal denotes an exact integer: "1.5" alone is
// rejected, but "1.5e1" is accepted and equals 15, since the exponent
// absorbs the fractional digit. A *coreerrors.CoreError of kind
// ParseError is returned (wrapped with a stack trace) for any malformed
// input.
func Parse(s string) (Integer, error) {
	p := &parser{src: s}
	v, err := p.parse()
	if err != nil {
		return Zero, err
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(message string) error {
	return pkgWrapParse(coreerrors.NewParseError(message, p.src, p.pos))
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	return c
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitRun reads a decdigit { decdigit | "_" } run, rejecting a "_" not
// flanked by digits on both sides, and returns the digits with
// separators stripped.
func (p *parser) digitRun() (string, error) {
	if !isDecDigit(p.peek()) {
		return "", p.fail("expected a decimal digit")
	}
	var sb strings.Builder
	sb.WriteByte(p.advance())
	for {
		c := p.peek()
		switch {
		case isDecDigit(c):
			sb.WriteByte(p.advance())
		case c == '_':
			// Must be flanked by digits: a "_" just consumed cannot be
			// immediately followed by another "_" or end the run.
			if p.pos+1 >= len(p.src) || !isDecDigit(p.src[p.pos+1]) {
				return "", p.fail("'_' separator must be flanked by digits")
			}
			p.advance()
		default:
			return sb.String(), nil
		}
	}
}

func (p *parser) parse() (Integer, error) {
	if len(p.src) == 0 {
		return Zero, p.fail("empty literal")
	}

	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.advance()
	}

	sig, err := p.digitRun()
	if err != nil {
		return Zero, err
	}

	frac := ""
	if p.peek() == '.' {
		p.advance()
		frac, err = p.digitRun()
		if err != nil {
			return Zero, err
		}
	}

	exp := 0
	if c := p.peek(); c == 'e' || c == 'E' {
		p.advance()
		expDigits, err := p.digitRun()
		if err != nil {
			return Zero, err
		}
		v, err := strconv.Atoi(expDigits)
		if err != nil || v >= digit.Base {
			return Zero, p.fail("exponent out of range")
		}
		exp = v
	}

	if p.pos != len(p.src) {
		return Zero, p.fail("unexpected trailing characters")
	}

	fracDigits := len(frac)
	if exp < fracDigits {
		return Zero, p.fail("fractional literal does not denote an integer")
	}

	trailingZeros := exp - fracDigits
	dec := len(sig) + fracDigits + trailingZeros

	if dec < digit.Log10Base {
		v, err := strconv.ParseInt(sig+frac+strings.Repeat("0", trailingZeros), 10, 64)
		if err != nil {
			return Zero, p.fail("malformed digit run")
		}
		if neg {
			v = -v
		}
		return FromInt64(v), nil
	}

	digits := sig + frac + strings.Repeat("0", trailingZeros)
	return fromBig(bigint.FromDigits(neg, digits)), nil
}
