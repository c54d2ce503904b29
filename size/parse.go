package size

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxFracDigits is the number of fractional digits which are used,
// any more are ignored. 10**19 is the largest power of 10 in a uint64.
const maxFracDigits = 19

// Parse parses a human readable size like "42.42 KB", "1GiB" or "100".
//
// The number may have a leading "+" and a fractional part but no
// exponent. It may be followed by optional spaces and a unit from the
// decimal or binary table, ignoring case. A missing unit means bytes.
// Fractional sizes are rounded to the nearest byte, halves rounding up.
//
// Errors are returned as a *ParseError wrapping one of ErrNoNumber,
// ErrUnknownUnit, ErrInvalidFormat, ErrInvalidValue or ErrOverflow.
func Parse(s string) (ByteSize, error) {
	b, err := parse(s)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return b, nil
}

func parse(in string) (ByteSize, error) {
	s := strings.TrimSpace(in)
	if s == "" {
		return 0, errors.Wrap(ErrInvalidFormat, "empty string")
	}

	// Sign
	i := 0
	switch s[0] {
	case '-':
		return 0, errors.Wrap(ErrInvalidValue, "size can't be negative")
	case '+':
		i++
	}

	// Number
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[intStart:i]
	var fracDigits string
	isFrac := false
	if i < len(s) && s[i] == '.' {
		isFrac = true
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracDigits = s[fracStart:i]
	}
	if intDigits == "" && fracDigits == "" {
		if _, found := LookupUnit(strings.TrimSpace(s[intStart:])); found {
			return 0, errors.Wrap(ErrInvalidFormat, "unit without a number")
		}
		return 0, ErrNoNumber
	}
	if i < len(s) && s[i] == '.' {
		return 0, errors.Wrap(ErrInvalidFormat, "more than one decimal point")
	}

	// Unit
	suffix := strings.TrimSpace(s[i:])
	unit := B
	if suffix != "" {
		u, found := LookupUnit(suffix)
		if !found {
			return 0, errors.Wrapf(ErrUnknownUnit, "bad suffix %q", suffix)
		}
		unit = u.Size
	}

	var whole uint64
	if intDigits != "" {
		var err error
		whole, err = strconv.ParseUint(intDigits, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrOverflow, "%s is too big", intDigits)
		}
	}
	size, err := FromUnit(whole, unit)
	if err != nil || !isFrac {
		return size, err
	}
	frac, err := fraction(fracDigits, unit)
	if err != nil {
		return 0, err
	}
	return size.Add(frac)
}

// fraction returns 0.digits * unit rounded to the nearest byte
//
// The product is computed in 128 bits so it is exact for any unit.
func fraction(digits string, unit ByteSize) (ByteSize, error) {
	digits = strings.TrimRight(digits, "0")
	if len(digits) > maxFracDigits {
		digits = digits[:maxFracDigits]
	}
	if digits == "" {
		return 0, nil
	}
	numerator, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFormat, "bad fraction %q", digits)
	}
	denominator := pow10(len(digits))
	// numerator < denominator so hi < denominator and Div64 can't panic
	hi, lo := bits.Mul64(numerator, uint64(unit))
	quo, rem := bits.Div64(hi, lo, denominator)
	if rem >= denominator-rem {
		quo++
	}
	return ByteSize(quo), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// pow10 returns 10**n for n <= 19
func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
