package size

import (
	"strconv"
	"strings"
)

// MaxPrecision is the largest number of fractional digits a Formatter
// will emit for inexact values.
const MaxPrecision = 9

// Formatter turns a ByteSize into text.
//
// Sizes which are a whole number of the next smaller unit, e.g.
// 1500KB or 1536KiB, are printed exactly ("1.5MB", "1.5MiB") so they
// parse back to the same value. If Family can't print a size exactly
// but the other family can, the other family is used, so 1GiB stays
// "1GiB" rather than "1.07GB". Anything else is rounded to Precision
// fractional digits, halves rounding up, with trailing zeros removed.
type Formatter struct {
	Family    Family // unit table to use
	Precision int    // fractional digits for inexact values, 0..MaxPrecision
}

// DefaultFormatter is used by ByteSize.String
var DefaultFormatter = Formatter{Family: Decimal, Precision: 2}

// String returns the size in canonical form, e.g. "1GB" or "42.42KB"
func (b ByteSize) String() string {
	return DefaultFormatter.Format(b)
}

// BinaryString returns the size using binary units, e.g. "1.5GiB"
func (b ByteSize) BinaryString() string {
	return Formatter{Family: Binary, Precision: DefaultFormatter.Precision}.Format(b)
}

// Format returns b using the largest unit it is at least one of.
func (f Formatter) Format(b ByteSize) string {
	text, exact := f.format(b, f.Family)
	if exact {
		return text
	}
	other := Binary
	if f.Family == Binary {
		other = Decimal
	}
	if otherText, exact := f.format(b, other); exact {
		return otherText
	}
	return text
}

func (f Formatter) format(b ByteSize, family Family) (text string, exact bool) {
	units := family.units()
	i := len(units) - 1
	for i > 0 && b < units[i].Size {
		i--
	}
	if i == 0 {
		return strconv.FormatUint(uint64(b), 10) + units[0].Symbol, true
	}
	for {
		number, exact, carried := f.render(b, units[i], units[i-1])
		// Rounding up made a whole unit of the next size, e.g. 1000MB
		if carried && i < len(units)-1 {
			i++
			continue
		}
		return number + units[i].Symbol, exact
	}
}

// FormatIn returns b expressed in unit without choosing a better unit,
// e.g. "0.5KB" or "2048KiB".
func (f Formatter) FormatIn(b ByteSize, unit Unit) string {
	lower, ok := lowerUnit(unit)
	if !ok || unit.Size <= 1 {
		return strconv.FormatUint(uint64(b), 10) + unit.Symbol
	}
	number, _, _ := f.render(b, unit, lower)
	return number + unit.Symbol
}

func (f Formatter) precision() int {
	switch {
	case f.Precision < 0:
		return 0
	case f.Precision > MaxPrecision:
		return MaxPrecision
	}
	return f.Precision
}

// render returns b/unit as a decimal number. exact is set if no
// rounding was needed. carried is set if an inexact value has a whole
// part of at least one of the next unit in the family.
func (f Formatter) render(b ByteSize, unit, lower Unit) (number string, exact, carried bool) {
	m := uint64(unit.Size)
	q, r := uint64(b)/m, uint64(b)%m
	if r == 0 {
		return strconv.FormatUint(q, 10), true, false
	}
	var out strings.Builder
	out.WriteString(strconv.FormatUint(q, 10))
	out.WriteByte('.')

	// Exact - r is a whole number of lower units so the expansion
	// terminates. r < m <= 2**60 so r*10 can't overflow.
	if r%uint64(lower.Size) == 0 {
		for r != 0 {
			r *= 10
			out.WriteByte(byte('0' + r/m))
			r %= m
		}
		return out.String(), true, false
	}

	// Inexact - the fraction is rounded on its own and only carried
	// into q when it reaches 1, so a large q can't overflow.
	prec := f.precision()
	scale := pow10(prec)
	var frac uint64
	for n := 0; n < prec; n++ {
		r *= 10
		frac = frac*10 + r/m
		r %= m
	}
	if r >= m-r {
		frac++
	}
	if frac == scale {
		q++
		frac = 0
	}
	base := uint64(1000)
	if unit.Family == Binary {
		base = 1024
	}
	carried = q >= base

	out.Reset()
	out.WriteString(strconv.FormatUint(q, 10))
	if frac != 0 {
		digits := strconv.FormatUint(frac, 10)
		out.WriteByte('.')
		out.WriteString(strings.Repeat("0", prec-len(digits)))
		out.WriteString(strings.TrimRight(digits, "0"))
	}
	return out.String(), false, carried
}
