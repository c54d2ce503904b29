// Package size implements ByteSize, an exact count of bytes which can
// be parsed from and printed as human readable text like "42.42KB" or
// "1.5GiB".
package size

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// ByteSize is an exact, non-negative number of bytes.
//
// Values are compared with == and < like any other integer. The
// arithmetic methods return errors instead of wrapping around.
type ByteSize uint64

// twoTo64 is 2**64 as a float64, the first value which doesn't fit
const twoTo64 = float64(1<<63) * 2

// FromBytes creates a ByteSize from a number of bytes
func FromBytes(n uint64) ByteSize {
	return ByteSize(n)
}

// FromBits creates a ByteSize from a number of bits, discarding any
// bits which don't make up a whole byte.
func FromBits(n uint64) ByteSize {
	return ByteSize(n / 8)
}

// FromUnit returns n multiples of unit.
//
// It returns ErrOverflow if the result doesn't fit in 64 bits.
func FromUnit(n uint64, unit ByteSize) (ByteSize, error) {
	hi, lo := bits.Mul64(n, uint64(unit))
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", n, uint64(unit))
	}
	return ByteSize(lo), nil
}

// FromUnitFloat returns x multiples of unit rounded to the nearest
// byte, halves rounding up.
//
// x must be finite and not negative otherwise ErrInvalidValue is
// returned. ErrOverflow is returned if the result doesn't fit in 64
// bits.
func FromUnitFloat(x float64, unit ByteSize) (ByteSize, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrInvalidValue, "%v is not a finite number", x)
	}
	if x < 0 {
		return 0, errors.Wrapf(ErrInvalidValue, "size can't be negative: %v", x)
	}
	v := math.Round(x * float64(unit))
	if v >= twoTo64 {
		return 0, errors.Wrapf(ErrOverflow, "%v * %d", x, uint64(unit))
	}
	return ByteSize(v), nil
}

// FromKB returns n kilobytes (1000 bytes)
func FromKB(n uint64) (ByteSize, error) { return FromUnit(n, KB) }

// FromMB returns n megabytes
func FromMB(n uint64) (ByteSize, error) { return FromUnit(n, MB) }

// FromGB returns n gigabytes
func FromGB(n uint64) (ByteSize, error) { return FromUnit(n, GB) }

// FromTB returns n terabytes
func FromTB(n uint64) (ByteSize, error) { return FromUnit(n, TB) }

// FromPB returns n petabytes
func FromPB(n uint64) (ByteSize, error) { return FromUnit(n, PB) }

// FromEB returns n exabytes
func FromEB(n uint64) (ByteSize, error) { return FromUnit(n, EB) }

// FromKiB returns n kibibytes (1024 bytes)
func FromKiB(n uint64) (ByteSize, error) { return FromUnit(n, KiB) }

// FromMiB returns n mebibytes
func FromMiB(n uint64) (ByteSize, error) { return FromUnit(n, MiB) }

// FromGiB returns n gibibytes
func FromGiB(n uint64) (ByteSize, error) { return FromUnit(n, GiB) }

// FromTiB returns n tebibytes
func FromTiB(n uint64) (ByteSize, error) { return FromUnit(n, TiB) }

// FromPiB returns n pebibytes
func FromPiB(n uint64) (ByteSize, error) { return FromUnit(n, PiB) }

// FromEiB returns n exbibytes
func FromEiB(n uint64) (ByteSize, error) { return FromUnit(n, EiB) }

// FromKBFloat returns x kilobytes, see FromUnitFloat
func FromKBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, KB) }

// FromMBFloat returns x megabytes, see FromUnitFloat
func FromMBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, MB) }

// FromGBFloat returns x gigabytes, see FromUnitFloat
func FromGBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, GB) }

// FromTBFloat returns x terabytes, see FromUnitFloat
func FromTBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, TB) }

// FromPBFloat returns x petabytes, see FromUnitFloat
func FromPBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, PB) }

// FromEBFloat returns x exabytes, see FromUnitFloat
func FromEBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, EB) }

// FromKiBFloat returns x kibibytes, see FromUnitFloat
func FromKiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, KiB) }

// FromMiBFloat returns x mebibytes, see FromUnitFloat
func FromMiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, MiB) }

// FromGiBFloat returns x gibibytes, see FromUnitFloat
func FromGiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, GiB) }

// FromTiBFloat returns x tebibytes, see FromUnitFloat
func FromTiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, TiB) }

// FromPiBFloat returns x pebibytes, see FromUnitFloat
func FromPiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, PiB) }

// FromEiBFloat returns x exbibytes, see FromUnitFloat
func FromEiBFloat(x float64) (ByteSize, error) { return FromUnitFloat(x, EiB) }

// Bytes returns the number of bytes
func (b ByteSize) Bytes() uint64 {
	return uint64(b)
}

// In returns the size expressed in multiples of unit, e.g.
// FromKiB(1536).In(MiB) == 1.5
func (b ByteSize) In(unit ByteSize) float64 {
	if unit == 0 {
		return math.Inf(1)
	}
	return float64(b) / float64(unit)
}

// Unit returns the largest unit of family which b is at least one of,
// or bytes if b is smaller than all of them.
func (b ByteSize) Unit(family Family) Unit {
	units := family.units()
	i := len(units) - 1
	for i > 0 && b < units[i].Size {
		i--
	}
	return units[i]
}

// Add returns b + o or ErrOverflow
func (b ByteSize) Add(o ByteSize) (ByteSize, error) {
	sum, carry := bits.Add64(uint64(b), uint64(o), 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", uint64(b), uint64(o))
	}
	return ByteSize(sum), nil
}

// Sub returns b - o or ErrUnderflow if o is larger than b
func (b ByteSize) Sub(o ByteSize) (ByteSize, error) {
	if o > b {
		return 0, errors.Wrapf(ErrUnderflow, "%d - %d", uint64(b), uint64(o))
	}
	return b - o, nil
}

// Cmp compares b and o and returns:
//
//	-1 if b <  o
//	 0 if b == o
//	+1 if b >  o
func (b ByteSize) Cmp(o ByteSize) int {
	switch {
	case b < o:
		return -1
	case b > o:
		return 1
	}
	return 0
}

// Sum adds up all the sizes, returning ErrOverflow if the total
// doesn't fit.
func Sum(sizes ...ByteSize) (total ByteSize, err error) {
	for _, x := range sizes {
		total, err = total.Add(x)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
