package size

import "strings"

// Common multipliers for ByteSize
const (
	B ByteSize = 1

	KB = 1000 * B
	MB = 1000 * KB
	GB = 1000 * MB
	TB = 1000 * GB
	PB = 1000 * TB
	EB = 1000 * PB

	KiB = 1024 * B
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
	PiB = 1024 * TiB
	EiB = 1024 * PiB
)

// Unit is a single row of the unit table
type Unit struct {
	Symbol string   // e.g. "KiB"
	Size   ByteSize // multiplier in bytes
	Family Family   // family the unit belongs to, Decimal for "B"
}

// String returns the symbol of the unit
func (u Unit) String() string {
	return u.Symbol
}

// Both tables are ordered by increasing size and start with bytes.
var (
	decimalUnits = []Unit{
		{"B", B, Decimal},
		{"KB", KB, Decimal},
		{"MB", MB, Decimal},
		{"GB", GB, Decimal},
		{"TB", TB, Decimal},
		{"PB", PB, Decimal},
		{"EB", EB, Decimal},
	}
	binaryUnits = []Unit{
		{"B", B, Decimal},
		{"KiB", KiB, Binary},
		{"MiB", MiB, Binary},
		{"GiB", GiB, Binary},
		{"TiB", TiB, Binary},
		{"PiB", PiB, Binary},
		{"EiB", EiB, Binary},
	}
)

// Units returns a copy of the unit table for family, smallest first.
func Units(family Family) []Unit {
	return append([]Unit(nil), family.units()...)
}

// LookupUnit finds the unit with the given symbol, ignoring case.
//
// The whole symbol must match so "KiB" is never mistaken for "KB".
func LookupUnit(symbol string) (Unit, bool) {
	for _, units := range [][]Unit{decimalUnits, binaryUnits[1:]} {
		for _, u := range units {
			if strings.EqualFold(symbol, u.Symbol) {
				return u, true
			}
		}
	}
	return Unit{}, false
}

// lowerUnit returns the unit just below u in its family's table. ok
// is false for bytes.
func lowerUnit(u Unit) (lower Unit, ok bool) {
	units := u.Family.units()
	for i := 1; i < len(units); i++ {
		if units[i].Size == u.Size {
			return units[i-1], true
		}
	}
	return Unit{}, false
}
