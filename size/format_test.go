package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		in   ByteSize
		want string
	}{
		{0, "0B"},
		{1, "1B"},
		{999, "999B"},
		{KB, "1KB"},
		{1500, "1.5KB"},
		{1001, "1.001KB"},
		{42420, "42.42KB"},
		{999999, "999.999KB"},
		{MB, "1MB"},
		{1500 * KB, "1.5MB"},
		{1235 * KB, "1.235MB"},
		{1234567, "1.23MB"},
		{1200001, "1.2MB"},
		{1050001, "1.05MB"},
		{999995 * KB, "999.995MB"},
		{999994999, "999.99MB"},
		{999999999, "1GB"},
		{GB, "1GB"},
		{1024 * MB, "1.024GB"},
		{GiB, "1GiB"},
		{GiB + 1, "1.07GB"},
		{3 * TB, "3TB"},
		{PB, "1PB"},
		{18 * EB, "18EB"},
		{1<<64 - 1, "18.45EB"},
	} {
		assert.Equal(t, test.want, test.in.String(), "%d", uint64(test.in))
	}
}

func TestBinaryString(t *testing.T) {
	for _, test := range []struct {
		in   ByteSize
		want string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1023, "1023B"},
		{KiB, "1KiB"},
		{1536, "1.5KiB"},
		{1025, "1.0009765625KiB"},
		{MiB - 1, "1023.9990234375KiB"},
		{MiB, "1MiB"},
		{MiB + KiB, "1.0009765625MiB"},
		{1500 * KiB, "1.46484375MiB"},
		{MiB + 1, "1MiB"},
		{GiB - 1, "1GiB"},
		{3 * GiB / 2, "1.5GiB"},
		{TiB, "1TiB"},
		{PiB, "1PiB"},
		{15 * EiB, "15EiB"},
		{MB, "1MB"},
		{1500 * KB, "1.5MB"},
	} {
		assert.Equal(t, test.want, test.in.BinaryString(), "%d", uint64(test.in))
	}
}

func TestFormatterPrecision(t *testing.T) {
	for _, test := range []struct {
		precision int
		want      string
	}{
		{-1, "1MB"},
		{0, "1MB"},
		{1, "1.2MB"},
		{2, "1.23MB"},
		{4, "1.2346MB"},
		{9, "1.234567MB"},
		{20, "1.234567MB"},
	} {
		f := Formatter{Family: Decimal, Precision: test.precision}
		assert.Equal(t, test.want, f.Format(1234567), "precision %d", test.precision)
	}
}

func TestFormatIn(t *testing.T) {
	kb, _ := LookupUnit("KB")
	gb, _ := LookupUnit("GB")
	kib, _ := LookupUnit("KiB")
	b, _ := LookupUnit("B")
	for _, test := range []struct {
		in   ByteSize
		unit Unit
		want string
	}{
		{500, kb, "0.5KB"},
		{1234567, kb, "1234.567KB"},
		{1234567, gb, "0GB"},
		{1500 * MB, gb, "1.5GB"},
		{2 * MiB, kib, "2048KiB"},
		{512, kib, "0.5KiB"},
		{1500, b, "1500B"},
		{0, kb, "0KB"},
	} {
		got := DefaultFormatter.FormatIn(test.in, test.unit)
		assert.Equal(t, test.want, got, "%d in %s", uint64(test.in), test.unit)
	}
}

// Forced units can leave a whole part far above the family base.
func TestFormatInLarge(t *testing.T) {
	mb, _ := LookupUnit("MB")
	mib, _ := LookupUnit("MiB")
	eb, _ := LookupUnit("EB")
	kb, _ := LookupUnit("KB")
	max := ByteSize(1<<64 - 1)
	for _, test := range []struct {
		precision int
		in        ByteSize
		unit      Unit
		want      string
	}{
		{9, max, mb, "18446744073709.551615MB"},
		{2, max, mb, "18446744073709.55MB"},
		{0, max, mb, "18446744073710MB"},
		{9, max, mib, "17592186044415.999999046MiB"},
		{2, max, mib, "17592186044416MiB"},
		{9, max, eb, "18.446744074EB"},
		{9, max, kb, "18446744073709551.615KB"},
		{2, 999999999, mb, "1000MB"},
	} {
		f := Formatter{Family: Decimal, Precision: test.precision}
		got := f.FormatIn(test.in, test.unit)
		assert.Equal(t, test.want, got, "%d in %s at precision %d", uint64(test.in), test.unit, test.precision)
		if test.precision == 9 && test.unit.Size <= MB {
			back, err := Parse(got)
			require.NoError(t, err, got)
			assert.Equal(t, test.in, back, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, family := range []Family{Decimal, Binary} {
		f := Formatter{Family: family, Precision: 2}
		for _, unit := range append(Units(Decimal), Units(Binary)[1:]...) {
			for _, n := range []uint64{0, 1, 2, 7, 42, 999, 1000, 1023, 1024, 1500, 65535} {
				v, err := FromUnit(n, unit.Size)
				if err != nil {
					continue
				}
				text := f.Format(v)
				got, err := Parse(text)
				require.NoError(t, err, text)
				assert.Equal(t, v, got, "%d%s -> %q", n, unit.Symbol, text)
			}
		}
	}
}

// Below the second unit everything is a whole number of bytes so
// every value must round trip.
func TestRoundTripSmall(t *testing.T) {
	for v := ByteSize(0); v < MB; v += 613 {
		got, err := Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got, v.String())
	}
	for v := ByteSize(0); v < MiB; v += 617 {
		got, err := Parse(v.BinaryString())
		require.NoError(t, err)
		assert.Equal(t, v, got, v.BinaryString())
	}
}

func TestRoundTripInexact(t *testing.T) {
	v := ByteSize(1234567)
	got, err := Parse(v.String())
	require.NoError(t, err)
	assert.Equal(t, ByteSize(1230000), got)
	diff, err := v.Sub(got)
	require.NoError(t, err)
	assert.True(t, diff <= 5*KB, "within half of the last digit")
}
