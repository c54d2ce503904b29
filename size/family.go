package size

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Family selects the multiplier table used for formatting.
//
// It can be set from a flag, a config string or JSON like any other
// option.
type Family byte

// Family constants
const (
	Decimal Family = iota // KB, MB, GB... powers of 1000
	Binary                // KiB, MiB, GiB... powers of 1024
)

var familyChoices = []string{
	Decimal: "decimal",
	Binary:  "binary",
}

// String renders the Family as a string
func (f Family) String() string {
	if int(f) >= len(familyChoices) {
		return fmt.Sprintf("Unknown(%d)", f)
	}
	return familyChoices[f]
}

// Choices returns the possible values of the Family.
func (f Family) Choices() []string {
	return append([]string(nil), familyChoices...)
}

// Help returns a comma separated list of all possible states.
func (f Family) Help() string {
	return strings.Join(familyChoices, ", ")
}

// Set the Family from a string, ignoring case
func (f *Family) Set(s string) error {
	for i, choice := range familyChoices {
		if strings.EqualFold(s, choice) {
			*f = Family(i)
			return nil
		}
	}
	return errors.Errorf("invalid family %q from: %s", s, f.Help())
}

// Type of the value
func (f Family) Type() string {
	return strings.Join(familyChoices, "|")
}

// Scan implements the fmt.Scanner interface
func (f *Family) Scan(s fmt.ScanState, ch rune) error {
	token, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	return f.Set(string(token))
}

// MarshalText encodes it as its name
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses the name of the Family
func (f *Family) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// MarshalJSON encodes it as string
func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses it as a string or an integer
func (f *Family) UnmarshalJSON(in []byte) error {
	var s string
	err := json.Unmarshal(in, &s)
	if err == nil {
		return f.Set(s)
	}
	var i int64
	err = json.Unmarshal(in, &i)
	if err != nil {
		return err
	}
	if i < 0 || i >= int64(len(familyChoices)) {
		return errors.Errorf("%d is out of range: must be 0..%d", i, len(familyChoices)-1)
	}
	*f = Family(i)
	return nil
}

// units returns the unit table for the family
func (f Family) units() []Unit {
	if f == Binary {
		return binaryUnits
	}
	return decimalUnits
}
