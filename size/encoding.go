package size

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/pkg/errors"
)

// The adapters below all write the canonical form from String and
// read back through Parse. There is no numeric serialized form.

// Set a ByteSize from a string. Used by pflag.
func (b *ByteSize) Set(s string) error {
	x, err := Parse(s)
	if err != nil {
		return err
	}
	*b = x
	return nil
}

// Type of the value
func (b *ByteSize) Type() string {
	return "ByteSize"
}

// Scan implements the fmt.Scanner interface
//
// A unit separated from the number by spaces is read too, so "1 GB"
// scans as one size. Any word following a bare number is taken as its
// unit.
func (b *ByteSize) Scan(s fmt.ScanState, ch rune) error {
	token, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	text := string(token)
	if last := text[len(text)-1]; isDigit(last) || last == '.' {
		unit, err := scanUnit(s)
		if err != nil {
			return err
		}
		text += unit
	}
	return b.Set(text)
}

// scanUnit reads the spaces and letters following a number
func scanUnit(s fmt.ScanState) (string, error) {
	for {
		r, _, err := s.ReadRune()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if r != ' ' && r != '\t' {
			err = s.UnreadRune()
			if err != nil {
				return "", err
			}
			break
		}
	}
	unit, err := s.Token(false, unicode.IsLetter)
	if err != nil {
		return "", err
	}
	return string(unit), nil
}

// MarshalText encodes it in canonical form
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses text with Parse
func (b *ByteSize) UnmarshalText(text []byte) error {
	return b.Set(string(text))
}

// MarshalJSON encodes it as a JSON string in canonical form
func (b ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON parses a JSON string with Parse. Numbers are rejected
// and null leaves the value unchanged.
func (b *ByteSize) UnmarshalJSON(in []byte) error {
	if string(in) == "null" {
		return nil
	}
	var s string
	err := json.Unmarshal(in, &s)
	if err != nil {
		return errors.Wrapf(err, "size must be a JSON string, got %s", in)
	}
	return b.Set(s)
}

// MarshalYAML encodes it as a YAML string in canonical form
func (b ByteSize) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML parses a YAML scalar with Parse
func (b *ByteSize) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	return b.Set(s)
}
