package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ZipCode is a five digit US postal code. It is an integer on the wire
// (a numeric string is accepted on input) and a zero-padded CHAR(5) in MySQL.
type ZipCode int

// MaxZipCode is the largest value that fits in five digits.
const MaxZipCode ZipCode = 99999

// ParseZipCode parses the stored or textual representation.
func ParseZipCode(s string) (ZipCode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("zip code %q: %w", s, err)
	}
	z := ZipCode(n)
	if !z.Valid() {
		return 0, fmt.Errorf("zip code %q out of range", s)
	}
	return z, nil
}

// Valid reports whether z fits in five digits.
func (z ZipCode) Valid() bool {
	return z >= 0 && z <= MaxZipCode
}

// String renders the zero-padded storage form.
func (z ZipCode) String() string {
	return fmt.Sprintf("%05d", int(z))
}

func (z *ZipCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseZipCode(s)
		if err != nil {
			return err
		}
		*z = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("zip code: %w", err)
	}
	*z = ZipCode(n)
	return nil
}
