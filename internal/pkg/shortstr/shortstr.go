// Package shortstr handles the packed short-string encoding used for
// on-chain adventurer names: an unsigned integer whose big-endian bytes
// are ASCII characters, NUL-padded.
package shortstr

import (
	"fmt"
	"math/big"
	"strings"
)

// String wraps the packed integer form of a short string. The zero value
// decodes to the empty string.
type String struct {
	value *big.Int
}

// FromBig creates a String from its packed integer representation.
func FromBig(v *big.Int) String {
	if v == nil {
		return String{}
	}
	return String{value: new(big.Int).Set(v)}
}

// FromText packs plain ASCII text into its integer representation.
func FromText(s string) String {
	if s == "" {
		return String{}
	}
	return String{value: new(big.Int).SetBytes([]byte(s))}
}

// IsZero reports whether the packed value is zero.
func (s String) IsZero() bool {
	return s.value == nil || s.value.Sign() == 0
}

// Big returns a copy of the packed integer. Zero for the zero value.
func (s String) Big() *big.Int {
	if s.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.value)
}

// Decode extracts the text content, most significant byte first, skipping
// embedded NUL bytes. A zero value decodes to "".
func (s String) Decode() string {
	if s.IsZero() {
		return ""
	}
	raw := s.value.Bytes()
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == 0 {
			continue
		}
		out = append(out, b)
	}
	return string(out)
}

// Fields splits decoded text on ASCII space, dropping empty words.
func Fields(s string) []string {
	parts := strings.Split(s, " ")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// MarshalJSON encodes the packed value as a quoted hex literal.
func (s String) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte(`"0x0"`), nil
	}
	return []byte(fmt.Sprintf(`"0x%s"`, s.value.Text(16))), nil
}

// UnmarshalJSON accepts a quoted hex (0x-prefixed) or decimal literal.
func (s *String) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "" || str == "null" {
		s.value = nil
		return nil
	}
	v := new(big.Int)
	var ok bool
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		_, ok = v.SetString(str[2:], 16)
	} else {
		_, ok = v.SetString(str, 10)
	}
	if !ok {
		return fmt.Errorf("shortstr: invalid packed string literal %q", str)
	}
	if v.Sign() < 0 {
		return fmt.Errorf("shortstr: packed string must be non-negative, got %q", str)
	}
	s.value = v
	return nil
}
