// Package hexutil converts between byte sequences and hexadecimal text,
// including the mixed-case checksum rendering used for addresses.
package hexutil

import (
	"fmt"
	"strings"
)

// WhenError selects how decode operations treat invalid hex characters.
type WhenError uint8

const (
	// DontThrow substitutes zero for invalid characters and continues.
	DontThrow WhenError = iota
	// Throw reports invalid characters as an error.
	Throw
)

// Prefix controls the leading "0x" marker on encoded output.
type Prefix uint8

const (
	NoPrefix Prefix = iota
	WithPrefix
)

// Case selects the letter case of encoded output.
type Case uint8

const (
	Lower Case = iota
	Upper
	// Mixed alternates case every four hex characters, by descending byte
	// index. Only meaningful for multi-byte output.
	Mixed
)

const (
	lowerHexChars = "0123456789abcdef"
	upperHexChars = "0123456789ABCDEF"
)

// FromByte renders a single byte as two hex characters. Mixed case is
// defined over whole byte slices and falls back to lowercase here.
func FromByte(b byte, c Case) string {
	chars := lowerHexChars
	if c == Upper {
		chars = upperHexChars
	}
	return string([]byte{chars[b>>4], chars[b&0xf]})
}

// Encode renders data as a string of hex duplets, optionally with a "0x"
// prefix and with uppercase or mixed-case hex letters.
func Encode(data []byte, p Prefix, c Case) string {
	var sb strings.Builder
	sb.Grow(len(data)*2 + 2)
	if p == WithPrefix {
		sb.WriteString("0x")
	}

	chars := lowerHexChars
	if c == Upper {
		chars = upperHexChars
	}
	rix := len(data) - 1
	for _, b := range data {
		if c == Mixed {
			// switch hex case every four hexchars
			if rix&2 == 0 {
				chars = lowerHexChars
			} else {
				chars = upperHexChars
			}
			rix--
		}
		sb.WriteByte(chars[b>>4])
		sb.WriteByte(chars[b&0xf])
	}
	return sb.String()
}

// DigitValue maps one printable hex character to its value in [0,15].
// Under Throw an invalid character yields ErrBadHexCharacter; under
// DontThrow it yields 0 with a nil error.
func DigitValue(c byte, onErr WhenError) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, nil
	}
	if onErr == Throw {
		return 0, fmt.Errorf("%w: %q", ErrBadHexCharacter, c)
	}
	return 0, nil
}

// Decode converts hex text to bytes, accepting an optional "0x" prefix.
// Characters pair up from the front; the trailing lone character of an
// odd-length input becomes the low nibble of a final byte. Under
// DontThrow invalid characters decode as zero and the returned error is
// always nil.
func Decode(s string, onErr WhenError) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")

	out := make([]byte, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		hi, err := DigitValue(s[i], onErr)
		if err != nil {
			return nil, err
		}
		if i+1 == len(s) {
			out = append(out, byte(hi))
			break
		}
		lo, err := DigitValue(s[i+1], onErr)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(hi<<4|lo))
	}
	return out, nil
}

// IsValidHex reports whether s is "0x" followed by hex digits only.
func IsValidHex(s string) bool {
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsValidDecimal reports whether s is a canonical base-10 number: "0", or
// digits with no leading zero.
func IsValidDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	// No leading zeros
	if s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
