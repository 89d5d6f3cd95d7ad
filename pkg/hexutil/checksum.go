package hexutil

import (
	"fmt"
	"strings"

	"github.com/eigerco/bramble/pkg/digest"
	"github.com/eigerco/bramble/pkg/log"
)

// addressHexLength is the number of hex characters in an address, not
// counting the optional "0x" prefix.
const addressHexLength = 40

// AddressChecksum derives and verifies the mixed-case rendering of an
// address whose letter cases encode bits of a digest of its lowercase
// form. A nil Digest means Keccak-256.
type AddressChecksum struct {
	Digest digest.Hasher
}

// Checksummed returns the canonical mixed-case rendering of addr, which
// must be exactly 40 hex characters after an optional "0x" prefix. The
// prefix, if present, is kept. Lowercasing the output recovers the
// lowercase form of the input, and the function is idempotent.
func (c AddressChecksum) Checksummed(addr string) (string, error) {
	s, prefixed := strings.CutPrefix(addr, "0x")
	if len(s) != addressHexLength {
		return "", fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidAddress, addressHexLength, len(s))
	}

	hash := c.hasher().Sum([]byte(strings.ToLower(s)))

	out := make([]byte, 0, len(addr))
	if prefixed {
		out = append(out, "0x"...)
	}
	for i := 0; i < addressHexLength; i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			out = append(out, ch)
			continue
		}
		if !isHexDigit(ch) {
			return "", fmt.Errorf("%w: bad character %q", ErrInvalidAddress, ch)
		}
		// One decision bit per letter: the nibble of the digest at the
		// letter's position selects upper or lower case.
		nibble := hash[i/2] >> (4 * (1 - i%2)) & 0xf
		if nibble >= 8 {
			out = append(out, ch&^0x20)
		} else {
			out = append(out, ch|0x20)
		}
	}
	return string(out), nil
}

// Passes reports whether s carries a valid checksum case pattern. When
// strict is false, strings using only one letter case are accepted
// without consulting the digest. Syntactically invalid input yields
// false, never an error.
func (c AddressChecksum) Passes(s string, strict bool) bool {
	hexPart, _ := strings.CutPrefix(s, "0x")
	if len(hexPart) != addressHexLength {
		return false
	}
	for i := 0; i < len(hexPart); i++ {
		if !isHexDigit(hexPart[i]) {
			return false
		}
	}

	if !strict &&
		(!strings.ContainsAny(hexPart, "abcdef") || !strings.ContainsAny(hexPart, "ABCDEF")) {
		return true
	}

	want, err := c.Checksummed(s)
	if err != nil {
		return false
	}
	if s != want {
		log.Codec.Debug().Str("address", s).Msg("address checksum mismatch")
		return false
	}
	return true
}

func (c AddressChecksum) hasher() digest.Hasher {
	if c.Digest != nil {
		return c.Digest
	}
	return digest.Keccak256{}
}

// ChecksummedAddress returns the mixed-case rendering of addr under the
// default Keccak-256 digest.
func ChecksummedAddress(addr string) (string, error) {
	return AddressChecksum{}.Checksummed(addr)
}

// PassesAddressChecksum verifies s under the default Keccak-256 digest.
func PassesAddressChecksum(s string, strict bool) bool {
	return AddressChecksum{}.Passes(s, strict)
}
