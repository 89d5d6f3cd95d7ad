package bigendian

import (
	"math/big"
)

// EncodeBig is the arbitrary-precision form of Encode. Negative values
// are a contract violation and panic.
func EncodeBig(v *big.Int, out []byte) {
	b := bigBytes(v)
	if len(b) > len(out) {
		b = b[len(b)-len(out):]
	}
	pad := len(out) - len(b)
	for i := 0; i < pad; i++ {
		out[i] = 0
	}
	copy(out[pad:], b)
}

// DecodeBig folds b most significant byte first into a non-negative
// arbitrary-precision value. No wraparound occurs.
func DecodeBig(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BytesRequiredBig is the arbitrary-precision form of BytesRequired.
func BytesRequiredBig(v *big.Int) int {
	if v.Sign() < 0 {
		panic("bigendian: negative value")
	}
	return (v.BitLen() + 7) / 8
}

// CompactBig is the arbitrary-precision form of Compact.
func CompactBig(v *big.Int, minLength int) []byte {
	n := BytesRequiredBig(v)
	if n < minLength {
		n = minLength
	}
	out := make([]byte, n)
	EncodeBig(v, out)
	return out
}

// FixedBig encodes v into a fresh buffer of exactly size bytes, for
// fixed-width quantities such as 256-bit words (size 32) or 160-bit
// addresses (size 20). Truncation and zero-fill follow Encode.
func FixedBig(v *big.Int, size int) []byte {
	out := make([]byte, size)
	EncodeBig(v, out)
	return out
}

func bigBytes(v *big.Int) []byte {
	if v.Sign() < 0 {
		panic("bigendian: negative value")
	}
	return v.Bytes()
}
