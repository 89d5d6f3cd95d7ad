package hexutil

import (
	"math/big"
)

// Values up to this size read better in decimal.
var decimalThreshold = big.NewInt(0x1000000)

// CompactHex renders v as "0x"-prefixed lowercase hex of its compact
// big-endian encoding, at least one byte long. v must not be negative.
func CompactHex(v *big.Int) string {
	if v.Sign() < 0 {
		panic("hexutil: negative value")
	}
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return Encode(b, WithPrefix, Lower)
}

// FormatNumber renders small values in decimal and large ones as compact
// prefixed hex.
func FormatNumber(v *big.Int) string {
	if v.Sign() < 0 {
		return "-" + FormatNumber(new(big.Int).Neg(v))
	}
	if v.Cmp(decimalThreshold) > 0 {
		return CompactHex(v)
	}
	return v.String()
}

// FormatAsStringOrNumber returns v quoted when it is printable ASCII of
// at most 32 bytes, and otherwise the hex rendering of its left-aligned
// 32-byte padding.
func FormatAsStringOrNumber(v string) string {
	if len(v) <= 32 {
		for i := 0; i < len(v); i++ {
			c := v[i]
			if c <= 0x1f || c >= 0x7f || c == '"' {
				padded := make([]byte, 32)
				copy(padded, v)
				return Encode(padded, WithPrefix, Lower)
			}
		}
	}
	return "\"" + v + "\""
}
