// Package bigendian converts unsigned integers to and from big-endian
// byte sequences, in fixed-length and compact (minimal-length) forms.
package bigendian

// Unsigned constrains the value types accepted by the fixed-width
// functions. Signed types are rejected at compile time; values wider than
// 64 bits go through the *big.Int variants.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Encode writes x into out, most significant byte first. The length of
// out is preserved: high-order bits that do not fit are silently dropped,
// and leading bytes beyond what x needs are zeroed.
func Encode[T Unsigned](x T, out []byte) {
	for i := len(out); i != 0; i-- {
		out[i-1] = byte(x)
		x >>= 8
	}
}

// Decode folds b most significant byte first into a value of type T.
// Input longer than the width of T wraps around following T's native
// overflow semantics.
func Decode[T Unsigned](b []byte) T {
	var v T
	for _, c := range b {
		v = v<<8 | T(c)
	}
	return v
}

// BytesRequired returns the minimal number of bytes needed to represent x
// with no leading zero byte. It returns 0 only for x == 0.
func BytesRequired[T Unsigned](x T) int {
	n := 0
	for ; x != 0; x >>= 8 {
		n++
	}
	return n
}

// Compact returns the minimal big-endian encoding of x, left-padded with
// zero bytes up to minLength.
func Compact[T Unsigned](x T, minLength int) []byte {
	n := BytesRequired(x)
	if n < minLength {
		n = minLength
	}
	out := make([]byte, n)
	Encode(x, out)
	return out
}
