package hexutil

import (
	"errors"
)

var (
	// ErrBadHexCharacter is returned when a decode under the Throw policy
	// meets a character outside [0-9a-fA-F].
	ErrBadHexCharacter = errors.New("bad hex character")
	// ErrInvalidAddress is returned for checksum input that is not a
	// 40-hex-character address.
	ErrInvalidAddress = errors.New("invalid address")
)
