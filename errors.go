package bech32

import "errors"

// Malformed input values.
var (
	ErrInvalidPrefix   = errors.New("invalid bech32 prefix")
	ErrInvalidWord     = errors.New("bech32 word out of range")
	ErrValueOutOfRange = errors.New("value exceeds input bit width")
)

// Structural decode failures.
var (
	ErrMixedCase     = errors.New("mixed-case bech32 string")
	ErrTooShort      = errors.New("bech32 string too short")
	ErrTooLong       = errors.New("bech32 string too long")
	ErrNoSeparator   = errors.New("no bech32 separator character")
	ErrMissingPrefix = errors.New("missing bech32 prefix")
	ErrDataTooShort  = errors.New("bech32 data too short")
	ErrUnknownChar   = errors.New("unknown bech32 character")
)

var ErrInvalidChecksum = errors.New("invalid bech32 checksum")

// Strict bit conversion failures.
var (
	ErrExcessPadding  = errors.New("excess padding")
	ErrNonZeroPadding = errors.New("non-zero padding")
)

var (
	ErrMissingHexPrefix = errors.New("hex string should start with 0x")
	ErrInvalidHex       = errors.New("invalid hex string")
)
