package bech32

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const hexPrefix = "0x"

// BytesToHex returns b as a 0x prefixed string of two lower case hex
// digits per byte.
func BytesToHex(b []byte) string {
	dst := make([]byte, len(hexPrefix)+hex.EncodedLen(len(b)))

	copy(dst, hexPrefix)
	hex.Encode(dst[len(hexPrefix):], b)

	return string(dst)
}

// HexToBytes parses a 0x prefixed hex string. An empty string yields an
// empty slice. An odd number of digits is treated as having a leading zero.
func HexToBytes(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	digits, ok := strings.CutPrefix(s, hexPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingHexPrefix, s)
	}

	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}

	return b, nil
}
