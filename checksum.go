package bech32

import "fmt"

const (
	separator = '1'

	// checksumLen is the count of trailing checksum symbols in an
	// encoded string.
	checksumLen = 6

	// bech32Const is xor-ed into the final checksum state. Bech32m uses
	// 0x2bc830a3 instead and would need a parallel variant.
	bech32Const = 1

	minPrefixChar = 33
	maxPrefixChar = 126
)

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymodStep multiplies the checksum state by x modulo the generator
// polynomial. Only the low 30 bits of c are significant.
func polymodStep(c uint32) uint32 {
	b := c >> 25

	return ((c & 0x1FFFFFF) << 5) ^
		(-((b >> 0) & 1) & generator[0]) ^
		(-((b >> 1) & 1) & generator[1]) ^
		(-((b >> 2) & 1) & generator[2]) ^
		(-((b >> 3) & 1) & generator[3]) ^
		(-((b >> 4) & 1) & generator[4])
}

// prefixChecksum returns the checksum state after folding in the expanded
// form of prefix: the high bits of every char, a zero, then the low five
// bits of every char.
//
// invariants:
//
// - prefix must already be lower case
func prefixChecksum(prefix string) (uint32, error) {
	c := uint32(1)

	for i := range len(prefix) {
		v := prefix[i]
		if v < minPrefixChar || v > maxPrefixChar {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
		}

		c = polymodStep(c) ^ uint32(v>>5)
	}

	c = polymodStep(c)

	for i := range len(prefix) {
		c = polymodStep(c) ^ uint32(prefix[i]&0x1f)
	}

	return c, nil
}

// isMixedCase reports whether s contains both upper and lower case ASCII
// letters.
func isMixedCase(s string) bool {
	var hasLower, hasUpper bool

	for i := range len(s) {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}

	return hasLower && hasUpper
}

// lowerASCII lower cases the ASCII letters of s. Other bytes pass through
// unchanged, unlike strings.ToLower which would rewrite invalid UTF-8.
func lowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	buf := []byte(s)
	for ; i < len(buf); i++ {
		if c := buf[i]; c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}

	return string(buf)
}
