package bech32

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// MaxLengthBIP173 is the maximum string length BIP173 allows for
	// segwit addresses. Use it with DecodeLimit.
	MaxLengthBIP173 = 90

	// minEncodedLen covers a one byte prefix, the separator and the
	// checksum.
	minEncodedLen = 1 + 1 + checksumLen
)

// decode appends the words of s to dst.
//
// On error dst is returned with its original length.
func decode(dst []byte, s string) (string, []byte, error) {
	if isMixedCase(s) {
		return "", dst, fmt.Errorf("%w: %q", ErrMixedCase, s)
	}
	s = lowerASCII(s)

	if len(s) < minEncodedLen {
		return "", dst, fmt.Errorf("%w: %q", ErrTooShort, s)
	}

	split := strings.LastIndexByte(s, separator)
	switch split {
	case -1:
		return "", dst, fmt.Errorf("%w: %q", ErrNoSeparator, s)
	case 0:
		return "", dst, fmt.Errorf("%w: %q", ErrMissingPrefix, s)
	}

	prefix, data := s[:split], s[split+1:]
	if len(data) < checksumLen {
		return "", dst, fmt.Errorf("%w: %q", ErrDataTooShort, s)
	}

	c, err := prefixChecksum(prefix)
	if err != nil {
		return "", dst, err
	}

	n := len(data) - checksumLen
	orig := len(dst)
	dst = slices.Grow(dst, n)

	for i := range len(data) {
		v := decodeTab[data[i]]
		if v == b32Invalid {
			return "", dst[:orig], fmt.Errorf("%w: %q at position %d", ErrUnknownChar, data[i:i+1], split+1+i)
		}

		c = polymodStep(c) ^ uint32(v)

		// the last checksumLen symbols are not payload
		if i < n {
			dst = append(dst, v)
		}
	}

	if c != bech32Const {
		return "", dst[:orig], fmt.Errorf("%w: %q", ErrInvalidChecksum, s)
	}

	return prefix, dst, nil
}

// Decode validates s and returns its lower cased prefix and its payload
// words. The words slice is never nil when err is nil.
//
// s may be all lower case or all upper case but never mixed. No length
// limit is applied, see DecodeLimit.
func Decode(s string) (prefix string, words []byte, err error) {
	prefix, words, err = decode([]byte{}, s)
	if err != nil {
		return "", nil, err
	}

	return prefix, words, nil
}

// DecodeLimit is Decode with an upper bound on the length of s.
func DecodeLimit(s string, limit int) (string, []byte, error) {
	if len(s) > limit {
		return "", nil, fmt.Errorf("%w: length %d exceeds %d", ErrTooLong, len(s), limit)
	}

	return Decode(s)
}

// AppendDecode returns the prefix of s and the words of s appended to dst.
//
// If an error is returned then dst is returned with its original length.
// There is no guarantee about the contents of its spare capacity.
func AppendDecode(dst []byte, s string) (string, []byte, error) {
	return decode(dst, s)
}

// DecodeBytes decodes s and unpacks its words into bytes. Words that
// carry non-zero or excess padding bits are rejected.
func DecodeBytes(s string) (string, []byte, error) {
	prefix, words, err := Decode(s)
	if err != nil {
		return "", nil, err
	}

	data, err := FromWords(words)
	if err != nil {
		return "", nil, fmt.Errorf("decoding bech32 payload failed: %w", err)
	}

	return prefix, data, nil
}
