package bech32

import (
	"fmt"
	"math"
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to encode
// wordsLen words under a prefix of prefixLen bytes. It returns -1
// if either input is negative or the result would overflow.
func EncodedLength(prefixLen, wordsLen int) int {
	if prefixLen < 0 || wordsLen < 0 {
		return -1
	}

	if prefixLen > math.MaxInt-(1+checksumLen)-wordsLen {
		return -1
	}

	return prefixLen + 1 + wordsLen + checksumLen
}

func encodedLen(prefixLen, wordsLen int) int {
	result := EncodedLength(prefixLen, wordsLen)
	if result < 0 {
		panic("bech32: invalid encode source length")
	}

	return result
}

// encode appends the encoded form of prefix and words to dst.
//
// invariants:
//
// - prefix must not be empty and must already be lower case
func encode(dst []byte, prefix string, words []byte) ([]byte, error) {
	c, err := prefixChecksum(prefix)
	if err != nil {
		return dst, err
	}

	dst = append(dst, prefix...)
	dst = append(dst, separator)

	for i, w := range words {
		if w>>5 != 0 {
			return dst, fmt.Errorf("%w: index %d has value %d", ErrInvalidWord, i, w)
		}

		c = polymodStep(c) ^ uint32(w)
		dst = append(dst, encodeTab[w])
	}

	for range checksumLen {
		c = polymodStep(c)
	}
	c ^= bech32Const

	for i := range checksumLen {
		dst = append(dst, encodeTab[(c>>((checksumLen-1-i)*5))&31])
	}

	return dst, nil
}

// Encode returns the bech32 string for prefix and words. The prefix is
// lower cased and every word must be in [0,31].
//
// An error is returned if prefix is empty, if prefix contains a byte
// outside the printable range [33,126], or if a word does not fit in
// five bits.
func Encode(prefix string, words []byte) (string, error) {
	if prefix == "" {
		return "", ErrMissingPrefix
	}
	prefix = lowerASCII(prefix)

	dst := make([]byte, 0, encodedLen(len(prefix), len(words)))

	dst, err := encode(dst, prefix, words)
	if err != nil {
		return "", err
	}

	return unsafe.String(unsafe.SliceData(dst), len(dst)), nil
}

// AppendEncode returns the encoded form of prefix and words appended to
// dst.
//
// If an error is returned then dst is returned with its original length.
// Its spare capacity may have been written to.
func AppendEncode(dst []byte, prefix string, words []byte) ([]byte, error) {
	if prefix == "" {
		return dst, ErrMissingPrefix
	}
	prefix = lowerASCII(prefix)

	orig := len(dst)
	dst = slices.Grow(dst, encodedLen(len(prefix), len(words)))

	dst, err := encode(dst, prefix, words)
	if err != nil {
		return dst[:orig], err
	}

	return dst, nil
}

// EncodeBytes packs data into five bit words and encodes them under
// prefix.
func EncodeBytes(prefix string, data []byte) (string, error) {
	return Encode(prefix, ToWords(data))
}
