package bech32

import "fmt"

// This converter rejects strict inputs that contain non-canonical tail bits
// that are non-zero, the same way the decoder of a fixed width encoding
// would. It is unsafe to assume those bits are noise as they may indicate a
// truncated or corrupted payload.

// convertedLen returns the number of outBits wide groups produced from n
// inBits wide values, including a final padded group.
func convertedLen(n int, inBits, outBits uint8) int {
	total := n * int(inBits)

	return (total + int(outBits) - 1) / int(outBits)
}

// ConvertBits regroups data from inBits wide values into outBits wide
// values, most significant bit first.
//
// If pad is true any leftover bits are emitted as a final group filled with
// zero bits on the low end. If pad is false, leftover bits must be fewer
// than inBits and must all be zero.
//
// The returned slice is never nil when the error is nil.
//
// invariants:
//
// - inBits and outBits must be in [1,8]
func ConvertBits(data []byte, inBits, outBits uint8, pad bool) ([]byte, error) {
	if inBits < 1 || inBits > 8 || outBits < 1 || outBits > 8 {
		panic("bech32: invalid bit width")
	}

	// only the low inBits+outBits-1 bits of acc are ever read
	var acc uint32
	var bits uint8
	maxV := uint32(1)<<outBits - 1

	result := make([]byte, 0, convertedLen(len(data), inBits, outBits))

	for i, v := range data {
		if uint32(v)>>inBits != 0 {
			return nil, fmt.Errorf("%w: index %d has value %d which does not fit %d bits", ErrValueOutOfRange, i, v, inBits)
		}

		acc = acc<<inBits | uint32(v)
		bits += inBits

		for bits >= outBits {
			bits -= outBits
			result = append(result, byte((acc>>bits)&maxV))
		}
	}

	if pad {
		if bits > 0 {
			result = append(result, byte((acc<<(outBits-bits))&maxV))
		}

		return result, nil
	}

	if bits >= inBits {
		return nil, ErrExcessPadding
	}

	if (acc<<(outBits-bits))&maxV != 0 {
		return nil, ErrNonZeroPadding
	}

	return result, nil
}

// ToWords packs bytes into five bit words. The final word is zero padded.
func ToWords(data []byte) []byte {
	words, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		// every byte fits in 8 bits and padding never fails
		panic("bech32: unreachable: " + err.Error())
	}

	return words
}

// FromWords unpacks five bit words into bytes. Padding must be canonical,
// so FromWords(ToWords(b)) always equals b.
func FromWords(words []byte) ([]byte, error) {
	return ConvertBits(words, 5, 8, false)
}
