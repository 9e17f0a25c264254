package bech32

const (
	b32Invalid = 0xFF

	// Alphabet is the ordered set of 32 symbols a word value maps to.
	Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

//
// encode and decode tables are case insensitive on the decode side
//

var encodeTab, decodeTab = func() ([32]byte, [256]byte) {
	const lowToUp = ('a' - 'A')

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	for i := range Alphabet {
		i := byte(i)
		v := Alphabet[i]

		if dec[v] != b32Invalid {
			panic("bech32: ambiguous alphabet character")
		}

		enc[i] = v
		dec[v] = i
		if v >= 'a' && v <= 'z' {
			dec[v-lowToUp] = i
		}
	}

	return enc, dec
}()
