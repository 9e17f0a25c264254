// Package bech32 implements the Bech32 encoding described in BIP173.
//
// A bech32 string is a human readable prefix, the separator '1', a payload
// of five bit words and a six symbol BCH checksum. Within 90 characters the
// checksum detects any error affecting up to four symbols. Strings are case
// insensitive but never mixed case.
//
// Encode and Decode work on words. EncodeBytes and DecodeBytes regroup
// 8-bit data through ToWords and FromWords. BytesToHex and HexToBytes
// convert 0x prefixed hex at the boundary.
//
// Only the original Bech32 checksum constant is supported. Bech32m and
// witness version framing are out of scope.
package bech32
