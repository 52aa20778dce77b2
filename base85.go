// Package base85 encodes and decodes the RFC1924 variant of Base85.
//
// This is not the ASCII85 / Z85 flavour: the alphabet is 0-9, A-Z, a-z followed by
// !#$%&()*+-;<=>?@^_`{|}~ and trailing groups are never padded. Every 4 bytes are
// encoded into 5 characters; the last n (1-3) bytes into n+1 characters.
//
// When decoding, spaces are ignored. Any other character outside of the alphabet,
// including tabs and newlines, makes the whole call fail with ErrInvalidSymbol.
package base85

import (
	"github.com/bokysan/base85/internal/util/enc"
)

// StdEncoder is the RFC1924 codec used by Encode and Decode.
var StdEncoder enc.Encoder = &enc.Base85Encoder{}

// ErrInvalidSymbol is the cause of every error returned by Decode. Use errors.Is to check for it.
var ErrInvalidSymbol = enc.ErrInvalidSymbol

// Encode returns the Base85 encoding of src. It never fails.
func Encode(src []byte) string {
	return StdEncoder.Encode(src)
}

// Decode returns the bytes represented by the Base85 string s. No partial result is
// returned on error.
func Decode(s string) ([]byte, error) {
	return StdEncoder.Decode(s)
}

// EncodedLen returns the length in characters of the encoding of n bytes.
func EncodedLen(n int) int {
	return enc.EncodedLen(n)
}

// DecodedLen returns the length in bytes of the decoding of n characters, spaces excluded.
func DecodedLen(n int) int {
	return enc.DecodedLen(n)
}
