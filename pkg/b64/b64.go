// Package b64 implements the B64 encoding used by the PHC string format
// for binary fields: standard-alphabet base64 ([A-Za-z0-9+/]) with the
// padding characters omitted.
//
// Decoding is strict. Whitespace, padding, a length of 1 mod 4, and
// non-canonical trailing bits are all rejected. Decode writes into a
// caller-supplied buffer so that callers control allocation:
//
//	buf := make([]byte, b64.DecodedLen(len(s)))
//	raw, err := b64.Decode(s, buf)
package b64

import (
	"encoding/base64"
	"errors"
)

// Sentinel errors
var (
	// ErrEncoding indicates a symbol outside the B64 alphabet or
	// non-canonical trailing bits.
	ErrEncoding = errors.New("b64: invalid encoding")

	// ErrLength indicates input whose length is impossible for unpadded
	// base64 (1 mod 4).
	ErrLength = errors.New("b64: invalid length")

	// ErrOutputTooSmall indicates a destination buffer shorter than the
	// decoded or encoded result.
	ErrOutputTooSmall = errors.New("b64: output buffer too small")
)

var raw = base64.RawStdEncoding.Strict()

// DecodedLen returns the number of bytes n characters of B64 decode to.
func DecodedLen(n int) int {
	return raw.DecodedLen(n)
}

// EncodedLen returns the number of characters n bytes encode to.
func EncodedLen(n int) int {
	return raw.EncodedLen(n)
}

// Decode decodes B64 text into buf and returns the prefix of buf that
// was written.
func Decode(src string, buf []byte) ([]byte, error) {
	if len(src)%4 == 1 {
		return nil, ErrLength
	}
	if DecodedLen(len(src)) > len(buf) {
		return nil, ErrOutputTooSmall
	}
	n, err := raw.Decode(buf, []byte(src))
	if err != nil {
		return nil, ErrEncoding
	}
	return buf[:n], nil
}

// Encode encodes src into buf and returns the encoded text as a string.
func Encode(src, buf []byte) (string, error) {
	n := EncodedLen(len(src))
	if n > len(buf) {
		return "", ErrOutputTooSmall
	}
	raw.Encode(buf, src)
	return string(buf[:n]), nil
}

// EncodeToString returns the B64 encoding of src.
func EncodeToString(src []byte) string {
	return raw.EncodeToString(src)
}
