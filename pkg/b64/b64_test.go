package b64_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/phcformat/phc/pkg/b64"
)

func TestDecode(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 16)
	got, err := b64.Decode("aGVsbG8", buf)
	require.NoError(err)
	require.Equal([]byte("hello"), got)
}

func TestDecode_Empty(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 16)
	got, err := b64.Decode("", buf)
	require.NoError(err)
	require.Len(got, 0)
}

func TestDecode_RejectPadding(t *testing.T) {
	buf := make([]byte, 16)
	_, err := b64.Decode("aGVsbG8=", buf)
	require.ErrorIs(t, err, b64.ErrEncoding)
}

func TestDecode_RejectInvalidSymbol(t *testing.T) {
	buf := make([]byte, 16)
	_, err := b64.Decode("aGVs.bG8", buf)
	require.ErrorIs(t, err, b64.ErrEncoding)
}

func TestDecode_RejectNonCanonicalTrailingBits(t *testing.T) {
	// "aGVsbG9" would need its final symbol's low bits to be zero;
	// '9' carries set bits, so strict decoding refuses it.
	buf := make([]byte, 16)
	_, err := b64.Decode("aGVsbG9", buf)
	require.ErrorIs(t, err, b64.ErrEncoding)
}

func TestDecode_RejectImpossibleLength(t *testing.T) {
	// Length 1 mod 4 cannot occur in unpadded base64.
	buf := make([]byte, 16)
	_, err := b64.Decode("aGVsb", buf)
	require.ErrorIs(t, err, b64.ErrLength)
}

func TestDecode_OutputTooSmall(t *testing.T) {
	buf := make([]byte, 2)
	_, err := b64.Decode("aGVsbG8", buf)
	require.ErrorIs(t, err, b64.ErrOutputTooSmall)
}

func TestEncode(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 16)
	got, err := b64.Encode([]byte("hello"), buf)
	require.NoError(err)
	require.Equal("aGVsbG8", got)
}

func TestEncode_OutputTooSmall(t *testing.T) {
	buf := make([]byte, 2)
	_, err := b64.Encode([]byte("hello"), buf)
	require.ErrorIs(t, err, b64.ErrOutputTooSmall)
}

func TestEncodeToString(t *testing.T) {
	require.Equal(t, "aGVsbG8", b64.EncodeToString([]byte("hello")))
}

// Property: encode(x) -> decode() == x (round-trip)
func TestProperty_RoundTrip(t *testing.T) {
	property := func(data []byte) bool {
		enc := b64.EncodeToString(data)

		buf := make([]byte, b64.DecodedLen(len(enc)))
		dec, err := b64.Decode(enc, buf)
		if err != nil {
			t.Logf("decode failed: %v", err)
			return false
		}

		return bytes.Equal(dec, data)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
