package phc

import (
	"github.com/phcformat/phc/pkg/b64"
)

// Decimal is the numeric interpretation of a parameter value: a
// non-negative integer in the unsigned 32-bit range.
type Decimal = uint32

// MaxLength is the maximum length of a Value in bytes.
//
// The PHC format lets each algorithm define its own per-parameter
// maximum; in the interest of interoperability this package uses a
// single cap of 48, rounded up from the 43-character worst case of
// Argon2's B64-encoded data parameter.
const MaxLength = 48

// validChar marks the bytes permitted in a parameter value:
// [a-zA-Z0-9/+.-], per the PHC string format.
var validChar [128]bool

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		validChar[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		validChar[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		validChar[c] = true
	}
	validChar['/'] = true
	validChar['+'] = true
	validChar['.'] = true
	validChar['-'] = true
}

// Value is an algorithm parameter value: text of at most MaxLength bytes
// drawn from [a-zA-Z0-9/+.-]. The zero Value is the empty value, which
// is legal.
//
// A Value wraps the string it was constructed from without copying it.
// It is immutable and comparable; two Values over equal text are equal.
type Value struct {
	s string
}

// New parses a Value from s.
//
// Length is checked before character validity, so over-length text
// reports ErrTooLong even when it also contains characters outside the
// alphabet. Valid text is wrapped as-is, with no copying or
// normalization.
func New(s string) (Value, error) {
	if len(s) > MaxLength {
		return Value{}, ErrTooLong
	}
	for _, c := range s {
		if c >= 128 || !validChar[c] {
			return Value{}, InvalidChar(c)
		}
	}
	return Value{s: s}, nil
}

// String returns the value's exact text. It is the fmt.Stringer
// rendering: no quoting, no escaping.
func (v Value) String() string {
	return v.s
}

// Bytes returns the value's text as bytes. Unlike String this allocates
// a copy, since Go strings cannot alias their backing bytes.
func (v Value) Bytes() []byte {
	return []byte(v.s)
}

// Len returns the length of the value in bytes. The alphabet is ASCII,
// so this is also its length in characters.
func (v Value) Len() int {
	return len(v.s)
}

// IsEmpty reports whether the value is empty.
func (v Value) IsEmpty() bool {
	return len(v.s) == 0
}

// B64Decode decodes the value as B64 (unpadded base64, the encoding used
// for binary parameters such as Argon2's keyid and data), writing into
// buf and returning the prefix of buf that was written.
//
// Construction guarantees only the value alphabet, which is a superset
// of the B64 alphabet, so this can still fail: errors are the
// transcoder's own (b64.ErrLength, b64.ErrEncoding,
// b64.ErrOutputTooSmall), passed through unchanged.
func (v Value) B64Decode(buf []byte) ([]byte, error) {
	return b64.Decode(v.s, buf)
}

// Decimal interprets the value under the format's decimal encoding.
//
// The encoding is a strict canonical form: at least one character, ASCII
// digits only, and no leading zero unless the value is exactly "0".
// A leading minus sign is rejected as an invalid character; this
// interpreter produces only unsigned results even though the format's
// general decimal grammar admits negative integers.
//
// Values past the unsigned 32-bit range report ErrTooLong, the same
// error kind as over-length text.
func (v Value) Decimal() (Decimal, error) {
	s := v.s

	if len(s) == 0 {
		return 0, ErrEmpty
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, InvalidChar(c)
		}
	}

	if s[0] == '0' && len(s) > 1 {
		return 0, InvalidChar('0')
	}

	// All digits from here on. Accumulate in 64 bits and bound-check
	// each step; the check keeps n small enough that the next step
	// cannot wrap.
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
		if n > 1<<32-1 {
			return 0, ErrTooLong
		}
	}
	return Decimal(n), nil
}

// IsDecimal reports whether Decimal would succeed. It re-parses on every
// call; nothing is cached.
func (v Value) IsDecimal() bool {
	_, err := v.Decimal()
	return err == nil
}
