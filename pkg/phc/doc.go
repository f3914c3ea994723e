// Package phc implements the algorithm parameter value defined by the
// PHC string format.
//
// A PHC string encodes a password hash along with the algorithm that
// produced it and that algorithm's parameters:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
//
// Each parameter (m, t, p above) carries a value. The format restricts
// value text to the characters [a-zA-Z0-9/+.-] and this package further
// caps values at 48 characters, rounded up from the 43-character worst
// case of Argon2's largest B64-encoded field. Within those rules a value
// may be empty.
//
// # Basic Usage
//
// Validating text as a value:
//
//	v, err := phc.New("65536")
//
// Numeric parameters use the format's decimal encoding, a strict
// canonical form (no sign, no leading zeros, unsigned 32-bit range):
//
//	m, err := v.Decimal() // 65536
//
// Binary parameters are B64 (unpadded base64); decode into a buffer you
// supply:
//
//	buf := make([]byte, b64.DecodedLen(v.Len()))
//	raw, err := v.B64Decode(buf)
//
// # Design Principles
//
//   - Zero-copy: a Value wraps the caller's string without copying or
//     normalizing it. String() returns the exact input text.
//   - Single pass: every check is one left-to-right scan that stops at
//     the first violation.
//   - Immutable: a Value never changes after construction, so it is safe
//     to share across goroutines without synchronization.
//   - No caching: Decimal and IsDecimal re-parse on every call.
//
// # Errors
//
// All validation failures are ParseError values: ErrTooLong, ErrEmpty,
// or the result of InvalidChar. ParseError is comparable, so errors.Is
// and == both work. B64Decode reports the transcoder's own errors (see
// package b64) unchanged.
package phc
