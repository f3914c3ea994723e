package phc

import "fmt"

type errKind uint8

const (
	kindTooLong errKind = iota + 1
	kindEmpty
	kindInvalidChar
)

// ParseError reports a value validation failure. It is a closed set of
// variants: ErrTooLong, ErrEmpty, and invalid-character errors built with
// InvalidChar. ParseError is comparable, so tests and callers can match
// with == or errors.Is.
type ParseError struct {
	kind errKind
	char rune
}

var (
	// ErrTooLong indicates text longer than MaxLength. The decimal
	// interpreter reuses it for values past the unsigned 32-bit range;
	// callers that match on it see both conditions.
	ErrTooLong = ParseError{kind: kindTooLong}

	// ErrEmpty indicates empty text where a decimal was expected.
	// An empty Value is otherwise legal.
	ErrEmpty = ParseError{kind: kindEmpty}
)

// InvalidChar returns the error for the first character that violates the
// rule in force: alphabet membership during construction, the digit-only
// and no-leading-zero rules during decimal interpretation.
func InvalidChar(c rune) ParseError {
	return ParseError{kind: kindInvalidChar, char: c}
}

func (e ParseError) Error() string {
	switch e.kind {
	case kindTooLong:
		return "phc: value too long"
	case kindEmpty:
		return "phc: value is empty"
	case kindInvalidChar:
		return fmt.Sprintf("phc: invalid character %q", e.char)
	default:
		return "phc: invalid value"
	}
}

// Char returns the offending character and true for an invalid-character
// error, and 0 and false for every other kind.
func (e ParseError) Char() (rune, bool) {
	if e.kind != kindInvalidChar {
		return 0, false
	}
	return e.char, true
}
