package codec

import (
	"errors"
	"fmt"
)

// ErrMalformedEncoding is the sentinel matched by every *MalformedError.
var ErrMalformedEncoding = errors.New("malformed encoding")

// MalformedError reports input that is not a valid formula: a digit with
// no symbol after it, or a byte that is not valid UTF-8.
type MalformedError struct {
	// Offset is the symbol index of the offending token. An invalid byte
	// counts as one symbol.
	Offset int

	// Digit is the count that had no symbol to repeat.
	Digit rune

	// InvalidUTF8 is set when Byte does not start a valid UTF-8 sequence.
	InvalidUTF8 bool
	Byte        byte
}

func (e *MalformedError) Error() string {
	if e.InvalidUTF8 {
		return fmt.Sprintf("malformed encoding: invalid UTF-8 byte %#02x at offset %d", e.Byte, e.Offset)
	}
	return fmt.Sprintf("malformed encoding: digit %q at offset %d has no symbol", e.Digit, e.Offset)
}

// Is makes errors.Is(err, ErrMalformedEncoding) succeed for wrapped values.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedEncoding
}

// IsMalformed reports whether err is, or wraps, a malformed encoding error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedEncoding)
}
