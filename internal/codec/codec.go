package codec

import (
	"strings"
	"unicode/utf8"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// next reads the symbol starting at byte i of s. pos is its symbol index,
// used for error offsets.
func next(s string, i, pos int) (rune, int, error) {
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size == 1 {
		return 0, 0, &MalformedError{Offset: pos, Byte: s[i], InvalidUTF8: true}
	}
	return r, size, nil
}

// scan walks encoded token by token, calling emit with each symbol and
// its repeat count.
func scan(encoded string, emit func(sym rune, count int)) error {
	pos := 0
	for i := 0; i < len(encoded); {
		r, size, err := next(encoded, i, pos)
		if err != nil {
			return err
		}
		i += size
		if !isDigit(r) {
			emit(r, 1)
			pos++
			continue
		}
		if i >= len(encoded) {
			return &MalformedError{Offset: pos, Digit: r}
		}
		sym, symSize, err := next(encoded, i, pos+1)
		if err != nil {
			return err
		}
		i += symSize
		emit(sym, int(r-'0'))
		pos += 2
	}
	return nil
}

// Decode expands encoded into its literal symbol sequence.
// The empty string decodes to the empty string.
func Decode(encoded string) (string, error) {
	var b strings.Builder
	b.Grow(len(encoded))

	err := scan(encoded, func(sym rune, count int) {
		for j := 0; j < count; j++ {
			b.WriteRune(sym)
		}
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Validate checks that encoded is well-formed without building the output.
func Validate(encoded string) error {
	_, err := ExpandedLen(encoded)
	return err
}

// ExpandedLen returns the number of symbols Decode would produce for encoded.
func ExpandedLen(encoded string) (int, error) {
	n := 0
	if err := scan(encoded, func(_ rune, count int) { n += count }); err != nil {
		return 0, err
	}
	return n, nil
}
