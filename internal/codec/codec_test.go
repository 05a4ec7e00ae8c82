package codec

import (
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"empty", "", ""},
		{"runs", "3A2B", "AAABB"},
		{"literals", "ABC", "ABC"},
		{"mixed", "A3BC", "ABBBC"},
		{"zero run", "0AB", "B"},
		{"nine run", "9X", "XXXXXXXXX"},
		{"digit repeats digit", "33A", "333A"},
		{"one run", "1A1B", "AB"},
		{"multibyte symbol", "2é", "éé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		encoded string
		offset  int
		digit   rune
	}{
		{"3", 0, '3'},
		{"AB2", 2, '2'},
		{"3A3", 2, '3'},
		{"éé7", 2, '7'},
	}

	for _, tt := range tests {
		t.Run(tt.encoded, func(t *testing.T) {
			got, err := Decode(tt.encoded)
			require.Error(t, err)
			assert.Empty(t, got, "no partial result on malformed input")

			var me *MalformedError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.offset, me.Offset)
			assert.Equal(t, tt.digit, me.Digit)
			assert.True(t, errors.Is(err, ErrMalformedEncoding))
			assert.True(t, IsMalformed(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	tests := []struct {
		encoded string
		offset  int
		b       byte
	}{
		{"A\xff", 1, 0xff},
		{"A\xfe", 1, 0xfe},
		{"2\xff", 1, 0xff},
		{"é\xc3", 1, 0xc3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.encoded), func(t *testing.T) {
			got, err := Decode(tt.encoded)
			require.Error(t, err)
			assert.Empty(t, got)

			var me *MalformedError
			require.True(t, errors.As(err, &me))
			assert.True(t, me.InvalidUTF8)
			assert.Equal(t, tt.offset, me.Offset)
			assert.Equal(t, tt.b, me.Byte)
			assert.True(t, IsMalformed(err))
			assert.Contains(t, err.Error(), "invalid UTF-8")

			_, err = ExpandedLen(tt.encoded)
			assert.ErrorIs(t, err, ErrMalformedEncoding)
		})
	}
}

func TestDecode_ReplacementCharIsValid(t *testing.T) {
	got, err := Decode("2\uFFFD")
	require.NoError(t, err)
	assert.Equal(t, "\uFFFD\uFFFD", got)
}

func TestDecode_Deterministic(t *testing.T) {
	inputs := []string{"3A2B", "ABC", "9Z1Y0X", ""}
	for _, in := range inputs {
		first, err := Decode(in)
		require.NoError(t, err)
		second, err := Decode(in)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestExpandedLen_MatchesDecode(t *testing.T) {
	inputs := []string{"", "ABC", "3A2B", "0A0B", "9A9B9C", "1A2B3C4D", "XY5Z", "2é"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			n, err := ExpandedLen(in)
			require.NoError(t, err)
			decoded, err := Decode(in)
			require.NoError(t, err)
			assert.Equal(t, utf8.RuneCountInString(decoded), n)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("3A2B"))
	assert.NoError(t, Validate(""))
	assert.ErrorIs(t, Validate("AB9"), ErrMalformedEncoding)
}
