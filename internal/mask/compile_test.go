package mask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(slots []Slot) []Kind {
	out := make([]Kind, len(slots))
	for i, s := range slots {
		out[i] = s.Kind()
	}
	return out
}

func TestCompile_PhonePattern(t *testing.T) {
	slots, err := Compile("(###) ###-####", '_')
	require.NoError(t, err)
	require.Len(t, slots, 14)

	assert.Equal(t, "(___) ___-____", render(slots))
	assert.Equal(t, 10, Capacity(slots))

	lit, ok := slots[0].Literal()
	assert.True(t, ok)
	assert.Equal(t, '(', lit)
	assert.Equal(t, Digit, slots[1].Kind())
	assert.False(t, slots[1].Filled())
	assert.True(t, slots[4].Filled(), "literal slots are always filled")
}

func TestCompile_AllMarkers(t *testing.T) {
	slots, err := Compile("#?AHUL*x", '_')
	require.NoError(t, err)

	assert.Equal(t,
		[]Kind{Digit, Letter, AlphaNumeric, Hex, UpperLetter, LowerLetter, Any, Literal},
		kinds(slots))
	assert.Equal(t, "_______x", render(slots))
}

func TestCompile_EscapeMakesMarkersLiteral(t *testing.T) {
	slots, err := Compile("'#123", '_')
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for _, s := range slots {
		assert.True(t, s.IsLiteral())
	}
	assert.Equal(t, "#123", render(slots))
	assert.Equal(t, 0, Capacity(slots), "no digit-accepting slots")
}

func TestCompile_EscapedEscape(t *testing.T) {
	slots, err := Compile("''#", '_')
	require.NoError(t, err)

	assert.Equal(t, []Kind{Literal, Digit}, kinds(slots))
	assert.Equal(t, "'_", render(slots))
}

func TestCompile_TrailingEscape(t *testing.T) {
	slots, err := Compile("##'", '_')
	require.Error(t, err)
	assert.Nil(t, slots)
	assert.True(t, errors.Is(err, ErrMalformedMask))

	var mErr *MalformedMaskError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "##'", mErr.Pattern)
	assert.Equal(t, 2, mErr.Offset)
}

func TestCompile_EmptyPattern(t *testing.T) {
	slots, err := Compile("", '_')
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCompile_MultibyteLiterals(t *testing.T) {
	slots, err := Compile("№##·#", '_')
	require.NoError(t, err)

	assert.Len(t, slots, 5, "one slot per rune, not per byte")
	assert.Equal(t, "№__·_", render(slots))
}
