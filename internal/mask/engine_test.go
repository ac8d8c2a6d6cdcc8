package mask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, pattern string, opts ...Option) *Engine {
	t.Helper()
	e, err := New(pattern, opts...)
	require.NoError(t, err)
	return e
}

func TestNew_EmptyField(t *testing.T) {
	e := newEngine(t, "(###) ###-####")

	assert.Equal(t, "(___) ___-____", e.DisplayText())
	assert.Equal(t, "", e.LogicalText())
	assert.Equal(t, "(###) ###-####", e.Mask())
	assert.Equal(t, '_', e.Placeholder())
	assert.Equal(t, 14, e.Len())
	assert.Equal(t, 10, e.Capacity())
	assert.False(t, e.IsComplete())
}

func TestNew_MalformedMask(t *testing.T) {
	e, err := New("##'")
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrMalformedMask)
}

func TestSetLogicalText_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		mask        string
		input       string
		wantDisplay string
		wantLogical string
	}{
		{"phone", "(###) ###-####", "5551234567", "(555) 123-4567", "5551234567"},
		{"upper letters", "UU-##", "ab1", "AB-1_", "AB1"},
		{"lower letters", "LL", "Xy", "xy", "xy"},
		{"rejected rune dropped", "###", "1a2", "12_", "12"},
		{"pasted separators dropped", "(###) ###-####", "(555) 123-4567", "(555) 123-4567", "5551234567"},
		{"truncated past capacity", "##-##", "123456", "12-34", "1234"},
		{"hex", "HH:HH", "0aZfF", "0a:fF", "0afF"},
		{"any", "**", "-+", "-+", "-+"},
		{"all rejected", "???", "123", "___", ""},
		{"escaped literal", "'#####", "42x7", "#427_", "427"},
		{"empty", "##", "", "__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.mask)
			res := e.SetLogicalText(tt.input)

			assert.Equal(t, tt.wantDisplay, res.Display)
			assert.Equal(t, tt.wantLogical, res.Logical)
			assert.Equal(t, tt.wantDisplay, e.DisplayText())
			assert.Equal(t, tt.wantLogical, e.LogicalText())
		})
	}
}

func TestWithText_ValidatedOnConstruction(t *testing.T) {
	e := newEngine(t, "###", WithText("abc"))
	assert.Equal(t, "___", e.DisplayText())
	assert.Equal(t, "", e.LogicalText())
}

func TestReplaceText_Insert(t *testing.T) {
	e := newEngine(t, "(###) ###-####")

	res, err := e.ReplaceText(0, 0, "555")
	require.NoError(t, err)
	assert.Equal(t, "(555) ___-____", res.Display)
	assert.Equal(t, 4, res.Caret, "caret lands right after the third digit")

	res, err = e.ReplaceText(res.Caret, res.Caret, "1234567")
	require.NoError(t, err)
	assert.Equal(t, "(555) 123-4567", res.Display)
	assert.Equal(t, "5551234567", res.Logical)
	assert.Equal(t, 14, res.Caret)
	assert.True(t, e.IsComplete())
}

func TestReplaceText_InsertMiddle(t *testing.T) {
	e := newEngine(t, "#####", WithText("1245"))

	res, err := e.ReplaceText(2, 2, "3")
	require.NoError(t, err)
	assert.Equal(t, "12345", res.Display)
	assert.Equal(t, 3, res.Caret)
}

func TestReplaceText_RejectedRunesDoNotAdvanceCaret(t *testing.T) {
	e := newEngine(t, "###")

	res, err := e.ReplaceText(0, 0, "1a2")
	require.NoError(t, err)
	assert.Equal(t, "12_", res.Display)
	assert.Equal(t, "12", res.Logical)
	assert.Equal(t, 2, res.Caret)
}

func TestReplaceText_IntoPlaceholderRun(t *testing.T) {
	e := newEngine(t, "###-###", WithText("12"))

	// Clicking into the second group still appends after the real content.
	res, err := e.ReplaceText(5, 5, "9")
	require.NoError(t, err)
	assert.Equal(t, "129-___", res.Display)
	assert.Equal(t, 3, res.Caret)
}

func TestReplaceText_ReplaceRange(t *testing.T) {
	e := newEngine(t, "(###) ###-####", WithText("5551234567"))

	res, err := e.ReplaceText(1, 4, "999")
	require.NoError(t, err)
	assert.Equal(t, "(999) 123-4567", res.Display)
	assert.Equal(t, "9991234567", res.Logical)
	assert.Equal(t, 4, res.Caret)
}

func TestReplaceText_Overflow(t *testing.T) {
	e := newEngine(t, "##-##", WithText("123"))

	res, err := e.ReplaceText(0, 0, "98")
	require.NoError(t, err)
	assert.Equal(t, "98-12", res.Display)
	assert.Equal(t, "9812", res.Logical, "surplus input is dropped without error")
	assert.Equal(t, 2, res.Caret)

	res, err = e.ReplaceText(5, 5, "7")
	require.NoError(t, err)
	assert.Equal(t, "98-12", res.Display)
	assert.Equal(t, 5, res.Caret)
}

func TestReplaceText_EmptyInsertIsNoop(t *testing.T) {
	e := newEngine(t, "##-##", WithText("12"))

	res, err := e.ReplaceText(1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "12-__", res.Display)
	assert.Equal(t, 1, res.Caret)
}

func TestDeleteText_SpanningLiteralAndFilledSlot(t *testing.T) {
	e := newEngine(t, "(###) ###-####", WithText("5551234567"))

	// [9:11) covers the '-' literal and the first digit of the last group.
	res, err := e.DeleteText(9, 11)
	require.NoError(t, err)
	assert.Equal(t, "(555) 123-567_", res.Display)
	assert.Equal(t, "555123567", res.Logical)
	assert.Equal(t, 9, res.Caret, "caret returns to the display start")
}

func TestDeleteText_Backspace(t *testing.T) {
	e := newEngine(t, "##/##", WithText("1234"))

	res, err := e.DeleteText(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "13/4_", res.Display)
	assert.Equal(t, 1, res.Caret)
}

func TestDeleteText_OnlyLiterals(t *testing.T) {
	e := newEngine(t, "(###) ###", WithText("123456"))

	res, err := e.DeleteText(4, 6)
	require.NoError(t, err)
	assert.Equal(t, "(123) 456", res.Display)
	assert.Equal(t, "123456", res.Logical)
}

func TestEdits_IndexRangeErrors(t *testing.T) {
	e := newEngine(t, "##-##", WithText("12"))

	ranges := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 0},
		{"start after end", 3, 2},
		{"end past length", 0, 6},
	}

	for _, r := range ranges {
		t.Run(r.name, func(t *testing.T) {
			_, err := e.ReplaceText(r.start, r.end, "9")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIndexRange))

			var rErr *IndexRangeError
			require.True(t, errors.As(err, &rErr))
			assert.Equal(t, r.start, rErr.Start)
			assert.Equal(t, r.end, rErr.End)
			assert.Equal(t, 5, rErr.Length)

			_, err = e.DeleteText(r.start, r.end)
			assert.ErrorIs(t, err, ErrIndexRange)

			assert.ErrorIs(t, e.SetSelection(r.start, r.end), ErrIndexRange)

			assert.Equal(t, "12-__", e.DisplayText(), "no mutation on error")
			assert.Equal(t, "12", e.LogicalText())
		})
	}
}

func TestReplaceSelection(t *testing.T) {
	e := newEngine(t, "##-##")

	require.NoError(t, e.SetSelection(0, 0))
	res, err := e.ReplaceSelection("12")
	require.NoError(t, err)
	assert.Equal(t, "12-__", res.Display)
	assert.Equal(t, Range{Start: 2, End: 2}, e.Selection())

	res, err = e.ReplaceSelection("3")
	require.NoError(t, err)
	assert.Equal(t, "12-3_", res.Display)
	assert.Equal(t, 4, e.Caret())

	require.NoError(t, e.SetSelection(0, 2))
	res, err = e.ReplaceSelection("")
	require.NoError(t, err)
	assert.Equal(t, "3_-__", res.Display)
	assert.Equal(t, 0, res.Caret)
	assert.True(t, e.Selection().IsEmpty())
}

func TestSetMask_RevalidatesContent(t *testing.T) {
	e := newEngine(t, "(###) ###-####", WithText("5551234567"))

	res, err := e.SetMask("###-####")
	require.NoError(t, err)
	assert.Equal(t, "555-1234", res.Display)
	assert.Equal(t, "5551234", res.Logical)
	assert.Equal(t, "###-####", e.Mask())

	res, err = e.SetMask("???")
	require.NoError(t, err)
	assert.Equal(t, "___", res.Display)
	assert.Equal(t, "", res.Logical)
}

func TestSetMask_MalformedKeepsState(t *testing.T) {
	e := newEngine(t, "##-##", WithText("12"))

	_, err := e.SetMask("##'")
	require.ErrorIs(t, err, ErrMalformedMask)

	assert.Equal(t, "##-##", e.Mask())
	assert.Equal(t, "12-__", e.DisplayText())
	assert.Equal(t, "12", e.LogicalText())
}

func TestSetPlaceholder_OnlyRewritesEmptySlots(t *testing.T) {
	e := newEngine(t, "##-##", WithText("12"))

	res := e.SetPlaceholder('.')
	assert.Equal(t, "12-..", res.Display)
	assert.Equal(t, "12", res.Logical)
	assert.Equal(t, '.', e.Placeholder())

	e.SetLogicalText("9")
	assert.Equal(t, "9.-..", e.DisplayText())
}

func TestClear(t *testing.T) {
	e := newEngine(t, "(###)", WithText("123"))

	res := e.Clear()
	assert.Equal(t, "(___)", res.Display)
	assert.Equal(t, "", res.Logical)
	assert.Equal(t, 0, res.Caret)
}

func TestFirstUnfilledPosition(t *testing.T) {
	e := newEngine(t, "(###)")
	assert.Equal(t, 1, e.FirstUnfilledPosition())

	e.SetLogicalText("12")
	assert.Equal(t, 3, e.FirstUnfilledPosition())

	e.SetLogicalText("123")
	assert.Equal(t, NoPosition, e.FirstUnfilledPosition())

	literalOnly := newEngine(t, "'#1")
	assert.Equal(t, NoPosition, literalOnly.FirstUnfilledPosition())
}

func TestRebuild_Idempotent(t *testing.T) {
	inputs := []struct {
		mask  string
		input string
	}{
		{"(###) ###-####", "555-123-4567 ext 9"},
		{"UU-##", "a!b?12"},
		{"HH:HH:HH", "zz0F1e9G"},
		{"?#?#", "1a2b3c"},
		{"'#A*A", "#x-y"},
	}

	for _, in := range inputs {
		e := newEngine(t, in.mask)
		display1, accepted := e.Rebuild(in.input)
		display2, accepted2 := e.Rebuild(accepted)

		assert.Equal(t, display1, display2, "mask %q", in.mask)
		assert.Equal(t, accepted, accepted2)
	}
}

func TestInvariants_AcrossEditSequence(t *testing.T) {
	e := newEngine(t, "(###) ###-####")
	literals := map[int]rune{}
	for i, s := range e.Slots() {
		if r, ok := s.Literal(); ok {
			literals[i] = r
		}
	}

	check := func() {
		t.Helper()
		assert.Len(t, []rune(e.DisplayText()), e.Len())

		filled := 0
		for i, s := range e.Slots() {
			if want, ok := literals[i]; ok {
				assert.Equal(t, want, s.Value(), "literal at %d changed", i)
				continue
			}
			if s.Filled() {
				filled++
			}
		}
		assert.Equal(t, len([]rune(e.LogicalText())), filled)
	}

	_, err := e.ReplaceText(0, 0, "55x5")
	require.NoError(t, err)
	check()
	_, err = e.ReplaceText(4, 4, "1234567890123")
	require.NoError(t, err)
	check()
	_, err = e.DeleteText(2, 9)
	require.NoError(t, err)
	check()
	e.SetPlaceholder(' ')
	check()
	_, err = e.ReplaceText(0, 14, "(")
	require.NoError(t, err)
	check()
	e.Clear()
	check()
}

func TestOnChange_FiresOncePerMutation(t *testing.T) {
	var changes []Change
	e := newEngine(t, "###", WithOnChange(func(c Change) {
		changes = append(changes, c)
	}))

	e.SetLogicalText("1a2b3c4")
	require.Len(t, changes, 1, "corrected text does not re-enter the setter")
	assert.Equal(t, OpSetText, changes[0].Op)
	assert.Equal(t, "", changes[0].Before)
	assert.Equal(t, "123", changes[0].After)
	assert.Equal(t, "123", changes[0].Display)

	_, err := e.DeleteText(0, 1)
	require.NoError(t, err)
	_, err = e.ReplaceText(0, 0, "9")
	require.NoError(t, err)
	e.Clear()

	require.Len(t, changes, 4)
	assert.Equal(t, []Op{OpSetText, OpDelete, OpReplace, OpClear},
		[]Op{changes[0].Op, changes[1].Op, changes[2].Op, changes[3].Op})

	_, err = e.DeleteText(0, 9)
	require.Error(t, err)
	assert.Len(t, changes, 4, "failed edits do not notify")
}

func TestOnChange_RebuildNotifies(t *testing.T) {
	var changes []Change
	e := newEngine(t, "###", WithOnChange(func(c Change) {
		changes = append(changes, c)
	}))

	display, accepted := e.Rebuild("12")
	assert.Equal(t, "12_", display)
	assert.Equal(t, "12", accepted)
	assert.Equal(t, "12", e.LogicalText())

	require.Len(t, changes, 1)
	assert.Equal(t, OpSetText, changes[0].Op)
	assert.Equal(t, "", changes[0].Before)
	assert.Equal(t, "12", changes[0].After)
	assert.Equal(t, 2, e.Caret(), "caret moves after the rebuilt text")
}

func TestOnChange_NotFiredByConstruction(t *testing.T) {
	calls := 0
	e := newEngine(t, "###", WithText("12"), WithOnChange(func(Change) { calls++ }))

	assert.Equal(t, "12", e.LogicalText())
	assert.Zero(t, calls)
}

func TestOnChange_HookMayReadEngine(t *testing.T) {
	var e *Engine
	var seen string
	e = newEngine(t, "##", WithOnChange(func(c Change) {
		seen = e.DisplayText()
	}))

	e.SetLogicalText("7")
	assert.Equal(t, "7_", seen)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "replace", OpReplace.String())
	assert.Equal(t, "set_placeholder", OpSetPlaceholder.String())
	assert.Equal(t, "unknown", Op(99).String())
}
