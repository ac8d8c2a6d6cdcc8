package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a free-form single-line field, used for entry notes
type TextInput struct {
	key    string
	title  string
	value  *string
	input  textinput.Model
	styles Styles
}

// NewTextInput creates a new text input field
func NewTextInput(key, title, placeholder string, value *string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	if value != nil && *value != "" {
		ti.SetValue(*value)
	}

	return &TextInput{
		key:    key,
		title:  title,
		value:  value,
		input:  ti,
		styles: DefaultStyles(),
	}
}

// WithStyles replaces the styles
func (t *TextInput) WithStyles(styles Styles) *TextInput {
	t.styles = styles
	return t
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.value != nil {
		*t.value = t.input.Value()
	}

	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	title := t.styles.Title.Render(t.title)
	if t.input.Focused() {
		title = t.styles.FocusedTitle.Render(t.title)
	}
	return title + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// Reset empties the input
func (t *TextInput) Reset() {
	t.input.Reset()
	if t.value != nil {
		*t.value = ""
	}
}
