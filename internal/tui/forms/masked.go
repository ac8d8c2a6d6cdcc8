package forms

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/maskfield/internal/mask"
)

// MaskedInput is a single-line field whose text is governed by a mask.
// It owns the engine and translates key presses into engine edits; the engine
// decides what is accepted and where the caret lands afterwards.
type MaskedInput struct {
	key    string
	title  string
	engine *mask.Engine
	value  *string

	caret   int
	anchor  int // other end of the selection; equal to caret when nothing is selected
	focused bool

	keys   MaskedKeyMap
	styles Styles
}

// NewMaskedInput creates a masked field around engine. If value is non-nil it is
// kept in sync with the engine's logical text.
func NewMaskedInput(key, title string, engine *mask.Engine, value *string) *MaskedInput {
	m := &MaskedInput{
		key:    key,
		title:  title,
		engine: engine,
		value:  value,
		keys:   DefaultMaskedKeyMap(),
		styles: DefaultStyles(),
	}
	if value != nil && *value != "" {
		engine.SetLogicalText(*value)
	}
	m.moveTo(m.endOfInput())
	m.sync()
	return m
}

// WithKeyMap replaces the key bindings
func (m *MaskedInput) WithKeyMap(keys MaskedKeyMap) *MaskedInput {
	m.keys = keys
	return m
}

// WithStyles replaces the styles
func (m *MaskedInput) WithStyles(styles Styles) *MaskedInput {
	m.styles = styles
	return m
}

// Update handles messages
func (m *MaskedInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.PasteMsg:
		m.replace(msg.Content)

	case tea.KeyPressMsg:
		m.handleKey(msg)
	}

	return m, nil
}

func (m *MaskedInput) handleKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.Reset()

	case key.Matches(msg, m.keys.SelectLeft):
		m.caret = max(0, m.caret-1)

	case key.Matches(msg, m.keys.SelectRight):
		m.caret = min(m.engine.Len(), m.caret+1)

	case key.Matches(msg, m.keys.Left):
		start, end := m.Selection()
		if start != end {
			m.moveTo(start)
		} else {
			m.moveTo(m.caret - 1)
		}

	case key.Matches(msg, m.keys.Right):
		start, end := m.Selection()
		if start != end {
			m.moveTo(end)
		} else {
			m.moveTo(m.caret + 1)
		}

	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)

	case key.Matches(msg, m.keys.End):
		m.moveTo(m.endOfInput())

	case key.Matches(msg, m.keys.Backspace):
		m.deleteBackward()

	case key.Matches(msg, m.keys.Delete):
		m.deleteForward()

	default:
		k := msg.Key()
		if k.Text != "" && k.Mod&^tea.ModShift == 0 {
			m.replace(k.Text)
		}
	}
}

// replace types text over the selection
func (m *MaskedInput) replace(text string) {
	if text == "" {
		return
	}
	start, end := m.Selection()
	if err := m.engine.SetSelection(start, end); err != nil {
		return
	}
	before := m.engine.LogicalText()
	res, err := m.engine.ReplaceSelection(text)
	if err != nil {
		return
	}
	// nothing accepted into an empty selection: stay put
	if start == end && res.Logical == before {
		return
	}
	m.moveTo(res.Caret)
	m.sync()
}

func (m *MaskedInput) deleteBackward() {
	start, end := m.Selection()
	if start != end {
		m.deleteRange(start, end)
		return
	}

	slots := m.engine.Slots()
	for i := min(m.caret, len(slots)) - 1; i >= 0; i-- {
		if !slots[i].IsLiteral() && slots[i].Filled() {
			m.deleteRange(i, i+1)
			return
		}
	}
}

func (m *MaskedInput) deleteForward() {
	start, end := m.Selection()
	if start != end {
		m.deleteRange(start, end)
		return
	}

	slots := m.engine.Slots()
	for i := m.caret; i < len(slots); i++ {
		if !slots[i].IsLiteral() && slots[i].Filled() {
			caret := m.caret
			m.deleteRange(i, i+1)
			m.moveTo(caret)
			return
		}
	}
}

func (m *MaskedInput) deleteRange(start, end int) {
	res, err := m.engine.DeleteText(start, end)
	if err != nil {
		return
	}
	m.moveTo(res.Caret)
	m.sync()
}

// moveTo collapses the selection onto pos, clamped to the display
func (m *MaskedInput) moveTo(pos int) {
	pos = max(0, min(m.engine.Len(), pos))
	m.caret = pos
	m.anchor = pos
}

func (m *MaskedInput) firstUnfilled() int {
	if pos := m.engine.FirstUnfilledPosition(); pos != mask.NoPosition {
		return pos
	}
	return m.engine.Len()
}

// endOfInput is the display position right after the last filled slot
func (m *MaskedInput) endOfInput() int {
	slots := m.engine.Slots()
	for i := len(slots) - 1; i >= 0; i-- {
		if !slots[i].IsLiteral() && slots[i].Filled() {
			return i + 1
		}
	}
	return 0
}

func (m *MaskedInput) sync() {
	if m.value != nil {
		*m.value = m.engine.LogicalText()
	}
}

// View renders the title and the display text, one styled cell per slot
func (m *MaskedInput) View() string {
	title := m.styles.Title.Render(m.title)
	if m.focused {
		title = m.styles.FocusedTitle.Render(m.title)
	}

	start, end := m.Selection()
	var b strings.Builder
	for i, s := range m.engine.Slots() {
		cell := string(s.Value())
		switch {
		case m.focused && start != end && i >= start && i < end:
			b.WriteString(m.styles.Selection.Render(cell))
		case m.focused && start == end && i == m.caret:
			b.WriteString(m.styles.Caret.Render(cell))
		case s.IsLiteral():
			b.WriteString(m.styles.Literal.Render(cell))
		case s.Filled():
			b.WriteString(m.styles.Filled.Render(cell))
		default:
			b.WriteString(m.styles.Placeholder.Render(cell))
		}
	}
	if m.focused && start == end && m.caret == m.engine.Len() {
		b.WriteString(m.styles.Caret.Render(" "))
	}

	return title + "\n" + b.String()
}

// Focus places the caret on the first empty slot, or at the end when the mask is full
func (m *MaskedInput) Focus() tea.Cmd {
	m.focused = true
	m.moveTo(m.firstUnfilled())
	return nil
}

// Blur removes focus
func (m *MaskedInput) Blur() {
	m.focused = false
}

// Focused returns whether the field is focused
func (m *MaskedInput) Focused() bool {
	return m.focused
}

// Key returns the field key
func (m *MaskedInput) Key() string {
	return m.key
}

// Value returns the logical text
func (m *MaskedInput) Value() string {
	return m.engine.LogicalText()
}

// Display returns the display text
func (m *MaskedInput) Display() string {
	return m.engine.DisplayText()
}

// Complete reports whether every input slot is filled
func (m *MaskedInput) Complete() bool {
	return m.engine.IsComplete()
}

// Engine returns the underlying engine
func (m *MaskedInput) Engine() *mask.Engine {
	return m.engine
}

// Caret returns the caret's display position
func (m *MaskedInput) Caret() int {
	return m.caret
}

// Selection returns the selected display range, start <= end
func (m *MaskedInput) Selection() (start, end int) {
	return min(m.anchor, m.caret), max(m.anchor, m.caret)
}

// Reset clears the text and returns the caret to the first slot
func (m *MaskedInput) Reset() {
	m.engine.Clear()
	m.moveTo(m.firstUnfilled())
	m.sync()
}
