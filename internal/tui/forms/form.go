package forms

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	keys         FormKeyMap
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
		keys:         DefaultFormKeyMap(),
	}
}

// WithKeyMap replaces the form's navigation bindings
func (f *Form) WithKeyMap(keys FormKeyMap) *Form {
	f.keys = keys
	return f
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[f.focusedIndex].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Abort):
			f.state = StateAborted
			return f, nil

		case key.Matches(keyMsg, f.keys.Submit):
			f.state = StateCompleted
			return f, nil

		case key.Matches(keyMsg, f.keys.Next):
			return f, f.move(1)

		case key.Matches(keyMsg, f.keys.Prev):
			return f, f.move(-1)
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// move shifts focus by delta, wrapping around
func (f *Form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()
	f.focusedIndex = (f.focusedIndex + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(field.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}

// Resume puts a completed form back in progress so it can be edited again
func (f *Form) Resume() {
	f.state = StateInProgress
}

// Fields returns the form's fields in order
func (f *Form) Fields() []Field {
	return f.fields
}

// FocusedIndex returns the index of the focused field
func (f *Form) FocusedIndex() int {
	return f.focusedIndex
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}
