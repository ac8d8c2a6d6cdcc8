package forms

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/maskfield/internal/config"
)

// MaskedKeyMap defines the keys a MaskedInput responds to
type MaskedKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	Home        key.Binding
	End         key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Clear       key.Binding
}

// DefaultMaskedKeyMap returns the default masked input bindings
func DefaultMaskedKeyMap() MaskedKeyMap {
	return MaskedKeyMap{
		Left:        key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "move left")),
		Right:       key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "move right")),
		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		Home:        key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:         key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end of input")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete left")),
		Delete:      key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	}
}

// FormKeyMap defines the keys a Form handles before its fields see them
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Abort  key.Binding
}

// DefaultFormKeyMap returns the default form bindings
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMapFrom(config.DefaultKeyMappings())
}

// FormKeyMapFrom builds form bindings from configured key mappings
func FormKeyMapFrom(km config.KeyMappings) FormKeyMap {
	return FormKeyMap{
		Next:   key.NewBinding(key.WithKeys(km.NextField), key.WithHelp(km.NextField, "next field")),
		Prev:   key.NewBinding(key.WithKeys(km.PrevField), key.WithHelp(km.PrevField, "previous field")),
		Submit: key.NewBinding(key.WithKeys(km.Submit), key.WithHelp(km.Submit, "save")),
		Abort:  key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
	}
}

// MaskedKeyMapFrom applies configured key mappings to the default masked input bindings
func MaskedKeyMapFrom(km config.KeyMappings) MaskedKeyMap {
	keys := DefaultMaskedKeyMap()
	keys.Clear = key.NewBinding(key.WithKeys(km.Clear), key.WithHelp(km.Clear, "clear"))
	return keys
}
