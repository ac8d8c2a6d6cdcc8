package forms

import (
	tea "charm.land/bubbletea/v2"
)

// Confirm is a yes/no confirmation field
type Confirm struct {
	key         string
	title       string
	affirmative string
	negative    string
	value       *bool
	focused     bool
	selection   bool // true = yes, false = no
	styles      Styles
}

// NewConfirm creates a new confirm field
func NewConfirm(key, title, affirmative, negative string, value *bool) *Confirm {
	selection := true
	if value != nil {
		selection = *value
	}

	return &Confirm{
		key:         key,
		title:       title,
		affirmative: affirmative,
		negative:    negative,
		value:       value,
		selection:   selection,
		styles:      DefaultStyles(),
	}
}

// WithStyles replaces the styles
func (c *Confirm) WithStyles(styles Styles) *Confirm {
	c.styles = styles
	return c
}

// Update handles messages
func (c *Confirm) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h", "y":
			c.selection = true
		case "right", "l", "n":
			c.selection = false
		case "space":
			c.selection = !c.selection
		}

		if c.value != nil {
			*c.value = c.selection
		}
	}

	return c, nil
}

// View renders the confirm field
func (c *Confirm) View() string {
	title := c.styles.Title.Render(c.title)
	if c.focused {
		title = c.styles.FocusedTitle.Render(c.title)
	}

	yesStyle, noStyle := c.styles.Selected, c.styles.Unselected
	if !c.selection {
		yesStyle, noStyle = noStyle, yesStyle
	}

	return title + "\n" +
		yesStyle.Render(" "+c.affirmative+" ") + "  " +
		noStyle.Render(" "+c.negative+" ")
}

// Focus focuses the confirm field
func (c *Confirm) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Confirm) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Confirm) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Confirm) Key() string {
	return c.key
}

// Value returns the current selection
func (c *Confirm) Value() bool {
	return c.selection
}
