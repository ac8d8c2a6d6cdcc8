// Package tui is the interactive form behind `maskfield fill`.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/mask"
	"github.com/thenoetrevino/maskfield/internal/models"
	"github.com/thenoetrevino/maskfield/internal/services/entry"
	"github.com/thenoetrevino/maskfield/internal/tui/forms"
	"github.com/thenoetrevino/maskfield/internal/tui/notifications"
)

const (
	noteKey    = "note"
	partialKey = "partial"
)

// ErrNothingToSave is reported when submit is pressed with every masked field empty
var ErrNothingToSave = errors.New("nothing to save: every field is empty")

// Options selects what the form shows
type Options struct {
	// Presets are the preset names to fill, one masked field each, in order
	Presets []string

	// AllowPartial adds a confirm field that lets incomplete values be saved
	AllowPartial bool
}

// status is the last save outcome shown under the form
type status struct {
	severity notifications.Severity
	message  string
}

// Model represents the state of the fill form
type Model struct {
	ctx     context.Context
	entries entry.Service
	cfg     *config.Config
	opts    Options

	form   *forms.Form
	fields []*forms.MaskedInput
	note   *forms.TextInput

	savePartial bool
	saving      bool
	status      *status

	width  int
	height int
}

// saveResultMsg carries the outcome of a submit back into Update
type saveResultMsg struct {
	saved []*models.Entry
	err   error
}

// New builds a fill form for opts.Presets. Unknown presets and malformed masks are errors.
func New(ctx context.Context, entries entry.Service, cfg *config.Config, opts Options) (*Model, error) {
	if len(opts.Presets) == 0 {
		return nil, entry.ErrEmptyPreset
	}

	styles := forms.StylesFrom(cfg.ColorScheme)
	maskedKeys := forms.MaskedKeyMapFrom(cfg.KeyMappings)

	m := &Model{
		ctx:     ctx,
		entries: entries,
		cfg:     cfg,
		opts:    opts,
	}

	fieldList := make([]forms.Field, 0, len(opts.Presets)+2)
	for _, name := range opts.Presets {
		p, err := cfg.Preset(name)
		if err != nil {
			return nil, err
		}
		e, err := mask.New(p.Mask, mask.WithPlaceholder(cfg.PresetPlaceholder(p)))
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}

		title := name
		if p.Description != "" {
			title = name + "  " + p.Description
		}
		field := forms.NewMaskedInput(name, title, e, nil).
			WithKeyMap(maskedKeys).
			WithStyles(styles)
		m.fields = append(m.fields, field)
		fieldList = append(fieldList, field)
	}

	m.note = forms.NewTextInput(noteKey, "Note", "optional", nil).WithStyles(styles)
	fieldList = append(fieldList, m.note)

	if opts.AllowPartial {
		fieldList = append(fieldList,
			forms.NewConfirm(partialKey, "Save incomplete values?", "Yes", "No", &m.savePartial).
				WithStyles(styles))
	}

	m.form = forms.NewForm(fieldList...).WithKeyMap(forms.FormKeyMapFrom(cfg.KeyMappings))
	return m, nil
}

// Init focuses the first field
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case saveResultMsg:
		m.handleSaveResult(msg)
		return m, nil
	}

	// the form stays completed until the save reports back
	if m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	m.form = form

	switch m.form.State() {
	case forms.StateAborted:
		return m, tea.Quit
	case forms.StateCompleted:
		return m, m.submit()
	}

	return m, cmd
}

// submit validates the form locally and returns the command that saves it
func (m *Model) submit() tea.Cmd {
	reqs, err := m.requests()
	if err != nil {
		m.fail(err)
		return nil
	}

	m.saving = true
	ctx, entries := m.ctx, m.entries
	return func() tea.Msg {
		saved := make([]*models.Entry, 0, len(reqs))
		for _, req := range reqs {
			e, err := entries.SaveEntry(ctx, req)
			if err != nil {
				return saveResultMsg{saved: saved, err: fmt.Errorf("%s: %w", req.Preset, err)}
			}
			saved = append(saved, e)
		}
		return saveResultMsg{saved: saved}
	}
}

// requests turns the non-empty fields into save requests.
// Incomplete fields are refused up front unless partial saving is confirmed.
func (m *Model) requests() ([]entry.SaveEntryRequest, error) {
	allowPartial := m.opts.AllowPartial && m.savePartial
	note := strings.TrimSpace(m.note.Value())

	reqs := make([]entry.SaveEntryRequest, 0, len(m.fields))
	for _, f := range m.fields {
		if f.Value() == "" {
			continue
		}
		if !f.Complete() && !allowPartial {
			return nil, fmt.Errorf("%s: %w", f.Key(), entry.ErrIncompleteValue)
		}
		reqs = append(reqs, entry.SaveEntryRequest{
			Preset:       f.Key(),
			Text:         f.Value(),
			Note:         note,
			AllowPartial: allowPartial,
		})
	}

	if len(reqs) == 0 {
		return nil, ErrNothingToSave
	}
	return reqs, nil
}

func (m *Model) handleSaveResult(msg saveResultMsg) {
	m.saving = false
	if msg.err != nil {
		// entries saved before the failure are cleared so a resubmit does not store them twice
		m.resetSaved(msg.saved)
		if len(msg.saved) > 0 {
			msg.err = fmt.Errorf("saved %d before error: %w", len(msg.saved), msg.err)
		}
		m.fail(msg.err)
		return
	}

	ids := make([]string, len(msg.saved))
	for i, e := range msg.saved {
		ids[i] = fmt.Sprintf("#%d", e.ID)
	}
	noun := "entries"
	if len(msg.saved) == 1 {
		noun = "entry"
	}
	m.status = &status{
		severity: notifications.Info,
		message:  fmt.Sprintf("saved %d %s (%s)", len(msg.saved), noun, strings.Join(ids, ", ")),
	}

	for _, f := range m.fields {
		f.Reset()
	}
	m.note.Reset()
	m.form.Resume()
}

func (m *Model) resetSaved(saved []*models.Entry) {
	// saves run in field order, so a preset listed twice clears only as many fields as it saved
	done := make(map[string]int, len(saved))
	for _, e := range saved {
		done[e.Preset]++
	}
	for _, f := range m.fields {
		if f.Value() != "" && done[f.Key()] > 0 {
			done[f.Key()]--
			f.Reset()
		}
	}
}

func (m *Model) fail(err error) {
	severity := notifications.Error
	if errors.Is(err, entry.ErrIncompleteValue) || errors.Is(err, ErrNothingToSave) {
		severity = notifications.Warning
	}
	m.status = &status{severity: severity, message: err.Error()}
	m.form.Resume()
}

// Fields returns the masked fields in preset order
func (m *Model) Fields() []*forms.MaskedInput {
	return m.fields
}

// Form returns the underlying form
func (m *Model) Form() *forms.Form {
	return m.form
}

// Status returns the last status message, or "" if there is none
func (m *Model) Status() string {
	if m.status == nil {
		return ""
	}
	return m.status.message
}
