package edit

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/mask"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOp is returned for a step whose op is not recognised
var ErrUnknownOp = errors.New("unknown step op")

// Script is a sequence of edits replayed against one engine
type Script struct {
	Placeholder string `yaml:"placeholder"`
	Text        string `yaml:"text"`
	Steps       []Step `yaml:"steps"`
}

// Step is one engine call. Which fields are read depends on Op:
//
//	insert      at, text
//	replace     start, end, text
//	delete      start, end
//	select      start, end
//	type        text (over the current selection)
//	set         text (whole logical text)
//	clear
//	mask        mask
//	placeholder placeholder
type Step struct {
	Op          string `yaml:"op"`
	At          int    `yaml:"at"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	Text        string `yaml:"text"`
	Mask        string `yaml:"mask"`
	Placeholder string `yaml:"placeholder"`
}

// LoadScript reads and parses a script file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &script, nil
}

// Apply runs step against e
func (s Step) Apply(e *mask.Engine) (mask.Result, error) {
	switch s.Op {
	case "insert":
		return e.ReplaceText(s.At, s.At, s.Text)
	case "replace":
		return e.ReplaceText(s.Start, s.End, s.Text)
	case "delete":
		return e.DeleteText(s.Start, s.End)
	case "select":
		if err := e.SetSelection(s.Start, s.End); err != nil {
			return mask.Result{}, err
		}
		return mask.Result{Display: e.DisplayText(), Logical: e.LogicalText(), Caret: e.Caret()}, nil
	case "type":
		return e.ReplaceSelection(s.Text)
	case "set":
		return e.SetLogicalText(s.Text), nil
	case "clear":
		return e.Clear(), nil
	case "mask":
		return e.SetMask(s.Mask)
	case "placeholder":
		r, err := config.ParsePlaceholder(s.Placeholder)
		if err != nil {
			return mask.Result{}, err
		}
		return e.SetPlaceholder(r), nil
	default:
		return mask.Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
}
