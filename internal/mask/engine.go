package mask

import (
	"fmt"
	"log/slog"
)

// NoPosition is returned by FirstUnfilledPosition when every input slot is filled.
const NoPosition = -1

// Range is a span of display positions. Start is inclusive, End is exclusive.
type Range struct {
	Start int
	End   int
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Op identifies the mutation that produced a Change.
type Op uint8

const (
	OpReplace Op = iota
	OpDelete
	OpClear
	OpSetText
	OpSetMask
	OpSetPlaceholder
)

// String returns a string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	case OpSetText:
		return "set_text"
	case OpSetMask:
		return "set_mask"
	case OpSetPlaceholder:
		return "set_placeholder"
	default:
		return "unknown"
	}
}

// Change describes a completed mutation. Before and After are logical texts.
type Change struct {
	Op      Op
	Before  string
	After   string
	Display string
}

// Result is what a mutating call hands back to the host: the new texts and the
// display position the host should move its caret to.
type Result struct {
	Display string
	Logical string
	Caret   int
}

// Engine holds the compiled mask and the accepted logical text of one masked field.
// It is not safe for concurrent use; a field services one edit at a time.
type Engine struct {
	pattern     string
	placeholder rune
	slots       []Slot
	logical     string
	selection   Range

	logger   *slog.Logger
	onChange func(Change)
}

// New compiles pattern and returns an engine holding the options' initial text.
func New(pattern string, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	slots, err := Compile(pattern, cfg.placeholder)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern:     pattern,
		placeholder: cfg.placeholder,
		slots:       slots,
		logger:      cfg.logger,
		onChange:    cfg.onChange,
	}
	e.refill([]rune(cfg.text), 0)
	return e, nil
}

// --- Queries ---

// DisplayText returns every slot's current value.
func (e *Engine) DisplayText() string { return render(e.slots) }

// LogicalText returns the accepted input runes.
func (e *Engine) LogicalText() string { return e.logical }

// Mask returns the pattern the engine was compiled from.
func (e *Engine) Mask() string { return e.pattern }

// Placeholder returns the rune shown in empty input slots.
func (e *Engine) Placeholder() rune { return e.placeholder }

// Len returns the display length, which is the number of compiled slots.
func (e *Engine) Len() int { return len(e.slots) }

// Capacity returns the number of input slots.
func (e *Engine) Capacity() int { return Capacity(e.slots) }

// IsComplete reports whether every input slot is filled.
func (e *Engine) IsComplete() bool {
	return len([]rune(e.logical)) == e.Capacity()
}

// Slots returns a copy of the compiled slots.
func (e *Engine) Slots() []Slot {
	out := make([]Slot, len(e.slots))
	copy(out, e.slots)
	return out
}

// Selection returns the selection last reported by the host or set by an edit.
func (e *Engine) Selection() Range { return e.selection }

// Caret returns the end of the current selection.
func (e *Engine) Caret() int { return e.selection.End }

// FirstUnfilledPosition returns the lowest display index of an empty input slot,
// or NoPosition if the mask is full.
func (e *Engine) FirstUnfilledPosition() int {
	for i, s := range e.slots {
		if !s.IsLiteral() && !s.Filled() {
			return i
		}
	}
	return NoPosition
}

// --- Edits ---

// SetSelection records the host's selection in display coordinates.
func (e *Engine) SetSelection(start, end int) error {
	if err := checkRange(start, end, len(e.slots)); err != nil {
		return err
	}
	e.selection = Range{Start: start, End: end}
	return nil
}

// ReplaceText replaces the display range [start, end) with text. An empty range inserts.
// Rejected runes of text are dropped; the caret lands after the last accepted rune of
// the edit.
func (e *Engine) ReplaceText(start, end int, text string) (Result, error) {
	if err := checkRange(start, end, len(e.slots)); err != nil {
		return Result{}, err
	}

	before := e.logical
	p0 := LogicalIndex(e.slots, start)
	p1 := p0
	if end > start {
		p1 = LogicalIndex(e.slots, end)
	}

	old := []rune(e.logical)
	ins := []rune(text)
	candidate := make([]rune, 0, len(old)-(p1-p0)+len(ins))
	candidate = append(candidate, old[:p0]...)
	candidate = append(candidate, ins...)
	candidate = append(candidate, old[p1:]...)

	kept := e.refill(candidate, p0+len(ins))
	caret := DisplayIndex(e.slots, kept)
	e.selection = Range{Start: caret, End: caret}

	e.notify(OpReplace, before)
	return e.result(caret), nil
}

// ReplaceSelection types text over the current selection. Empty text deletes it.
func (e *Engine) ReplaceSelection(text string) (Result, error) {
	sel := e.selection
	if text == "" {
		return e.DeleteText(sel.Start, sel.End)
	}
	return e.ReplaceText(sel.Start, sel.End, text)
}

// DeleteText removes the logical content under the display range [start, end).
// Literals in the range are unaffected. The caret returns to start.
func (e *Engine) DeleteText(start, end int) (Result, error) {
	if err := checkRange(start, end, len(e.slots)); err != nil {
		return Result{}, err
	}

	before := e.logical
	p0 := LogicalIndex(e.slots, start)
	p1 := LogicalIndex(e.slots, end)

	old := []rune(e.logical)
	candidate := make([]rune, 0, len(old)-(p1-p0))
	candidate = append(candidate, old[:p0]...)
	candidate = append(candidate, old[p1:]...)

	e.refill(candidate, 0)
	e.selection = Range{Start: start, End: start}

	e.notify(OpDelete, before)
	return e.result(start), nil
}

// Clear empties the logical text.
func (e *Engine) Clear() Result {
	return e.assign(OpClear, "")
}

// SetLogicalText replaces the logical text and re-validates it against the mask.
func (e *Engine) SetLogicalText(text string) Result {
	return e.assign(OpSetText, text)
}

// SetMask recompiles the engine for pattern and re-validates the current logical text
// against it. On a malformed pattern the engine is left unchanged.
func (e *Engine) SetMask(pattern string) (Result, error) {
	slots, err := Compile(pattern, e.placeholder)
	if err != nil {
		e.logger.Debug("mask rejected", "mask", pattern, "error", err)
		return Result{}, err
	}

	before := e.logical
	e.pattern = pattern
	e.slots = slots
	e.refill([]rune(e.logical), 0)

	caret := DisplayIndex(e.slots, len([]rune(e.logical)))
	e.selection = Range{Start: caret, End: caret}
	e.logger.Debug("mask compiled", "mask", pattern, "slots", len(slots), "capacity", Capacity(slots))

	e.notify(OpSetMask, before)
	return e.result(caret), nil
}

// SetPlaceholder changes the rune shown in empty input slots. Filled slots and the
// logical text are untouched.
func (e *Engine) SetPlaceholder(p rune) Result {
	before := e.logical
	e.placeholder = p
	for i := range e.slots {
		if !e.slots[i].Filled() {
			e.slots[i].reset(p)
		}
	}
	e.notify(OpSetPlaceholder, before)
	return e.result(e.selection.End)
}

// Rebuild re-derives the slots from logical and stores the accepted runes as the new
// logical text, exactly like SetLogicalText. It returns the display text and the accepted
// logical text. Rebuilding with its own accepted output yields the same display text.
func (e *Engine) Rebuild(logical string) (display, accepted string) {
	res := e.assign(OpSetText, logical)
	return res.Display, res.Logical
}

// --- internals ---

func (e *Engine) assign(op Op, text string) Result {
	before := e.logical
	e.refill([]rune(text), 0)
	caret := DisplayIndex(e.slots, len([]rune(e.logical)))
	e.selection = Range{Start: caret, End: caret}
	e.notify(op, before)
	return e.result(caret)
}

// refill resets every input slot and greedily consumes candidate into them: literals are
// skipped without consuming input, rejected runes are dropped and the same slot is tried
// with the next rune, and runes past the last slot are discarded. The accepted runes
// become the logical text. It returns how many accepted runes came from candidate[:mark].
func (e *Engine) refill(candidate []rune, mark int) int {
	for i := range e.slots {
		e.slots[i].reset(e.placeholder)
	}

	accepted := make([]rune, 0, len(candidate))
	kept, rejected := 0, 0
	si, ci := 0, 0
	for si < len(e.slots) {
		if e.slots[si].IsLiteral() {
			si++
			continue
		}
		if ci >= len(candidate) {
			break
		}
		if v, ok := e.slots[si].accept(candidate[ci]); ok {
			accepted = append(accepted, v)
			if ci < mark {
				kept++
			}
			si++
		} else {
			rejected++
		}
		ci++
	}

	if truncated := len(candidate) - ci; rejected > 0 || truncated > 0 {
		e.logger.Debug("input dropped",
			"mask", e.pattern,
			"rejected", rejected,
			"truncated", truncated,
		)
	}

	e.setLogicalQuiet(string(accepted))
	return kept
}

// setLogicalQuiet stores corrected logical text without going through any public edit
// entry point or firing change hooks.
func (e *Engine) setLogicalQuiet(text string) {
	e.logical = text
}

func (e *Engine) notify(op Op, before string) {
	if e.onChange == nil {
		return
	}
	e.onChange(Change{
		Op:      op,
		Before:  before,
		After:   e.logical,
		Display: e.DisplayText(),
	})
}

func (e *Engine) result(caret int) Result {
	return Result{
		Display: e.DisplayText(),
		Logical: e.logical,
		Caret:   caret,
	}
}
