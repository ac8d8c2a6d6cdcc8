package mask

// Slot is one fixed position of a compiled mask.
//
// Literal slots are always filled and hold their literal rune. Input slots hold the
// placeholder until a rune is accepted into them.
type Slot struct {
	kind   Kind
	value  rune
	filled bool
}

func literalSlot(r rune) Slot {
	return Slot{kind: Literal, value: r, filled: true}
}

func inputSlot(k Kind, placeholder rune) Slot {
	return Slot{kind: k, value: placeholder}
}

// Kind returns the slot's kind.
func (s Slot) Kind() Kind { return s.kind }

// IsLiteral reports whether the slot is a fixed literal.
func (s Slot) IsLiteral() bool { return s.kind == Literal }

// Literal returns the literal rune and true for literal slots.
func (s Slot) Literal() (rune, bool) {
	if s.kind != Literal {
		return 0, false
	}
	return s.value, true
}

// Value returns the rune currently displayed by the slot.
func (s Slot) Value() rune { return s.value }

// Filled reports whether the slot holds content. Literal slots are always filled.
func (s Slot) Filled() bool { return s.filled }

// accept stores r if the slot's policy allows it.
func (s *Slot) accept(r rune) (rune, bool) {
	if !s.kind.Accepts(r) {
		return 0, false
	}
	v := s.kind.Transform(r)
	s.value = v
	s.filled = true
	return v, true
}

// reset empties an input slot. Literal slots are left alone.
func (s *Slot) reset(placeholder rune) {
	if s.kind == Literal {
		return
	}
	s.value = placeholder
	s.filled = false
}

func render(slots []Slot) string {
	out := make([]rune, len(slots))
	for i, s := range slots {
		out[i] = s.value
	}
	return string(out)
}
