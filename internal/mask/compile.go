package mask

// Compile parses pattern into slots. Input slots start empty and show placeholder.
//
// The escape marker turns the rune after it into a literal, even when that rune is
// itself a marker. A trailing escape is a *MalformedMaskError.
func Compile(pattern string, placeholder rune) ([]Slot, error) {
	runes := []rune(pattern)
	slots := make([]Slot, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if c == MarkerEscape {
			if i+1 >= len(runes) {
				return nil, &MalformedMaskError{Pattern: pattern, Offset: i}
			}
			i++
			slots = append(slots, literalSlot(runes[i]))
			continue
		}

		if k, ok := KindOf(c); ok {
			slots = append(slots, inputSlot(k, placeholder))
			continue
		}

		slots = append(slots, literalSlot(c))
	}

	return slots, nil
}

// Capacity counts the input slots of a compiled mask.
func Capacity(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if !s.IsLiteral() {
			n++
		}
	}
	return n
}
