package mask

// LogicalIndex converts a display position into a logical-text offset: the number of
// filled input slots before displayPos. Positions past the end are clamped.
//
// Unfilled slots are not counted, so a position inside a run of placeholders maps to
// the end of the real content.
func LogicalIndex(slots []Slot, displayPos int) int {
	if displayPos > len(slots) {
		displayPos = len(slots)
	}
	count := 0
	for i := 0; i < displayPos; i++ {
		if !slots[i].IsLiteral() && slots[i].Filled() {
			count++
		}
	}
	return count
}

// DisplayIndex converts a logical-text offset into the display position right after
// the logicalPos-th input slot. Literals before it are included; an offset beyond
// capacity maps to the mask length.
func DisplayIndex(slots []Slot, logicalPos int) int {
	literals, inputs := 0, 0
	for i := 0; i < len(slots) && inputs < logicalPos; i++ {
		if slots[i].IsLiteral() {
			literals++
		} else {
			inputs++
		}
	}
	return literals + inputs
}
