// Package mask implements the masked-input engine behind maskfield's form fields.
//
// A mask pattern is compiled into an ordered sequence of slots. Literal slots are fixed
// characters, every other slot accepts one constrained input rune. The engine keeps two
// views of the same state in sync:
//
//   - display text: every slot's current value, literals and placeholders included.
//     Its length always equals the compiled mask length.
//   - logical text: only the runes the user typed that were accepted, in slot order.
//
// Hosts issue edits in display coordinates (ReplaceText, DeleteText, ReplaceSelection).
// The engine maps them to logical coordinates, mutates the logical text, re-derives the
// slots with a greedy pass that skips literals and drops rejected runes, and returns the
// new display text together with a caret target. The engine never draws anything.
//
// Pattern markers:
//
//	#  digit
//	?  letter
//	A  letter or digit
//	H  hex digit
//	U  letter, forced uppercase
//	L  letter, forced lowercase
//	*  any rune
//	'  escape: the next pattern rune is a literal
//
// Any other pattern rune is a literal. Indices count runes, not bytes.
package mask
