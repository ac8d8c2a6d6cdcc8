package mask

import "unicode"

// Pattern markers.
const (
	MarkerEscape       = '\''
	MarkerDigit        = '#'
	MarkerLetter       = '?'
	MarkerAlphaNumeric = 'A'
	MarkerHex          = 'H'
	MarkerUpperLetter  = 'U'
	MarkerLowerLetter  = 'L'
	MarkerAny          = '*'
)

// Kind classifies a compiled slot.
type Kind uint8

const (
	Literal Kind = iota
	Digit
	Letter
	AlphaNumeric
	Hex
	UpperLetter
	LowerLetter
	Any
)

// policy pairs an acceptance predicate with a case transform.
type policy struct {
	marker    rune
	name      string
	accept    func(rune) bool
	transform func(rune) rune
}

func identity(r rune) rune { return r }

func never(rune) bool { return false }

func always(rune) bool { return true }

func isLetterOrDigit(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

var policies = [...]policy{
	Literal:      {0, "literal", never, identity},
	Digit:        {MarkerDigit, "digit", unicode.IsDigit, identity},
	Letter:       {MarkerLetter, "letter", unicode.IsLetter, identity},
	AlphaNumeric: {MarkerAlphaNumeric, "alphanumeric", isLetterOrDigit, identity},
	Hex:          {MarkerHex, "hex", isHex, identity},
	UpperLetter:  {MarkerUpperLetter, "upper", unicode.IsLetter, unicode.ToUpper},
	LowerLetter:  {MarkerLowerLetter, "lower", unicode.IsLetter, unicode.ToLower},
	Any:          {MarkerAny, "any", always, identity},
}

func (k Kind) policy() policy {
	if int(k) < len(policies) {
		return policies[k]
	}
	return policies[Literal]
}

// String returns the kind's name.
func (k Kind) String() string {
	if int(k) >= len(policies) {
		return "unknown"
	}
	return policies[k].name
}

// Marker returns the pattern rune that produces this kind. Literal has no marker and
// returns 0.
func (k Kind) Marker() rune {
	return k.policy().marker
}

// Accepts reports whether r may be stored in a slot of this kind.
// Literal slots accept nothing.
func (k Kind) Accepts(r rune) bool {
	return k.policy().accept(r)
}

// Transform applies the kind's case rule to an accepted rune.
func (k Kind) Transform(r rune) rune {
	return k.policy().transform(r)
}

// KindOf maps a pattern marker to its slot kind. The escape marker and every
// non-marker rune report false.
func KindOf(marker rune) (Kind, bool) {
	for k := Digit; int(k) < len(policies); k++ {
		if policies[k].marker == marker {
			return k, true
		}
	}
	return Literal, false
}
