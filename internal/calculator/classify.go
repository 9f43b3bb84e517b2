package calculator

// Kind is the class of a keypad button.
type Kind int

const (
	KindUnknown Kind = iota
	KindDigit
	KindDecimal
	KindClear
	KindOperator
	KindToggleSign
	KindEquals
)

// Non-operator button glyphs.
const (
	GlyphDecimal    = "."
	GlyphClear      = "ac"
	GlyphToggleSign = "\u00b1" // ±
	GlyphEquals     = "="
)

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindDigit:      "digit",
	KindDecimal:    "decimal",
	KindClear:      "clear",
	KindOperator:   "operator",
	KindToggleSign: "toggle_sign",
	KindEquals:     "equals",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Classify reports which kind of button glyph is.
func Classify(glyph string) Kind {
	switch glyph {
	case GlyphDecimal:
		return KindDecimal
	case GlyphClear:
		return KindClear
	case GlyphToggleSign:
		return KindToggleSign
	case GlyphEquals:
		return KindEquals
	}
	if len(glyph) == 1 && glyph[0] >= '0' && glyph[0] <= '9' {
		return KindDigit
	}
	if _, ok := operatorGlyphs[glyph]; ok {
		return KindOperator
	}
	return KindUnknown
}
