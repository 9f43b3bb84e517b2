package calculator

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when a glyph is not an operator button.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator is a canonical arithmetic token.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
)

// Operator button glyphs as printed on the keypad.
const (
	GlyphDivide   = "\u00f7" // ÷
	GlyphMultiply = "\u00d7" // ×
	GlyphMinus    = "\u2212" // − (not the ASCII hyphen)
	GlyphPlus     = "+"
	GlyphPercent  = "%"
)

var operatorGlyphs = map[string]Operator{
	GlyphDivide:   OpDivide,
	GlyphMultiply: OpMultiply,
	GlyphMinus:    OpSubtract,
	GlyphPlus:     OpAdd,
	GlyphPercent:  OpModulo,
}

// DecodeOperator maps an operator button glyph to its token.
func DecodeOperator(glyph string) (Operator, error) {
	op, ok := operatorGlyphs[glyph]
	if !ok {
		return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, glyph)
	}
	return op, nil
}
