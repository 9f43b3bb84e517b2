package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Evaluate computes left op right and formats the result. Operands that do
// not parse and unknown operators produce NaN; division by zero follows
// IEEE 754. No error is ever returned: whatever comes out is displayed.
func Evaluate(left string, op Operator, right string) string {
	return FormatNumber(apply(parseOperand(left), op, parseOperand(right)))
}

func apply(a float64, op Operator, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpModulo:
		return math.Mod(a, b)
	default:
		return math.NaN()
	}
}

func parseOperand(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow as ±Inf with an error; keep the value.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// FormatNumber renders f the way a browser stringifies a number: shortest
// round-trip digits, exponent notation outside [1e-6, 1e21), "Infinity",
// "-Infinity" and "NaN".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent turns "1e-07" into "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
