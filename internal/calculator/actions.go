package calculator

// Action type names.
const (
	TypeClear          = "clear"
	TypeAppendDigit    = "append_digit"
	TypeCalculate      = "calculate"
	TypeSetOperator    = "set_operator"
	TypeToggleNegative = "toggle_negative"
)

// Clear resets the screen.
type Clear struct{}

func (Clear) Type() string { return TypeClear }

// AppendDigit adds a digit or decimal point to the current input.
type AppendDigit struct {
	Char string
}

func (AppendDigit) Type() string { return TypeAppendDigit }

// Calculate replaces the screen with a computed result.
type Calculate struct {
	Result string
}

func (Calculate) Type() string { return TypeCalculate }

// SetOperator commits the current input as the left operand.
type SetOperator struct {
	Operator Operator
}

func (SetOperator) Type() string { return TypeSetOperator }

// ToggleNegative flips the sign marker of the current input.
type ToggleNegative struct{}

func (ToggleNegative) Type() string { return TypeToggleNegative }
