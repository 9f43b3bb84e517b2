package calculator

// State is the calculator screen. The zero value is the cleared screen.
type State struct {
	CurrentInput      string   `json:"current_input"`
	LeftPart          string   `json:"left_part"`
	RightPartExpected bool     `json:"right_part_expected"`
	Operator          Operator `json:"operator"`
}

// DefaultState returns the cleared screen.
func DefaultState() State {
	return State{}
}

// HasInput reports whether an operand is being typed.
func (s State) HasInput() bool {
	return s.CurrentInput != ""
}

// HasLeftPart reports whether an operand and operator are pending.
func (s State) HasLeftPart() bool {
	return s.LeftPart != ""
}

// Display returns the text shown on the screen: the current input, or "0"
// when nothing has been typed.
func Display(s State) string {
	if !s.HasInput() {
		return "0"
	}
	return s.CurrentInput
}
