package calculator

import (
	"strings"

	"go-calc-store/internal/store"
)

// Reduce is the calculator's store.Reducer. Unknown actions leave the
// state untouched.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case Clear:
		return DefaultState()

	case AppendDigit:
		if state.HasInput() && !state.RightPartExpected {
			state.CurrentInput += a.Char
		} else {
			state.CurrentInput = a.Char
		}
		state.RightPartExpected = false
		return state

	case Calculate:
		return State{CurrentInput: a.Result}

	case SetOperator:
		state.Operator = a.Operator
		state.LeftPart = state.CurrentInput
		state.RightPartExpected = true
		return state

	case ToggleNegative:
		// Any '-' counts, but only the first character is dropped.
		if strings.Contains(state.CurrentInput, "-") {
			state.CurrentInput = state.CurrentInput[1:]
		} else {
			state.CurrentInput = "-" + state.CurrentInput
		}
		return state

	default:
		return state
	}
}
