package calculator

import (
	"errors"
	"fmt"
	"strings"

	"go-calc-store/internal/store"
)

// ErrUnknownGlyph is returned by Controller.Press for glyphs that are not
// on the keypad.
var ErrUnknownGlyph = errors.New("unknown glyph")

// Controller turns button presses into store dispatches.
type Controller struct {
	store *store.Store[State]
}

// NewController returns a controller over a fresh calculator store.
func NewController() (*Controller, error) {
	s, err := store.New(Reduce, DefaultState())
	if err != nil {
		return nil, fmt.Errorf("creating calculator store: %w", err)
	}
	return &Controller{store: s}, nil
}

// State returns the current screen.
func (c *Controller) State() State {
	return c.store.State()
}

// Subscribe registers a listener for every new screen state.
func (c *Controller) Subscribe(listener func(State)) (func(), error) {
	return c.store.Subscribe(listener)
}

// Press handles one button press. Presses that make no sense for the
// current screen (an operator with nothing typed, a second decimal point,
// and so on) are ignored.
func (c *Controller) Press(glyph string) error {
	state := c.store.State()

	switch Classify(glyph) {
	case KindDigit:
		return c.store.Dispatch(AppendDigit{Char: glyph})

	case KindDecimal:
		if !state.HasInput() || strings.Contains(state.CurrentInput, GlyphDecimal) {
			return nil
		}
		return c.store.Dispatch(AppendDigit{Char: glyph})

	case KindClear:
		if !state.HasInput() {
			return nil
		}
		return c.store.Dispatch(Clear{})

	case KindOperator:
		if !state.HasInput() || state.RightPartExpected {
			return nil
		}
		op, err := DecodeOperator(glyph)
		if err != nil {
			return err
		}
		if state.HasLeftPart() {
			result := Evaluate(state.LeftPart, state.Operator, state.CurrentInput)
			if err := c.store.Dispatch(Calculate{Result: result}); err != nil {
				return err
			}
		}
		return c.store.Dispatch(SetOperator{Operator: op})

	case KindToggleSign:
		if !state.HasInput() {
			return nil
		}
		return c.store.Dispatch(ToggleNegative{})

	case KindEquals:
		if !state.HasInput() || !state.HasLeftPart() {
			return nil
		}
		result := Evaluate(state.LeftPart, state.Operator, state.CurrentInput)
		return c.store.Dispatch(Calculate{Result: result})

	default:
		return fmt.Errorf("%w: %q", ErrUnknownGlyph, glyph)
	}
}
