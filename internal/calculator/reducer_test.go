package calculator

import "testing"

type unknownAction struct{}

func (unknownAction) Type() string { return "unknown" }

var sampleStates = []State{
	{},
	{CurrentInput: "12"},
	{CurrentInput: "5", LeftPart: "5", Operator: OpAdd, RightPartExpected: true},
	{CurrentInput: "-3.5", LeftPart: "7", Operator: OpDivide},
}

func TestReduceUnknownActionIsIdentity(t *testing.T) {
	for _, s := range sampleStates {
		if got := Reduce(s, unknownAction{}); got != s {
			t.Fatalf("expected %+v unchanged, got %+v", s, got)
		}
	}
}

func TestReduceClearAlwaysReturnsDefault(t *testing.T) {
	for _, s := range sampleStates {
		if got := Reduce(s, Clear{}); got != DefaultState() {
			t.Fatalf("clear from %+v: expected default, got %+v", s, got)
		}
	}
}

func TestReduceAppendDigit(t *testing.T) {
	tests := []struct {
		name  string
		state State
		char  string
		want  State
	}{
		{
			name:  "empty input takes the digit",
			state: State{},
			char:  "1",
			want:  State{CurrentInput: "1"},
		},
		{
			name:  "appends to typed input",
			state: State{CurrentInput: "1"},
			char:  "2",
			want:  State{CurrentInput: "12"},
		},
		{
			name:  "right part pending overwrites input",
			state: State{CurrentInput: "5", LeftPart: "5", Operator: OpAdd, RightPartExpected: true},
			char:  "3",
			want:  State{CurrentInput: "3", LeftPart: "5", Operator: OpAdd},
		},
		{
			name:  "decimal point appends like a digit",
			state: State{CurrentInput: "4"},
			char:  ".",
			want:  State{CurrentInput: "4."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reduce(tc.state, AppendDigit{Char: tc.char}); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestReduceAppendDigitSequence(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AppendDigit{Char: "1"})
	s = Reduce(s, AppendDigit{Char: "2"})

	if s.CurrentInput != "12" {
		t.Fatalf("expected input %q, got %q", "12", s.CurrentInput)
	}
	if s.RightPartExpected {
		t.Fatal("expected RightPartExpected to be false")
	}
}

func TestReduceCalculateResetsEverythingElse(t *testing.T) {
	want := State{CurrentInput: "7"}
	for _, s := range sampleStates {
		if got := Reduce(s, Calculate{Result: "7"}); got != want {
			t.Fatalf("calculate from %+v: expected %+v, got %+v", s, want, got)
		}
	}
}

func TestReduceSetOperator(t *testing.T) {
	got := Reduce(State{CurrentInput: "5"}, SetOperator{Operator: OpAdd})

	want := State{CurrentInput: "5", LeftPart: "5", Operator: OpAdd, RightPartExpected: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestReduceToggleNegative(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "5", want: "-5"},
		{input: "-5", want: "5"},
		{input: "0.25", want: "-0.25"},
		// Only the first character is dropped, wherever the '-' is.
		{input: "1e-7", want: "e-7"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := Reduce(State{CurrentInput: tc.input}, ToggleNegative{})
			if got.CurrentInput != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.CurrentInput)
			}
		})
	}
}

func TestReduceToggleNegativeRoundTrip(t *testing.T) {
	s := State{CurrentInput: "5", LeftPart: "2", Operator: OpMultiply}
	s = Reduce(Reduce(s, ToggleNegative{}), ToggleNegative{})

	want := State{CurrentInput: "5", LeftPart: "2", Operator: OpMultiply}
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
}

func TestDisplay(t *testing.T) {
	if got := Display(State{}); got != "0" {
		t.Fatalf("expected %q for empty input, got %q", "0", got)
	}
	if got := Display(State{CurrentInput: "-12.5"}); got != "-12.5" {
		t.Fatalf("expected %q, got %q", "-12.5", got)
	}
}
