package store

import "testing"

func TestTextFieldReducer(t *testing.T) {
	tests := []struct {
		name        string
		current     *TextFieldState
		action      Action
		wantValue   string
		wantSameRef bool
	}{
		{
			name:        "update replaces value",
			current:     NewTextFieldState("old"),
			action:      UpdateValue("new"),
			wantValue:   "new",
			wantSameRef: false,
		},
		{
			name:        "unchanged value keeps reference",
			current:     NewTextFieldState("same"),
			action:      UpdateValue("same"),
			wantValue:   "same",
			wantSameRef: true,
		},
		{
			name:        "unknown action keeps reference",
			current:     NewTextFieldState("kept"),
			action:      Action{Type: "SOMETHING_ELSE", Payload: 42},
			wantValue:   "kept",
			wantSameRef: true,
		},
		{
			name:        "non-string payload keeps reference",
			current:     NewTextFieldState("kept"),
			action:      Action{Type: ActionUpdateValue, Payload: 42},
			wantValue:   "kept",
			wantSameRef: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextFieldReducer(tt.current, tt.action)

			state, ok := got.(*TextFieldState)
			if !ok {
				t.Fatalf("reducer returned %T, want *TextFieldState", got)
			}
			if state.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", state.Value, tt.wantValue)
			}
			if (state == tt.current) != tt.wantSameRef {
				t.Errorf("same reference = %v, want %v", state == tt.current, tt.wantSameRef)
			}
		})
	}
}

func TestTextFieldReducerLeavesOldStateIntact(t *testing.T) {
	old := NewTextFieldState("before")
	TextFieldReducer(old, UpdateValue("after"))

	if old.Value != "before" {
		t.Errorf("previous state mutated to %q; reducers must not mutate in place", old.Value)
	}
}

func TestSelectTextFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"registered feature", State{FeatureTextField: NewTextFieldState("asdf")}, "asdf"},
		{"missing feature", State{}, ""},
		{"nil feature state", State{FeatureTextField: (*TextFieldState)(nil)}, ""},
		{"wrong type", State{FeatureTextField: "oops"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectTextFieldValue(tt.state); got != tt.want {
				t.Errorf("SelectTextFieldValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
