package store

// FeatureTextField is the feature key for the text-field state.
const FeatureTextField = "textField"

// TextFieldState holds the shared value of the text-field feature.
// States are pointers: an unchanged dispatch returns the same pointer, so
// subscribers can compare identities to skip redundant work.
type TextFieldState struct {
	Value string
}

// NewTextFieldState creates the initial text-field state.
func NewTextFieldState(value string) *TextFieldState {
	return &TextFieldState{Value: value}
}

// TextFieldReducer applies text-field actions.
//
// UPDATE_VALUE with an unchanged value returns the current state pointer
// untouched; any other payload produces a fresh state, leaving the previous
// one intact for snapshots still holding it. Unknown action types are
// ignored.
func TextFieldReducer(current any, action Action) any {
	state, ok := current.(*TextFieldState)
	if !ok || state == nil {
		return current
	}

	switch action.Type {
	case ActionUpdateValue:
		value, ok := action.Payload.(string)
		if !ok {
			return state
		}
		if state.Value == value {
			return state
		}
		return &TextFieldState{Value: value}
	default:
		return state
	}
}

// SelectTextFieldValue projects the text-field value out of a container
// state. Returns "" when the feature is not registered.
func SelectTextFieldValue(s State) string {
	state, ok := s[FeatureTextField].(*TextFieldState)
	if !ok || state == nil {
		return ""
	}
	return state.Value
}
