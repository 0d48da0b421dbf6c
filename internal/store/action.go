package store

// Action types understood by the built-in reducers.
// Convention: SCREAMING_SNAKE, matching the wire form used by dispatch logs.
const (
	// ActionUpdateValue replaces the text-field value with its payload.
	ActionUpdateValue = "UPDATE_VALUE"
)

// Action is a tagged record describing an intended state mutation.
// Actions are data; they carry no behavior and are safe to log verbatim.
type Action struct {
	// Type identifies the mutation, e.g. "UPDATE_VALUE".
	Type string
	// Payload carries the action's argument. Its concrete type is a contract
	// between the action constructor and the reducer that consumes it.
	Payload any
}

// UpdateValue creates an action that sets the text-field value.
func UpdateValue(value string) Action {
	return Action{Type: ActionUpdateValue, Payload: value}
}

// Dispatch is the write half of the store boundary. Components that only
// need to emit actions accept a Dispatch rather than the whole *Store.
// It returns the state after the action has been reduced, matching the
// Store.Dispatch method.
type Dispatch func(Action) State
