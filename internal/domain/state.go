package domain

// State is the lifecycle flag of users, equipment and printers.
type State string

const (
	StateActive   State = "actiu"
	StateHistoric State = "historic"
)

// Action tokens accepted by the state-transition endpoints.
const (
	ActionArchive = "historic"
	ActionRestore = "restaurar"
)

var transitions = map[string]State{
	ActionArchive: StateHistoric,
	ActionRestore: StateActive,
}

// TargetState maps an action token to the state it moves a row into.
// Unknown tokens fail with ErrInvalidAction.
func TargetState(action string) (State, error) {
	st, ok := transitions[action]
	if !ok {
		return "", ErrInvalidAction
	}
	return st, nil
}

func (s State) Valid() bool { return s == StateActive || s == StateHistoric }
