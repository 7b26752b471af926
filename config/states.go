package config

// StateID identifies a character state. Exactly one is active per entity and
// it selects the animation clip.
type StateID int

const (
	StateNone StateID = iota - 1
	StateIdle
	StateWalking
	StateAttacking
	StateDead
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateAttacking:
		return "attacking"
	case StateDead:
		return "dead"
	default:
		return "none"
	}
}
