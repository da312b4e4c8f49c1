package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space
	ActionQuit        // Q (ctrl+c is handled as an interrupt by the backends)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Rand is the source of randomness used by game logic.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// RandRange returns a uniformly distributed integer in [lo, hi].
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
