package types

// Mode represents an input mode
type Mode int

const (
	ModeNormal    Mode = iota // key entry, confirm, resets
	ModeAnimating             // a search run is playing; only quit is accepted
)

func (m Mode) String() string {
	if m == ModeAnimating {
		return "animating"
	}
	return "normal"
}

// Action represents a command the presenter should execute
type Action interface {
	Type() string
}

// Context provides read-only access to the state needed for routing keys
type Context interface {
	SearchKey() int
	Searching() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey maps a key name to actions and reports whether the key was consumed
	HandleKey(key string, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
