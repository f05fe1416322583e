package swapchain

import "fmt"

// State is the lifecycle position of a Manager
type State int

const (
	// StateUninitialized is the state before Create and after Destroy
	StateUninitialized State = iota
	// StateLive means every generation-bound object matches the surface
	StateLive
	// StateStale means the surface changed and the objects must be rebuilt before the next frame
	StateStale
	// StateRebuilding is held for the duration of Recreate
	StateRebuilding
)

var stateToString = map[State]string{
	StateUninitialized: "Uninitialized",
	StateLive:          "Live",
	StateStale:         "Stale",
	StateRebuilding:    "Rebuilding",
}

func (s State) String() string {
	str, ok := stateToString[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return str
}
