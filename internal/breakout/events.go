package breakout

import "fmt"

// EventKind identifies a collision response resolved during a tick.
type EventKind int

const (
	EventWallX      EventKind = iota // Left or right arena edge
	EventWallY                       // Top or bottom arena edge
	EventPaddle                      // Ball deflected by the paddle
	EventBlock                       // Block hidden
	EventPaddleTurn                  // Paddle reversed at an arena edge
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallX:
		return "wall-x"
	case EventWallY:
		return "wall-y"
	case EventPaddle:
		return "paddle"
	case EventBlock:
		return "block"
	case EventPaddleTurn:
		return "paddle-turn"
	default:
		return "unknown"
	}
}

// Event is one thing that happened during a tick.
type Event struct {
	Kind  EventKind
	Block int // Block index for EventBlock, -1 otherwise
}

func (e Event) String() string {
	if e.Kind == EventBlock {
		return fmt.Sprintf("%s#%d", e.Kind, e.Block)
	}
	return e.Kind.String()
}

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	Tick   uint64
	Events []Event
}

// Count returns how many events of the given kind occurred.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
