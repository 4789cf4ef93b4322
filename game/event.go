package game

import "grid-snake/game/types"

// EventKind classifies an abstract input event
type EventKind int

const (
	Quit EventKind = iota
	TogglePause
	Move
)

// Event is what a frontend's input source produces. Dir is only meaningful
// for Move.
type Event struct {
	Kind EventKind
	Dir  types.Direction
}

// MoveEvent creates a directional event
func MoveEvent(dir types.Direction) Event {
	return Event{Kind: Move, Dir: dir}
}

func (e Event) String() string {
	switch e.Kind {
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle-pause"
	case Move:
		return "move-" + e.Dir.String()
	default:
		return "unknown"
	}
}
