package circlebutton

// EventType identifies a button transition.
type EventType uint8

const (
	EventExpandStart   EventType = iota // press inside; expand animation started
	EventTilt                           // tilt recomputed from a move
	EventCollapseStart                  // release or cancel; collapse animation started
	EventExpanded                       // expand animation reached progress 1
	EventIdle                           // collapse animation finished
)

func (e EventType) String() string {
	switch e {
	case EventExpandStart:
		return "expand-start"
	case EventTilt:
		return "tilt"
	case EventCollapseStart:
		return "collapse-start"
	case EventExpanded:
		return "expanded"
	case EventIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// EventSink receives button events. Set one with Button.SetEventSink to
// bridge into an ECS or any other observer.
type EventSink interface {
	Emit(event Event)
}

// Event carries a button transition.
type Event struct {
	Type     EventType
	State    State
	Progress float64
	X, Y     float64 // pointer position, when the event came from input
	// Tilt fields (valid for EventTilt)
	RotateX float64 // degrees
	RotateY float64 // degrees
	// Cancelled is set on EventCollapseStart when the gesture was cancelled
	// rather than released.
	Cancelled bool
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(event).
func (f EventSinkFunc) Emit(event Event) { f(event) }
