package core

// EventKind identifies a discrete input or timer event.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window close, Escape, Q, Ctrl+C
	EventFlap                  // Space - flap, or restart after game over
	EventConfirm               // Enter - confirm restart after game over
	EventPointerDown           // Mouse button or touch press, with coordinates
	EventSpawnTick             // Periodic obstacle spawn timer
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventFlap:
		return "Flap"
	case EventConfirm:
		return "Confirm"
	case EventPointerDown:
		return "PointerDown"
	case EventSpawnTick:
		return "SpawnTick"
	default:
		return "Unknown"
	}
}

// Event is a single entry of the per-tick event queue.
// X and Y are only meaningful for EventPointerDown and are expressed in
// playfield units.
type Event struct {
	Kind EventKind
	X, Y float64
}

// PointerDown builds a pointer press event at playfield coordinates (x, y).
func PointerDown(x, y float64) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

// EventQueue collects events between two ticks in arrival order.
// Timer events and user input share the same queue so that the game has a
// single consumption point per tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// PushKind appends an event that carries no coordinates.
func (q *EventQueue) PushKind(k EventKind) {
	q.Push(Event{Kind: k})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
