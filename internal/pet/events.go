package pet

// EventType identifies a discrete input from the host: knob turns and
// presses on the device, key presses and focus changes in the TUI.
type EventType int

const (
	EventFeed EventType = iota
	EventPet
	EventLongPress
	EventPresenceChanged
)

// Event is one input heading for the simulator.
type Event struct {
	Type    EventType
	Present bool // only meaningful for EventPresenceChanged
}

// Outcome is what applying an event produced, for hosts that want to
// react (show a refusal message, power down).
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRejected
	OutcomeShutdown
)

// Apply dispatches one event to the matching operation.
func (s *Simulator) Apply(ev Event) Outcome {
	switch ev.Type {
	case EventFeed:
		if !s.Feed() {
			return OutcomeRejected
		}
	case EventPet:
		s.Pet()
	case EventLongPress:
		if s.ToggleSleepOrShutdown() == LongPressShutdown {
			return OutcomeShutdown
		}
	case EventPresenceChanged:
		s.SetPresence(ev.Present)
	}
	return OutcomeNone
}

// Queue is a bounded single-consumer input queue. Producers push
// without blocking from whatever context delivers input; the host
// drains it right before each tick, so mutation order never depends on
// the input source's threading.
type Queue struct {
	ch chan Event
}

// NewQueue creates a queue holding up to size pending events.
func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues an event. A full queue drops the event and reports
// false; inputs are advisory, not transactional.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Pop removes the oldest pending event, if any.
func (q *Queue) Pop() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}
