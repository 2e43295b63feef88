package flappy

// AudioEvent is a fire-and-forget sound cue emitted by the simulation.
type AudioEvent int

const (
	SoundJump AudioEvent = iota
	SoundScore
	SoundHit
	SoundDie
	SoundSwoosh
)

// String returns the event name.
func (e AudioEvent) String() string {
	switch e {
	case SoundJump:
		return "jump"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	case SoundDie:
		return "die"
	case SoundSwoosh:
		return "swoosh"
	default:
		return "unknown"
	}
}

// EventQueue collects the events of one tick until the host drains them.
type EventQueue struct {
	events []AudioEvent
}

// Push appends an event.
func (q *EventQueue) Push(e AudioEvent) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns pending events in emission order and empties the queue.
func (q *EventQueue) Drain() []AudioEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
