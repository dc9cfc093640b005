// Package event carries asynchronous notifications to the frame thread.
package event

import "sync"

// Type identifies an event.
type Type int

const (
	Tap         Type = iota // Touch, click or key acknowledgement
	SpawnEnemy              // Enemy spawn schedule fired
	Contact                 // Two bodies started touching
	MoveArrived             // A scripted move reached its destination
)

func (t Type) String() string {
	switch t {
	case Tap:
		return "tap"
	case SpawnEnemy:
		return "spawn-enemy"
	case Contact:
		return "contact"
	case MoveArrived:
		return "move-arrived"
	}
	return "unknown"
}

// Event is a single notification. Fields are used per Type: X/Y for Tap,
// A/B entity IDs for Contact, A for MoveArrived.
type Event struct {
	Type Type
	X, Y float64
	A, B uint64
}

// Queue is a multi-producer event queue drained by a single consumer once per frame.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 32)}
}

// Push appends an event. Safe for concurrent use.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Drain appends all pending events to dst in push order and empties the queue.
func (q *Queue) Drain(dst []Event) []Event {
	q.mu.Lock()
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	q.mu.Unlock()
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
