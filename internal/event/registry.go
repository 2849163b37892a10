// Package event keeps the in-memory registry of scheduled raid events.
// Events live for the process lifetime only; a restart discards them.
package event

import (
	"math/rand"
	"sync"
	"time"
)

const idLength = 6

// Participant identifies a user who joined an event.
type Participant struct {
	ID   string
	Name string
}

// ScheduledEvent is a user-created event with joinable membership.
type ScheduledEvent struct {
	ID           string
	Name         string
	When         string // free text, not parsed
	Description  string
	CreatorID    string
	CreatorName  string
	Participants []Participant
	CreatedAt    time.Time
}

// Outcome reports the result of a registry operation. Outcomes are routine
// control flow, not errors; callers render a distinct message per value.
type Outcome int

const (
	JoinedNew Outcome = iota
	AlreadyJoined
	Left
	NotJoined
	Cancelled
	Forbidden
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case JoinedNew:
		return "joined"
	case AlreadyJoined:
		return "already joined"
	case Left:
		return "left"
	case NotJoined:
		return "not joined"
	case Cancelled:
		return "cancelled"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Registry is a lock-guarded store of scheduled events. All operations
// serialize on a single mutex; returned events are copies, so callers
// never observe a partially mutated record.
type Registry struct {
	mu     sync.Mutex
	events map[string]*ScheduledEvent
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{events: make(map[string]*ScheduledEvent)}
}

// Create inserts a new event with an empty participant set and returns a
// snapshot of it. The id is regenerated until free, so a live registry
// never holds two events with the same id.
func (r *Registry) Create(name, when, description, creatorID, creatorName string) ScheduledEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := randomID(idLength)
	for _, exists := r.events[id]; exists; _, exists = r.events[id] {
		id = randomID(idLength)
	}

	ev := &ScheduledEvent{
		ID:          id,
		Name:        name,
		When:        when,
		Description: description,
		CreatorID:   creatorID,
		CreatorName: creatorName,
		CreatedAt:   time.Now(),
	}
	r.events[id] = ev
	r.order = append(r.order, id)

	return cloneEvent(ev)
}

// Join adds the user to the event. Joining twice is a no-op reported
// as AlreadyJoined.
func (r *Registry) Join(id, userID, userName string) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[id]
	if !ok {
		return NotFound
	}
	for _, p := range ev.Participants {
		if p.ID == userID {
			return AlreadyJoined
		}
	}
	ev.Participants = append(ev.Participants, Participant{ID: userID, Name: userName})
	return JoinedNew
}

// Leave removes the user from the event. Leaving an event the user never
// joined is a no-op reported as NotJoined.
func (r *Registry) Leave(id, userID string) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[id]
	if !ok {
		return NotFound
	}
	for i, p := range ev.Participants {
		if p.ID == userID {
			ev.Participants = append(ev.Participants[:i], ev.Participants[i+1:]...)
			return Left
		}
	}
	return NotJoined
}

// Cancel removes the event and reports the participant count it had.
// Only the creator or a privileged requester may cancel.
func (r *Registry) Cancel(id, requesterID string, privileged bool) (Outcome, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[id]
	if !ok {
		return NotFound, 0
	}
	if ev.CreatorID != requesterID && !privileged {
		return Forbidden, 0
	}

	count := len(ev.Participants)
	delete(r.events, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return Cancelled, count
}

// Get returns a snapshot of one event.
func (r *Registry) Get(id string) (ScheduledEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.events[id]
	if !ok {
		return ScheduledEvent{}, false
	}
	return cloneEvent(ev), true
}

// List returns snapshots of all live events in creation order.
func (r *Registry) List() []ScheduledEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ScheduledEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEvent(r.events[id]))
	}
	return out
}

func cloneEvent(ev *ScheduledEvent) ScheduledEvent {
	out := *ev
	out.Participants = append([]Participant(nil), ev.Participants...)
	return out
}

func randomID(length int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
