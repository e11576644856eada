// Package history is the watch-state store: what has been started or completed.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/tubevault/tubevault/log"
)

// State of a single video. Any state may follow any other.
type State string

const (
	Unwatched State = "unwatched"
	Started   State = "started"
	Completed State = "completed"
)

// States lists every valid state.
var States = []State{Unwatched, Started, Completed}

// ParseState validates s.
func ParseState(s string) (State, error) {
	for _, state := range States {
		if string(state) == s {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown watch state %q", s)
}

// Entry is what is stored per video id.
type Entry struct {
	State     State     `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// Change is delivered to subscribers after every persisted mutation.
type Change struct {
	ID    string
	Entry Entry
}

// Persister stores the whole map.
type Persister interface {
	Load() mo.Option[*map[string]*Entry]
	Save(*map[string]*Entry) error
}

// Store owns the watch-state map. Entries are created on first set and never removed.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*Entry
	persister Persister
	now       func() time.Time

	listenersMu sync.Mutex
	listeners   []func(Change)
}

// New loads the persisted map. Unreadable data starts an empty one.
func New(persister Persister) *Store {
	s := &Store{
		entries:   make(map[string]*Entry),
		persister: persister,
		now:       time.Now,
	}

	if stored, ok := persister.Load().Get(); ok && *stored != nil {
		s.entries = *stored
	}

	return s
}

// Get returns the state of id, absent if it was never set.
func (s *Store) Get(id string) mo.Option[State] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return mo.None[State]()
	}
	return mo.Some(entry.State)
}

// Set records state for id and persists the map.
func (s *Store) Set(id string, state State) error {
	s.mu.Lock()
	entry := Entry{State: state, Timestamp: s.now()}
	s.entries[id] = &entry
	err := s.persister.Save(&s.entries)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("save watch state: %w", err)
	}

	log.Debugf("video %s is now %s", id, state)
	s.emit(Change{ID: id, Entry: entry})
	return nil
}

// Toggle flips id between completed and unwatched. A video that was never set,
// or was only started, becomes completed.
func (s *Store) Toggle(id string) (State, error) {
	next := Completed
	if s.Get(id).OrElse(Unwatched) == Completed {
		next = Unwatched
	}

	return next, s.Set(id, next)
}

// All returns a copy of the whole map.
func (s *Store) All() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make(map[string]Entry, len(s.entries))
	for id, entry := range s.entries {
		all[id] = *entry
	}
	return all
}

// Subscribe registers fn for every subsequent change.
func (s *Store) Subscribe(fn func(Change)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, fn)
}

func (s *Store) emit(change Change) {
	s.listenersMu.Lock()
	listeners := append([]func(Change){}, s.listeners...)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}
