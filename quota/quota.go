// Package quota tracks the daily call budget of the hosting platform's API.
//
// The counter is persisted after every mutation and zeroed the first time it is
// touched after local midnight. The exceeded flag lives only in memory: it is raised
// when the platform rejects a call for quota reasons and cleared by the next reset.
package quota

import (
	"errors"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/tubevault/tubevault/log"
)

// DefaultLimit is the platform's daily budget in cost units.
const DefaultLimit = 10000

// ErrExceeded is returned for every call attempted after the budget ran out.
var ErrExceeded = errors.New("api quota exceeded")

// State is the persisted counter.
type State struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	LastReset time.Time `json:"lastReset"`
}

// Usage is a point-in-time view handed to subscribers.
type Usage struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Exceeded  bool      `json:"exceeded"`
	LastReset time.Time `json:"lastReset"`
}

// EventKind distinguishes notifications.
type EventKind int

const (
	// Charged follows every successful charge.
	Charged EventKind = iota
	// Exceeded follows the transition into the exceeded state.
	Exceeded
)

// Event is delivered to subscribers synchronously, outside of the tracker's lock.
type Event struct {
	Kind  EventKind
	Usage Usage
}

// Persister stores the counter.
type Persister interface {
	Load() mo.Option[*State]
	Save(*State) error
}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	state     State
	exceeded  bool
	persister Persister
	now       func() time.Time

	listenersMu sync.Mutex
	listeners   map[int]func(Event)
	nextID      int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New returns a tracker with a fresh state. Call Load to restore the persisted one.
func New(persister Persister, options ...Option) *Tracker {
	t := &Tracker{
		persister: persister,
		now:       time.Now,
		listeners: make(map[int]func(Event)),
	}

	for _, option := range options {
		option(t)
	}

	t.state = State{Limit: DefaultLimit, LastReset: midnight(t.now())}
	return t
}

// Load restores the persisted counter, resetting it when it predates today's midnight.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	stored, found := t.persister.Load().Get()
	if found {
		t.state = *stored
		if t.state.Limit <= 0 {
			t.state.Limit = DefaultLimit
		}
	}

	if t.rollover() || found {
		return nil
	}

	return t.persister.Save(&t.state)
}

// Charge adds cost to the counter and persists it. Going past the limit does not
// by itself mark the quota exceeded.
func (t *Tracker) Charge(cost int) error {
	t.mu.Lock()
	t.rollover()
	t.state.Used += cost
	err := t.persister.Save(&t.state)
	usage := t.usage()
	t.mu.Unlock()

	if err != nil {
		return err
	}

	log.Debugf("quota charged %d, used %d/%d", cost, usage.Used, usage.Limit)
	t.emit(Event{Kind: Charged, Usage: usage})
	return nil
}

// MarkExceeded records a quota rejection by the platform. Only the first call
// after a reset notifies subscribers.
func (t *Tracker) MarkExceeded() {
	t.mu.Lock()
	t.rollover()
	first := !t.exceeded
	t.exceeded = true
	usage := t.usage()
	t.mu.Unlock()

	if first {
		log.Warnf("quota exceeded at %d/%d", usage.Used, usage.Limit)
		t.emit(Event{Kind: Exceeded, Usage: usage})
	}
}

// Exceeded reports whether calls must fail fast.
func (t *Tracker) Exceeded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollover()
	return t.exceeded
}

// Check returns ErrExceeded once the quota has been exhausted.
func (t *Tracker) Check() error {
	if t.Exceeded() {
		return ErrExceeded
	}
	return nil
}

// Usage returns the current counter.
func (t *Tracker) Usage() Usage {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.usage()
}

// Subscribe registers fn for every subsequent event and returns its cancellation.
func (t *Tracker) Subscribe(fn func(Event)) (unsubscribe func()) {
	t.listenersMu.Lock()
	defer t.listenersMu.Unlock()

	id := t.nextID
	t.nextID++
	t.listeners[id] = fn

	return func() {
		t.listenersMu.Lock()
		defer t.listenersMu.Unlock()
		delete(t.listeners, id)
	}
}

func (t *Tracker) emit(event Event) {
	t.listenersMu.Lock()
	fns := make([]func(Event), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.listenersMu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

// rollover zeroes the counter once per day. Must be called with mu held.
func (t *Tracker) rollover() bool {
	today := midnight(t.now())
	if !t.state.LastReset.Before(today) {
		return false
	}

	log.Infof("quota reset, %d units were used since %s", t.state.Used, t.state.LastReset.Format(time.DateOnly))
	t.state = State{Limit: t.state.Limit, LastReset: today}
	t.exceeded = false

	if err := t.persister.Save(&t.state); err != nil {
		log.Errorf("save quota: %v", err)
	}
	return true
}

func (t *Tracker) usage() Usage {
	return Usage{
		Used:      t.state.Used,
		Limit:     t.state.Limit,
		Remaining: t.state.Limit - t.state.Used,
		Exceeded:  t.exceeded,
		LastReset: t.state.LastReset,
	}
}

func midnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
