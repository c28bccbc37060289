// Package state provides thread-safe session state for the calculator.
package state

import (
	"sync"
	"time"

	"github.com/litescript/sightcalc/internal/astro"
	"github.com/litescript/sightcalc/internal/entry"
)

// Event records the feedback produced by one keypad input.
type Event struct {
	Type      entry.Feedback `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Field     entry.Field    `json:"field"` // Active field before the input
	Input     string         `json:"input"`
}

// Manager serialises keypad input against a single entry.Store and hands
// out consistent snapshots.
type Manager struct {
	mu sync.RWMutex

	store *entry.Store

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents: 50,
	}
}

// NewManager creates a new state manager with an empty store.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		store:     entry.NewStore(),
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
		now:       time.Now,
	}
}

// Apply runs one input against the store and returns its feedback.
func (m *Manager) Apply(in Input) entry.Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.store.Active()

	var fb entry.Feedback
	switch in.Kind {
	case InputDigit:
		fb = m.store.Append(in.Char)
	case InputOperator:
		switch in.Op {
		case OpEnter:
			fb = m.store.Advance()
		case OpClearEntry:
			fb = m.store.ClearActive()
		case OpClearAll:
			fb = m.store.ClearAll()
		case OpFoldMinutes:
			fb = m.store.FoldMinutes()
		}
	case InputSelect:
		fb = m.store.Select(in.Field)
	}

	if fb != entry.FeedbackNone {
		m.addEvent(Event{
			Type:      fb,
			Timestamp: m.now(),
			Field:     before,
			Input:     in.String(),
		})
	}
	return fb
}

// Disable stops keypad input until a field is selected again.
func (m *Manager) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Disable()
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Buffers   entry.Buffers
	Active    entry.Field
	Values    entry.Values
	Reduction astro.Reduction
	Display   astro.Display
	Events    []Event
}

// Snapshot returns a consistent snapshot of current state. The reduction is
// recomputed from the copied buffers on every call.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	buf := m.store.Buffers()
	active := m.store.Active()
	values := m.store.Values()
	events := m.getEventsOrdered()
	m.mu.RUnlock()

	r := astro.Reduce(values.LHA, values.Lat, values.Dec)
	return Snapshot{
		Buffers:   buf,
		Active:    active,
		Values:    values,
		Reduction: r,
		Display:   r.Format(),
		Events:    events,
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// LastEvent returns the most recent event, if any.
func (m *Manager) LastEvent() (Event, bool) {
	recent := m.RecentEvents(1)
	if len(recent) == 0 {
		return Event{}, false
	}
	return recent[0], true
}
