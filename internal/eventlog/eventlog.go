// Package eventlog records and broadcasts the virtual server's operational
// narration. Entries live in a bounded most-recent-first ring; observers
// receive every new entry as a fire-and-forget broadcast.
package eventlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Capacity is the maximum number of retained entries. Appending beyond it
// evicts the oldest entry.
const Capacity = 50

// Entry is a timestamped narration of an engine operation.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Observer receives new entries. Observers are invoked synchronously on the
// appending goroutine and must not block; delivery is best-effort with no
// queueing or acknowledgement.
type Observer func(Entry)

// Option configures a Log.
type Option func(*Log)

// WithNow overrides the wall clock used to timestamp entries.
// Tests substitute a deterministic clock.
func WithNow(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// Log is a bounded, most-recent-first activity log.
//
// Logging is a local side channel: it is never required for correctness of
// the store, and no append is retried or suspended.
//
// Thread-safety: all methods are safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	entries   []Entry // most recent first
	observers map[int]Observer
	nextObs   int
	now       func() time.Time
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{
		observers: make(map[int]Observer),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records a message with the current wall-clock time and a fresh
// random id, prepends it, truncates the ring to Capacity, and notifies all
// registered observers with the new entry.
func (l *Log) Append(message string) Entry {
	l.mu.Lock()

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: l.now(),
		Message:   message,
	}

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}

	// Snapshot observers so a callback can re-enter the log (Entries,
	// Subscribe) without deadlocking.
	observers := make([]Observer, 0, len(l.observers))
	for _, obs := range l.observers {
		observers = append(observers, obs)
	}
	l.mu.Unlock()

	for _, obs := range observers {
		obs(entry)
	}

	return entry
}

// Entries returns a copy of the retained entries, most recent first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Subscribe registers an observer for future entries and returns a cancel
// function that unregisters it. Entries appended before Subscribe are not
// replayed.
func (l *Log) Subscribe(obs Observer) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextObs
	l.nextObs++
	l.observers[id] = obs

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.observers, id)
	}
}
