// Package reminder holds pending reminders and the background loop that
// announces them when due.
package reminder

import (
	"sync"
	"time"
)

// Reminder is immutable once created.
type Reminder struct {
	FireAt  time.Time
	Message string
}

// Store is the only state shared between the interpreter goroutine (Add) and
// the scheduler goroutine (TakeDue). All access goes through one mutex, so an
// append racing a scan is either fully visible to it or not at all.
type Store struct {
	mu      sync.Mutex
	pending []Reminder
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(r Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, r)
}

// TakeDue removes and returns every reminder whose fire time is at or before
// now. Removal happens in the same critical section as the scan, so a
// reminder is handed out exactly once.
func (s *Store) TakeDue(now time.Time) []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []Reminder
	kept := s.pending[:0]
	for _, r := range s.pending {
		if r.FireAt.After(now) {
			kept = append(kept, r)
		} else {
			due = append(due, r)
		}
	}
	s.pending = kept
	return due
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
