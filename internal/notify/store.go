package notify

import (
	"sync"
	"time"
)

const (
	DefaultCapacity = 200
	DefaultTTL      = 5 * time.Minute
)

// Store keeps the most recent toasts in memory. Entries older than ttl are
// dropped by Prune, and the oldest entries are evicted once capacity is hit.
type Store struct {
	mu       sync.RWMutex
	items    []Toast
	capacity int
	ttl      time.Duration
}

func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{capacity: capacity, ttl: ttl, items: make([]Toast, 0, capacity)}
}

// Add appends t, evicting the oldest toast when full
func (s *Store) Add(t Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) >= s.capacity {
		n := len(s.items) - s.capacity + 1
		s.items = append(s.items[:0], s.items[n:]...)
	}
	s.items = append(s.items, t)
}

// Recent returns unexpired toasts created after since, newest first.
// A zero since returns all of them.
func (s *Store) Recent(since time.Time) []Toast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cutoff := time.Now().Add(-s.ttl)
	out := make([]Toast, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		t := s.items[i]
		if t.CreatedAt.Before(cutoff) {
			continue
		}
		if !since.IsZero() && !t.CreatedAt.After(since) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Prune removes toasts that expired before now and returns how many went
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.ttl)
	kept := s.items[:0]
	for _, t := range s.items {
		if !t.CreatedAt.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	return removed
}

// Clear drops every toast
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = s.items[:0]
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
