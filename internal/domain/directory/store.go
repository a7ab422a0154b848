package directory

import "sync"

// Store owns the current snapshot and the email status of each row. An
// upload swaps both in one step.
type Store struct {
	mu       sync.RWMutex
	current  *Directory
	statuses map[int]EmailStatus
}

func NewStore() *Store {
	return &Store{statuses: map[int]EmailStatus{}}
}

// Replace installs d and clears every recorded email status.
func (s *Store) Replace(d *Directory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = d
	s.statuses = map[int]EmailStatus{}
}

func (s *Store) Current() (*Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoData
	}
	return s.current, nil
}

// RecordStatus stores the outcome of a send against row i. It is dropped
// when d is no longer the current snapshot.
func (s *Store) RecordStatus(d *Directory, i int, status EmailStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != d {
		return false
	}
	s.statuses[i] = status
	return true
}

func (s *Store) Status(i int) (EmailStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.statuses[i]
	return st, ok
}

// Statuses returns a copy of every recorded status.
func (s *Store) Statuses() map[int]EmailStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]EmailStatus, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}
