package session

import "sync"

// Store holds the current credential: an opaque bearer token obtained from
// login or registration.
//
// Contract:
//   - Get: pure read, no side effects.
//   - Set: overwrites any existing credential.
//   - Clear: idempotent, safe to call when no credential is held.
//   - IsAuthenticated: true iff a credential is present. This is a presence
//     check only, not a validity check.
type Store interface {
	Get() (string, bool)
	Set(token string) error
	Clear() error
	IsAuthenticated() bool
}

// MemoryStore keeps the credential in memory only; it is lost when the
// process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.present
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.present = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.present = false
	return nil
}

func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present
}
