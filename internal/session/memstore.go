package session

import "sync"

// MemStore is the process-local session mirror, keyed by user ID. It is
// the third storage location cleared on logout alongside the cookie and
// the local store.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]Auth
}

// NewMemStore returns an empty mirror.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]Auth)}
}

// Save stores the payload for its user.
func (s *MemStore) Save(auth Auth) {
	if auth.User.ID == "" {
		return
	}
	s.mu.Lock()
	s.m[auth.User.ID] = auth
	s.mu.Unlock()
}

// Load retrieves the payload for a user.
func (s *MemStore) Load(userID string) (Auth, bool) {
	s.mu.RLock()
	auth, ok := s.m[userID]
	s.mu.RUnlock()
	return auth, ok
}

// Delete removes the payload for a user.
func (s *MemStore) Delete(userID string) {
	s.mu.Lock()
	delete(s.m, userID)
	s.mu.Unlock()
}
