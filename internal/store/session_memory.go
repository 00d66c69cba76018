package store

import "sync"

const mockOTPKeyPrefix = "mock-otp:"

// MockOTPKey is the session-store key holding the code of an offline session.
func MockOTPKey(sessionID string) string {
	return mockOTPKeyPrefix + sessionID
}

// MemorySessionStore is a mutex-guarded [SessionStore]. Entries live as long
// as the process.
type MemorySessionStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySessionStore constructs an empty [MemorySessionStore].
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string]string)}
}

func (s *MemorySessionStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
