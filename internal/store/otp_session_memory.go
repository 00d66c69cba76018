package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
)

type memoryOTPEntry struct {
	record    models.OTPRecord
	attempts  int64
	expiresAt time.Time
}

// memoryOTPSessionStore is the [OTPSessionStore] used by otpd when no Redis
// URL is configured. Expired entries are dropped on access or by [Sweeper.Sweep].
type memoryOTPSessionStore struct {
	mu      sync.Mutex
	entries map[string]*memoryOTPEntry
	now     func() time.Time
}

// NewMemoryOTPSessionStore constructs an in-process [OTPSessionStore].
func NewMemoryOTPSessionStore() OTPSessionStore {
	return &memoryOTPSessionStore{
		entries: make(map[string]*memoryOTPEntry),
		now:     time.Now,
	}
}

func (s *memoryOTPSessionStore) Save(_ context.Context, record models.OTPRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[record.SessionID] = &memoryOTPEntry{
		record:    record,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *memoryOTPSessionStore) Get(_ context.Context, sessionID string) (models.OTPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live(sessionID)
	if !ok {
		return models.OTPRecord{}, ErrOTPSessionNotFound
	}
	return entry.record, nil
}

func (s *memoryOTPSessionStore) IncrementAttempts(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live(sessionID)
	if !ok {
		return 0, ErrOTPSessionNotFound
	}
	entry.attempts++
	return entry.attempts, nil
}

func (s *memoryOTPSessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Sweep drops every expired entry and reports how many were removed.
func (s *memoryOTPSessionStore) Sweep(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// live must be called with mu held.
func (s *memoryOTPSessionStore) live(sessionID string) (*memoryOTPEntry, bool) {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, false
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, false
	}
	return entry, true
}
