package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

// Session is the app context of the signed-in user. It holds the auth state
// mirrored from the store and owns the per-user caches that must not outlive
// a sign-out: the notification list and the assistant history.
type Session struct {
	mu    sync.RWMutex
	state models.AuthState

	notifications NotificationService
	assistant     AssistantService

	logger *logger.Logger
}

func NewSession(notifications NotificationService, assistant AssistantService, logger *logger.Logger) *Session {
	return &Session{notifications: notifications, assistant: assistant, logger: logger}
}

// Load records state and warms the notification cache. A cache failure is
// logged and does not block the session.
func (s *Session) Load(ctx context.Context, state models.AuthState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	if !state.IsAuthenticated || s.notifications == nil {
		return
	}
	if _, err := s.notifications.Load(ctx); err != nil {
		s.logger.Err(err).Str("func", "*Session.Load").Msg("failed to load notifications")
	}
}

// Teardown forgets the auth state and every per-user cache.
func (s *Session) Teardown() {
	s.mu.Lock()
	s.state = models.AuthState{}
	s.mu.Unlock()

	if s.notifications != nil {
		s.notifications.Reset()
	}
	if s.assistant != nil {
		s.assistant.ClearHistory()
	}
}

func (s *Session) State() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State().IsAuthenticated
}
