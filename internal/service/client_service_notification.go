package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
)

// notificationService caches the list in memory and writes every change
// through to the key-value store.
type notificationService struct {
	kv store.KeyValueStore

	mu    sync.Mutex
	cache []models.Notification

	logger *logger.Logger
}

func NewNotificationService(kv store.KeyValueStore, logger *logger.Logger) NotificationService {
	return &notificationService{kv: kv, logger: logger}
}

func (s *notificationService) Load(ctx context.Context) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = nil
	list, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	return clone(list), nil
}

// loadLocked fills the cache. An absent or undecodable entry is replaced by
// the samples, which are persisted right away.
func (s *notificationService) loadLocked(ctx context.Context) ([]models.Notification, error) {
	if s.cache != nil {
		return s.cache, nil
	}

	raw, err := s.kv.Get(ctx, store.KeyNotifications)
	switch {
	case err == nil:
		var list []models.Notification
		jsonErr := json.Unmarshal([]byte(raw), &list)
		if jsonErr == nil && list != nil {
			s.cache = list
			return s.cache, nil
		}
		s.logger.Warn().Err(jsonErr).Str("func", "*notificationService.loadLocked").Msg("stored notifications are unreadable, reseeding")
	case !errors.Is(err, store.ErrKeyNotFound):
		return nil, fmt.Errorf("read notifications: %w", err)
	}

	s.cache = models.SampleNotifications()
	if err = s.saveLocked(ctx); err != nil {
		return nil, err
	}
	return s.cache, nil
}

func (s *notificationService) saveLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.cache)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	if err = s.kv.Set(ctx, store.KeyNotifications, string(raw)); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

func (s *notificationService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.filter(ctx, func(models.Notification) bool { return true })
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	return s.update(ctx, func(list []models.Notification) ([]models.Notification, error) {
		for i := range list {
			if list[i].ID == id {
				list[i].IsRead = true
				return list, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	})
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	return s.update(ctx, func(list []models.Notification) ([]models.Notification, error) {
		for i := range list {
			list[i].IsRead = true
		}
		return list, nil
	})
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(list []models.Notification) ([]models.Notification, error) {
		for i := range list {
			if list[i].ID == id {
				return append(list[:i:i], list[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	})
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	unread, err := s.filter(ctx, func(n models.Notification) bool { return !n.IsRead })
	return len(unread), err
}

func (s *notificationService) ByCategory(ctx context.Context, category models.NotificationCategory) ([]models.Notification, error) {
	return s.filter(ctx, func(n models.Notification) bool { return n.Category == category })
}

func (s *notificationService) ByPriority(ctx context.Context, priority models.Priority) ([]models.Notification, error) {
	return s.filter(ctx, func(n models.Notification) bool { return n.Priority == priority })
}

func (s *notificationService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}

func (s *notificationService) filter(ctx context.Context, keep func(models.Notification) bool) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Notification, 0, len(list))
	for _, n := range list {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// update applies fn to a copy and commits it only if it was persisted.
func (s *notificationService) update(ctx context.Context, fn func([]models.Notification) ([]models.Notification, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}

	next, err := fn(clone(list))
	if err != nil {
		return err
	}

	prev := s.cache
	s.cache = next
	if err = s.saveLocked(ctx); err != nil {
		s.cache = prev
		return err
	}
	return nil
}

func clone(list []models.Notification) []models.Notification {
	out := make([]models.Notification, len(list))
	copy(out, list)
	return out
}

// FormatRelativeTime renders date relative to now: "Just now" under a
// minute, then minutes, hours and days up to a week, then "2 Jan 2006".
func FormatRelativeTime(date, now time.Time) string {
	diff := now.Sub(date)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute") + " ago"
	case diff < 24*time.Hour:
		return plural(int(diff/time.Hour), "hour") + " ago"
	case diff < 7*24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day") + " ago"
	default:
		return date.Format("2 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
