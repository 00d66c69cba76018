package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

// Well-known key-value entries.
const (
	KeyAuthState     = "auth-state"
	KeyProfileData   = "profile-data"
	KeyLanguage      = "app-language"
	KeyNotifications = "bharat-id-notifications"
)

// kvStore is the SQLite-backed [KeyValueStore] over the "kv" table.
type kvStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueStore constructs a [KeyValueStore] on db.
func NewKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Msg("creating key-value store")
	return &kvStore{db: db, logger: logger, now: time.Now}
}

// Get returns ErrKeyNotFound when key is absent.
func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*kvStore.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	query, args, err := setValueQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*kvStore.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *kvStore) Delete(ctx context.Context, key string) error {
	query, args, err := deleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*kvStore.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
