package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestMemorySessionStore_Concurrent(t *testing.T) {
	s := NewMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := MockOTPKey(fmt.Sprintf("mock_%d", i))
			s.Put(key, "123456")
			v, ok := s.Get(key)
			assert.True(t, ok)
			assert.Equal(t, "123456", v)
		}(i)
	}
	wg.Wait()

	s.Delete(MockOTPKey("mock_0"))
	_, ok := s.Get(MockOTPKey("mock_0"))
	assert.False(t, ok)
	assert.Equal(t, "mock-otp:abc", MockOTPKey("abc"))
}

func TestFileExporter_DownloadJSON(t *testing.T) {
	dir := t.TempDir()
	e, err := NewFileExporter(filepath.Join(dir, "exports"), logger.Nop())
	require.NoError(t, err)

	path, err := e.DownloadJSON("../../profile.json", map[string]string{"phone": "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports", "profile.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"phone\": \"9876543210\"\n}", string(raw))

	entries, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileExporter_InvalidName(t *testing.T) {
	e, err := NewFileExporter(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "/"} {
		_, err := e.WriteFile(name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidFileName, name)
	}
}

func otpStoresUnderTest(t *testing.T) map[string]OTPSessionStore {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return map[string]OTPSessionStore{
		"redis":  NewRedisOTPSessionStore(client, logger.Nop()),
		"memory": NewMemoryOTPSessionStore(),
	}
}

func TestOTPSessionStore_Lifecycle(t *testing.T) {
	for name, s := range otpStoresUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rec := models.OTPRecord{SessionID: "sess-1", Phone: "+919876543210", CodeHash: "digest", IssuedAt: time.Now().UTC()}

			_, err := s.Get(ctx, rec.SessionID)
			require.ErrorIs(t, err, ErrOTPSessionNotFound)
			_, err = s.IncrementAttempts(ctx, rec.SessionID)
			require.ErrorIs(t, err, ErrOTPSessionNotFound)

			require.NoError(t, s.Save(ctx, rec, time.Minute))

			got, err := s.Get(ctx, rec.SessionID)
			require.NoError(t, err)
			assert.Equal(t, rec.Phone, got.Phone)
			assert.Equal(t, rec.CodeHash, got.CodeHash)

			n, err := s.IncrementAttempts(ctx, rec.SessionID)
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)
			n, err = s.IncrementAttempts(ctx, rec.SessionID)
			require.NoError(t, err)
			assert.EqualValues(t, 2, n)

			require.NoError(t, s.Delete(ctx, rec.SessionID))
			_, err = s.Get(ctx, rec.SessionID)
			assert.ErrorIs(t, err, ErrOTPSessionNotFound)
		})
	}
}

func TestRedisOTPSessionStore_Expires(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	s := NewRedisOTPSessionStore(client, logger.Nop())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, models.OTPRecord{SessionID: "s"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err = s.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrOTPSessionNotFound)
	_, err = s.IncrementAttempts(ctx, "s")
	assert.ErrorIs(t, err, ErrOTPSessionNotFound)
}

func TestMemoryOTPSessionStore_Expires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &memoryOTPSessionStore{entries: map[string]*memoryOTPEntry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.OTPRecord{SessionID: "s"}, time.Minute))
	now = now.Add(time.Minute)

	_, err := s.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrOTPSessionNotFound)
	assert.Empty(t, s.entries)
}

func TestMemoryOTPSessionStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &memoryOTPSessionStore{entries: map[string]*memoryOTPEntry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.OTPRecord{SessionID: "short"}, time.Minute))
	require.NoError(t, s.Save(ctx, models.OTPRecord{SessionID: "long"}, time.Hour))
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, s.Sweep(ctx))
	assert.Len(t, s.entries, 1)
	assert.Zero(t, s.Sweep(ctx))
}

func TestNewOTPStorages_MemoryHasSweeper(t *testing.T) {
	storages, err := NewOTPStorages(context.Background(), &config.OTPServerConfig{}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, storages.Sweeper)
	assert.NoError(t, storages.Close())
}

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "")
	assert.Error(t, err)

	_, err = NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
