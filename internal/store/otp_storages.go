package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

// OTPStorages holds otpd persistence.
type OTPStorages struct {
	Sessions OTPSessionStore
	// Sweeper is set for the in-memory store only; Redis expires keys itself.
	Sweeper Sweeper

	redis *redis.Client
}

// NewOTPStorages selects Redis when cfg.RedisURL is set and the in-memory
// store otherwise.
func NewOTPStorages(ctx context.Context, cfg *config.OTPServerConfig, logger *logger.Logger) (*OTPStorages, error) {
	if cfg.RedisURL == "" {
		logger.Warn().Str("func", "NewOTPStorages").Msg("no redis url configured, otp sessions are kept in memory")
		sessions := NewMemoryOTPSessionStore()
		return &OTPStorages{Sessions: sessions, Sweeper: sessions.(Sweeper)}, nil
	}

	client, err := NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	return &OTPStorages{
		Sessions: NewRedisOTPSessionStore(client, logger),
		redis:    client,
	}, nil
}

// Close releases the Redis client, if any.
func (s *OTPStorages) Close() error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Close()
}
