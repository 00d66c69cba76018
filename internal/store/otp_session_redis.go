package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

// redisOTPSessionStore keeps otpd challenges in Redis with native expiry.
// The record lives under otp:<id> and the attempt counter under
// otp:att:<id>; both share the record TTL.
type redisOTPSessionStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient parses url, connects and pings.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// NewRedisOTPSessionStore constructs an [OTPSessionStore] on client.
func NewRedisOTPSessionStore(client *redis.Client, logger *logger.Logger) OTPSessionStore {
	return &redisOTPSessionStore{client: client, logger: logger}
}

func otpKey(id string) string         { return "otp:" + id }
func otpAttemptsKey(id string) string { return "otp:att:" + id }

func (s *redisOTPSessionStore) Save(ctx context.Context, record models.OTPRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record: %v", ErrRedis, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(record.SessionID), payload, ttl)
		pipe.Set(ctx, otpAttemptsKey(record.SessionID), 0, ttl)
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*redisOTPSessionStore.Save").Msg("error storing otp session")
		return fmt.Errorf("%w: %v", ErrRedis, err)
	}

	return nil
}

func (s *redisOTPSessionStore) Get(ctx context.Context, sessionID string) (models.OTPRecord, error) {
	payload, err := s.client.Get(ctx, otpKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.OTPRecord{}, ErrOTPSessionNotFound
	}
	if err != nil {
		return models.OTPRecord{}, fmt.Errorf("%w: %v", ErrRedis, err)
	}

	var record models.OTPRecord
	if err = json.Unmarshal(payload, &record); err != nil {
		return models.OTPRecord{}, fmt.Errorf("%w: decode record: %v", ErrRedis, err)
	}

	return record, nil
}

// IncrementAttempts returns ErrOTPSessionNotFound when the counter has
// already expired with its record.
func (s *redisOTPSessionStore) IncrementAttempts(ctx context.Context, sessionID string) (int64, error) {
	exists, err := s.client.Exists(ctx, otpAttemptsKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedis, err)
	}
	if exists == 0 {
		return 0, ErrOTPSessionNotFound
	}

	attempts, err := s.client.Incr(ctx, otpAttemptsKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedis, err)
	}

	return attempts, nil
}

func (s *redisOTPSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, otpKey(sessionID), otpAttemptsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedis, err)
	}
	return nil
}
