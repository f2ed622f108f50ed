package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-call-recorder/internal/config"
	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/models"
	"github.com/redis/go-redis/v9"
)

const (
	replayKeyPrefix = "callrecorder:replay:"

	// replayInFlight is stored under a key while the request that reserved it
	// is still being handled.
	replayInFlight = "in-flight"
)

// releaseReplayScript deletes a key only while it still holds the in-flight
// marker, so a remembered response is never dropped by a late release.
var releaseReplayScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisReplayStorage is the Redis implementation of [ReplayStorage].
// Responses are stored as JSON under replayKeyPrefix + key; a reserved key
// holds replayInFlight until the response is saved or the reservation is
// released.
type redisReplayStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisReplayStorage connects to Redis and verifies the connection with a
// PING before returning.
func NewRedisReplayStorage(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redisReplayStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Info().
		Str("addr", cfg.Address).
		Int("db", cfg.DB).
		Msg("connected to Redis replay storage")

	return newRedisReplayStorage(client, log), nil
}

func newRedisReplayStorage(client *redis.Client, log *logger.Logger) *redisReplayStorage {
	return &redisReplayStorage{
		client: client,
		logger: log,
	}
}

func (s *redisReplayStorage) ReserveReplay(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	reserved, err := s.client.SetNX(ctx, replayKeyPrefix+key, replayInFlight, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}

	return reserved, nil
}

func (s *redisReplayStorage) GetReplay(ctx context.Context, key string) (models.ReplayResponse, error) {
	val, err := s.client.Get(ctx, replayKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ReplayResponse{}, ErrReplayNotFound
	}
	if err != nil {
		return models.ReplayResponse{}, fmt.Errorf("redis get failed: %w", err)
	}
	if string(val) == replayInFlight {
		return models.ReplayResponse{}, ErrReplayInFlight
	}

	var response models.ReplayResponse
	if err = json.Unmarshal(val, &response); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("dropping undecodable replay response")
		return models.ReplayResponse{}, ErrReplayNotFound
	}

	return response, nil
}

func (s *redisReplayStorage) SaveReplay(ctx context.Context, key string, response models.ReplayResponse, ttl time.Duration) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("json marshal failed: %w", err)
	}

	if err = s.client.Set(ctx, replayKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (s *redisReplayStorage) ReleaseReplay(ctx context.Context, key string) error {
	err := releaseReplayScript.Run(ctx, s.client, []string{replayKeyPrefix + key}, replayInFlight).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release failed: %w", err)
	}

	return nil
}

// Close closes the Redis connection.
func (s *redisReplayStorage) Close() error {
	return s.client.Close()
}

// noopReplayStorage is used when no Redis address is configured: nothing is
// remembered and nothing is ever replayed.
type noopReplayStorage struct{}

func (noopReplayStorage) ReserveReplay(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

func (noopReplayStorage) GetReplay(context.Context, string) (models.ReplayResponse, error) {
	return models.ReplayResponse{}, ErrReplayNotFound
}

func (noopReplayStorage) SaveReplay(context.Context, string, models.ReplayResponse, time.Duration) error {
	return nil
}

func (noopReplayStorage) ReleaseReplay(context.Context, string) error {
	return nil
}
