package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ethlens/internal/model"
)

// RedisStore caches transaction lists in Redis, sharing entries across
// processes. Expiry uses Redis TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore connects to Redis and verifies the connection before
// returning a store.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl, logger: logger}, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, address model.Address, limit int) ([]model.Transaction, bool) {
	key := entryKey(address)

	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("failed to read cache entry", "key", key, "err", err)
		return nil, false
	}

	var txs []model.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		s.logger.Warn("discarding corrupt cache entry", "key", key, "err", err)
		return nil, false
	}

	return fit(txs, limit)
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, address model.Address, txs []model.Transaction) {
	data, err := json.Marshal(txs)
	if err != nil {
		s.logger.Warn("failed to encode cache entry", "err", err)
		return
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0 // no expiry
	}
	if err := s.client.Set(ctx, entryKey(address), data, ttl).Err(); err != nil {
		s.logger.Warn("failed to write cache entry", "err", err)
	}
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func entryKey(address model.Address) string {
	return "ethlens:txs:" + address.Normalized()
}
