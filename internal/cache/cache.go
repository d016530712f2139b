// Package cache keeps the most-rented ranking out of the database between
// changes to finished reservations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const (
	mostRentedKey        = "rentable:most_rented"
	mostRentedVersionKey = "rentable:most_rented:version"
)

// RentalAggregates caches ranked rental counts, one entry per limit.
//
// Every Invalidate bumps a version. A ranking computed after a miss is only
// stored if the version read with the miss is still current, so a ranking
// read from the database before a concurrent invalidation is dropped instead
// of cached.
type RentalAggregates interface {
	// GetMostRented returns ok=false on a miss, together with the version to
	// hand back to SetMostRented.
	GetMostRented(ctx context.Context, limit int) (counts []domain.EquipmentRentalCount, version int64, ok bool, err error)
	// SetMostRented is a no-op when the cache was invalidated after version was read.
	SetMostRented(ctx context.Context, version int64, limit int, counts []domain.EquipmentRentalCount) error
	// Invalidate drops every cached ranking.
	Invalidate(ctx context.Context) error
}

type redisAggregates struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAggregates stores rankings in a single Redis hash keyed by limit so
// one DEL clears them all.
func NewRedisAggregates(client *redis.Client, ttl time.Duration) RentalAggregates {
	return &redisAggregates{client: client, ttl: ttl}
}

// versionOf treats a missing version key as version 0.
func versionOf(cmd *redis.StringCmd) (int64, error) {
	v, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *redisAggregates) GetMostRented(ctx context.Context, limit int) ([]domain.EquipmentRentalCount, int64, bool, error) {
	logger.ExternalServiceCall("redis", "HGET", "key", mostRentedKey, "limit", limit)
	var hget *redis.StringCmd
	var version *redis.StringCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		hget = pipe.HGet(ctx, mostRentedKey, strconv.Itoa(limit))
		version = pipe.Get(ctx, mostRentedVersionKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.ExternalServiceResult("redis", "HGET", err)
		return nil, 0, false, fmt.Errorf("read most rented cache: %w", err)
	}

	ver, err := versionOf(version)
	if err != nil {
		return nil, 0, false, fmt.Errorf("read most rented cache version: %w", err)
	}
	raw, err := hget.Bytes()
	if errors.Is(err, redis.Nil) {
		logger.ExternalServiceResult("redis", "HGET", nil, "hit", false, "version", ver)
		return nil, ver, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("read most rented cache: %w", err)
	}

	var counts []domain.EquipmentRentalCount
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, ver, false, fmt.Errorf("decode most rented cache: %w", err)
	}
	logger.ExternalServiceResult("redis", "HGET", nil, "hit", true)
	return counts, ver, true, nil
}

// SetMostRented writes under WATCH on the version key. A version bump
// between the read and the write aborts the transaction and the ranking is
// simply not cached.
func (c *redisAggregates) SetMostRented(ctx context.Context, version int64, limit int, counts []domain.EquipmentRentalCount) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encode most rented cache: %w", err)
	}
	logger.ExternalServiceCall("redis", "HSET", "key", mostRentedKey, "limit", limit, "version", version)
	stale := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := versionOf(tx.Get(ctx, mostRentedVersionKey))
		if err != nil {
			return err
		}
		if current != version {
			stale = true
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, mostRentedKey, strconv.Itoa(limit), raw)
			pipe.Expire(ctx, mostRentedKey, c.ttl)
			return nil
		})
		return err
	}, mostRentedVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		stale, err = true, nil
	}
	logger.ExternalServiceResult("redis", "HSET", err, "stale", stale)
	if err != nil {
		return fmt.Errorf("write most rented cache: %w", err)
	}
	return nil
}

func (c *redisAggregates) Invalidate(ctx context.Context) error {
	logger.ExternalServiceCall("redis", "DEL", "key", mostRentedKey)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, mostRentedVersionKey)
		pipe.Del(ctx, mostRentedKey)
		return nil
	})
	logger.ExternalServiceResult("redis", "DEL", err)
	if err != nil {
		return fmt.Errorf("invalidate most rented cache: %w", err)
	}
	return nil
}

type noopAggregates struct{}

// NewNoop returns a cache that never hits.
func NewNoop() RentalAggregates {
	return noopAggregates{}
}

func (noopAggregates) GetMostRented(context.Context, int) ([]domain.EquipmentRentalCount, int64, bool, error) {
	return nil, 0, false, nil
}

func (noopAggregates) SetMostRented(context.Context, int64, int, []domain.EquipmentRentalCount) error {
	return nil
}

func (noopAggregates) Invalidate(context.Context) error { return nil }

// Connect builds a Redis client and pings it. On failure the client is
// closed and the error returned so the caller can fall back to NewNoop.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}
