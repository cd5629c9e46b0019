package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/constants"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// spotFenceTTL bounds how long a database read started before an
// invalidation may still try to write its copy back.
const spotFenceTTL = 5 * time.Second

// Get returns nil, nil on a cache miss
func (c *SpotCache) Get(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error) {
	raw, err := c.redisClient.Get(ctx, fmt.Sprintf(constants.KeyParkingSpot, id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached spot: %w", err)
	}

	var s models.ParkingSpot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to decode cached spot: %w", err)
	}
	return &s, nil
}

// Set caches s for the configured TTL. It skips the write while the spot's
// fence is up, so a copy read before the last invalidation is never stored.
func (c *SpotCache) Set(ctx context.Context, s *models.ParkingSpot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode spot: %w", err)
	}

	key := fmt.Sprintf(constants.KeyParkingSpot, s.ID)
	fence := fmt.Sprintf(constants.KeyParkingSpotFence, s.ID)

	err = c.redisClient.Client.Watch(ctx, func(tx *redis.Tx) error {
		fenced, err := tx.Exists(ctx, fence).Result()
		if err != nil {
			return err
		}
		if fenced > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.cfg.Redis.SpotTTL)
			return nil
		})
		return err
	}, fence)
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("failed to cache spot: %w", err)
	}
	return nil
}

// Invalidate drops the cached copy of a spot and raises its fence
func (c *SpotCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, fmt.Sprintf(constants.KeyParkingSpotFence, id), 1, spotFenceTTL)
		pipe.Del(ctx, fmt.Sprintf(constants.KeyParkingSpot, id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached spot: %w", err)
	}
	return nil
}
