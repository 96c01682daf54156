// File: database/repository/snapshot/redis.go
package snapshotRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"taskweave/models"

	"github.com/go-redis/redis/v8"
)

type redisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore constructs a Redis-backed SnapshotStore.
func NewRedisSnapshotStore(client *redis.Client) SnapshotStore {
	return &redisSnapshotStore{client: client}
}

func (s *redisSnapshotStore) Get(ctx context.Context, userID string) (models.ScheduleSnapshot, error) {
	val, err := s.client.Get(ctx, snapshotKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot mirror: %w", err)
	}

	var snapshot models.ScheduleSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *redisSnapshotStore) Set(ctx context.Context, userID string, snapshot models.ScheduleSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	// No TTL: the mirror lives until the next accepted allocation
	// overwrites it or an explicit invalidate removes it.
	if err := s.client.Set(ctx, snapshotKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot mirror: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot mirror: %w", err)
	}
	return nil
}
