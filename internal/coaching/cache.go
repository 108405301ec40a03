package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/velocoach/velocoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

var ErrSnapshotNotCached = errors.New("snapshot not cached")

// SnapshotCache keeps recently built context snapshots in redis so
// repeated coaching requests within the TTL skip the synthesis work.
type SnapshotCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSnapshotCache(redisClient *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func snapshotCacheKey(athleteID int) string {
	return fmt.Sprintf("context:%d", athleteID)
}

func (c *SnapshotCache) Get(ctx context.Context, athleteID int) (*Snapshot, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coaching.snapshotCache.get")
	defer span.End()

	snapshotJson, err := c.redisClient.Get(ctx, snapshotCacheKey(athleteID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotCached
		}
		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(snapshotJson), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal cached snapshot: %w", err)
	}
	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, athleteID int, snapshot *Snapshot) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coaching.snapshotCache.set")
	defer span.End()

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return c.redisClient.Set(ctx, snapshotCacheKey(athleteID), snapshotJson, c.ttl).Err()
}

// Invalidate drops the cached snapshot, used when new rides land and
// the cached context would go stale ahead of its TTL.
func (c *SnapshotCache) Invalidate(ctx context.Context, athleteID int) error {
	return c.redisClient.Del(ctx, snapshotCacheKey(athleteID)).Err()
}
