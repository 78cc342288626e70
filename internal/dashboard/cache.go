package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/logger"
	"github.com/zachbowman/brandboard-backend/pkg/redis"
)

// SnapshotCache keeps resolved snapshots in Redis keyed by brand id.
// Every method is safe on a nil receiver so the dashboard runs unchanged
// when Redis is not configured. Cache failures are logged and swallowed:
// the database remains the source of truth.
type SnapshotCache struct {
	client *redis.Client
	logg   *logger.Logger
}

// NewSnapshotCache wraps a connected Redis client. Pass nil to disable.
func NewSnapshotCache(client *redis.Client, logg *logger.Logger) *SnapshotCache {
	if client == nil {
		return nil
	}
	return &SnapshotCache{client: client, logg: logg}
}

// Get returns the cached snapshot for the brand when present and decodable.
func (c *SnapshotCache) Get(ctx context.Context, brandID int64) (*Snapshot, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.client.SnapshotKey(brandID))
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logg != nil {
			c.logg.Warn(ctx, "snapshot cache read failed: "+err.Error())
		}
		return nil, false
	}
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		// A stale or corrupt entry is dropped rather than served.
		_ = c.client.Del(ctx, c.client.SnapshotKey(brandID))
		return nil, false
	}
	return &snapshot, true
}

// Put stores the snapshot under the brand's key with the given TTL.
func (c *SnapshotCache) Put(ctx context.Context, brandID int64, snapshot *Snapshot, ttl time.Duration) {
	if c == nil || snapshot == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.client.SnapshotKey(brandID), raw, ttl); err != nil && c.logg != nil {
		c.logg.Warn(ctx, "snapshot cache write failed: "+err.Error())
	}
}

// InvalidateBrand drops the cached snapshot after an entity mutation so the
// next resolution reflects the write.
func (c *SnapshotCache) InvalidateBrand(ctx context.Context, brandID int64) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, c.client.SnapshotKey(brandID)); err != nil && c.logg != nil {
		c.logg.Warn(ctx, "snapshot cache invalidation failed: "+err.Error())
	}
}
