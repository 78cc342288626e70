package dashboard

import (
	"context"
	"testing"
	"time"
)

// A nil cache is how the dashboard runs when Redis is not configured;
// every operation must be a silent no-op.
func TestNilSnapshotCacheIsSafe(t *testing.T) {
	cache := NewSnapshotCache(nil, nil)
	if cache != nil {
		t.Fatal("nil client must produce a nil cache")
	}

	ctx := context.Background()
	if _, ok := cache.Get(ctx, 1); ok {
		t.Fatal("nil cache must always miss")
	}
	cache.Put(ctx, 1, &Snapshot{}, time.Minute)
	cache.InvalidateBrand(ctx, 1)
}
