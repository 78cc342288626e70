package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
	dels   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Ping(ctx context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	switch v := value.(type) {
	case string:
		f.values[key] = v
	case []byte:
		f.values[key] = string(v)
	}
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *goredis.StringCmd {
	value, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(value, nil)
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	for _, key := range keys {
		delete(f.values, key)
		f.dels = append(f.dels, key)
	}
	return goredis.NewIntResult(int64(len(keys)), nil)
}

func TestSnapshotKeyNamespacing(t *testing.T) {
	client := &Client{store: newFakeStore()}
	if got := client.SnapshotKey(42); got != "bb:snapshot:brand:42" {
		t.Fatalf("key = %q", got)
	}
}

func TestSetGetDelRoundTrip(t *testing.T) {
	store := newFakeStore()
	client := &Client{store: store}
	ctx := context.Background()

	key := client.SnapshotKey(1)
	if err := client.Set(ctx, key, "payload", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "payload" {
		t.Fatalf("value = %q", value)
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := client.Get(ctx, key); !errors.Is(err, Nil) {
		t.Fatalf("expected Nil after delete, got %v", err)
	}
}

func TestNilClientIsRejected(t *testing.T) {
	var client *Client
	if err := client.Set(context.Background(), "k", "v", 0); err == nil {
		t.Fatal("expected error from nil client")
	}
	if _, err := client.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error from nil client")
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error from nil client")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on nil client must be a no-op, got %v", err)
	}
}
