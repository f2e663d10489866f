package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

type testView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*ViewCache[testView], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewViewCache[testView](client, ttl, nil), mr
}

func TestViewCacheSetGetDelete(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "view:1"); ok {
		t.Fatalf("expected a miss on an empty cache")
	}

	if err := cache.Set(ctx, "view:1", &testView{ID: 1, Name: "first"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := cache.Get(ctx, "view:1")
	if !ok || got.ID != 1 || got.Name != "first" {
		t.Fatalf("expected cached view, got %+v ok=%v", got, ok)
	}

	cache.Delete(ctx, "view:1")
	if _, ok := cache.Get(ctx, "view:1"); ok {
		t.Errorf("expected a miss after delete")
	}
}

func TestViewCacheSetIfAbsent(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	cache.Set(ctx, "view:1", &testView{ID: 1, Name: "newer"})
	cache.SetIfAbsent(ctx, "view:1", &testView{ID: 1, Name: "older"})

	got, ok := cache.Get(ctx, "view:1")
	if !ok || got.Name != "newer" {
		t.Errorf("SetIfAbsent must not overwrite, got %+v", got)
	}

	cache.SetIfAbsent(ctx, "view:2", &testView{ID: 2, Name: "warm"})
	if got, ok := cache.Get(ctx, "view:2"); !ok || got.Name != "warm" {
		t.Errorf("SetIfAbsent should fill a missing key, got %+v ok=%v", got, ok)
	}
}

func TestViewCacheTTL(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "view:1", &testView{ID: 1})
	mr.FastForward(2 * time.Minute)

	if _, ok := cache.Get(ctx, "view:1"); ok {
		t.Errorf("expected entry to expire after its TTL")
	}
}

func TestViewCacheCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	if err := mr.Set("view:1", "not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(context.Background(), "view:1"); ok {
		t.Errorf("a corrupt entry should read as a miss")
	}
}

func TestViewCacheSetReportsFailure(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	mr.SetError("ERR connection reset by peer")
	if err := cache.Set(context.Background(), "view:1", &testView{ID: 1}); err == nil {
		t.Errorf("expected Set to return the Redis error")
	}
}
