package marvel

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestCacheFetchBytesPopulatesAndHits(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(client, time.Minute)

	calls := 0
	loader := func(ctx context.Context) ([]byte, error) {
		calls++
		return []byte(`{"data":{"results":[]}}`), nil
	}

	first, err := cache.FetchBytes(context.Background(), "marvel:/characters?limit=10", loader)
	if err != nil {
		t.Fatalf("first fetch returned error: %v", err)
	}
	second, err := cache.FetchBytes(context.Background(), "marvel:/characters?limit=10", loader)
	if err != nil {
		t.Fatalf("second fetch returned error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("cache returned different payloads")
	}
	if calls != 1 {
		t.Fatalf("expected one loader call got %d", calls)
	}
}

func TestCacheFetchBytesExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(client, time.Second)

	calls := 0
	loader := func(ctx context.Context) ([]byte, error) {
		calls++
		return []byte("payload"), nil
	}

	if _, err := cache.FetchBytes(context.Background(), "key", loader); err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, err := cache.FetchBytes(context.Background(), "key", loader); err != nil {
		t.Fatalf("fetch after expiry returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected loader to run again after expiry, got %d calls", calls)
	}
}

func TestCacheNilClientPassesThrough(t *testing.T) {
	cache := NewCache(nil, time.Minute)
	calls := 0
	loader := func(ctx context.Context) ([]byte, error) {
		calls++
		return []byte("direct"), nil
	}
	for i := 0; i < 2; i++ {
		body, err := cache.FetchBytes(context.Background(), "key", loader)
		if err != nil {
			t.Fatalf("fetch returned error: %v", err)
		}
		if string(body) != "direct" {
			t.Fatalf("unexpected payload %q", body)
		}
	}
	if calls != 2 {
		t.Fatalf("expected loader on every call without a client, got %d", calls)
	}
}
