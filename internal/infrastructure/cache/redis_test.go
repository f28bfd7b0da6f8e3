package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"workspark/internal/config"
)

func TestRedis_UnavailableBypasses(t *testing.T) {
	r := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1"}, nil)
	ctx := context.Background()

	if err := r.Ping(ctx); err == nil {
		t.Fatalf("expected ping error for unreachable server")
	}

	var out []string
	hit, err := r.GetJSON(ctx, "jobs:search:x", &out)
	if hit || err != nil {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "jobs:search:x", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("expected silent set, got %v", err)
	}
	if err := r.InvalidateJobListings(ctx); err != nil {
		t.Fatalf("expected silent invalidate, got %v", err)
	}
	if _, err := r.ListingVersion(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("listing version without a server must report ErrUnavailable, got %v", err)
	}
	ok, err := r.SetIfNotExists(ctx, "jobs:lock:x", "1", time.Second)
	if ok || !errors.Is(err, ErrUnavailable) {
		t.Fatalf("lock must not be granted without a server, got ok=%v err=%v", ok, err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if hit, err := r.GetJSON(context.Background(), "k", &struct{}{}); hit || err != nil {
		t.Fatalf("nil cache should miss silently")
	}
	if err := r.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("nil cache delete: %v", err)
	}
}
