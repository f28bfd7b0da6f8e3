package job

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	closed int64
	err    error
	calls  int
	at     time.Time
}

func (f *fakeStore) CloseExpired(_ context.Context, now time.Time) (int64, error) {
	f.calls++
	f.at = now
	return f.closed, f.err
}

type fakeCache struct {
	lockHeld    bool
	invalidated int
	deleted     []string
}

func (f *fakeCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return !f.lockHeld, nil
}
func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
func (f *fakeCache) InvalidateJobListings(context.Context) error {
	f.invalidated++
	return nil
}

type fakeNotifier struct{ reasons []string }

func (f *fakeNotifier) NotifyJobsUpdated(reason string) { f.reasons = append(f.reasons, reason) }

func TestExpiryService_ClosesAndInvalidates(t *testing.T) {
	store := &fakeStore{closed: 3}
	cache := &fakeCache{}
	notifier := &fakeNotifier{}
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	svc := NewExpiryService(store, cache, notifier, nil)
	svc.now = func() time.Time { return now }

	n, err := svc.Sweep(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("expected 3 closed, got %d err=%v", n, err)
	}
	if !store.at.Equal(now) {
		t.Fatalf("store saw %s, want %s", store.at, now)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected one invalidation, got %d", cache.invalidated)
	}
	if len(notifier.reasons) != 1 || notifier.reasons[0] != "jobs_expired" {
		t.Fatalf("unexpected notifications %v", notifier.reasons)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != expiryLockKey {
		t.Fatalf("lock not released: %v", cache.deleted)
	}
}

func TestExpiryService_NothingExpired(t *testing.T) {
	cache := &fakeCache{}
	notifier := &fakeNotifier{}
	svc := NewExpiryService(&fakeStore{}, cache, notifier, nil)

	if n, err := svc.Sweep(context.Background()); n != 0 || err != nil {
		t.Fatalf("unexpected result %d %v", n, err)
	}
	if cache.invalidated != 0 || len(notifier.reasons) != 0 {
		t.Fatalf("no side effects expected when nothing closed")
	}
}

func TestExpiryService_LockHeld(t *testing.T) {
	store := &fakeStore{closed: 1}
	svc := NewExpiryService(store, &fakeCache{lockHeld: true}, nil, nil)

	if n, err := svc.Sweep(context.Background()); n != 0 || err != nil {
		t.Fatalf("unexpected result %d %v", n, err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be touched while another sweep runs")
	}
}

func TestExpiryService_StoreError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewExpiryService(&fakeStore{err: boom}, nil, nil, nil)
	if _, err := svc.Sweep(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

type downCache struct{ fakeCache }

func (d *downCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return false, errors.New("redis unavailable")
}

func TestExpiryService_RunsWithoutLockWhenCacheDown(t *testing.T) {
	store := &fakeStore{closed: 2}
	cache := &downCache{}
	svc := NewExpiryService(store, cache, nil, nil)

	if n, err := svc.Sweep(context.Background()); n != 2 || err != nil {
		t.Fatalf("unexpected result %d %v", n, err)
	}
	if len(cache.deleted) != 0 {
		t.Fatalf("no lock was taken, none must be released")
	}
}
