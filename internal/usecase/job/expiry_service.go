package job

import (
	"context"
	"log"
	"time"
)

const expiryLockKey = "jobs:expiry:lock"

type expiryStore interface {
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

type expiryCache interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	InvalidateJobListings(ctx context.Context) error
}

type expiryNotifier interface {
	NotifyJobsUpdated(reason string)
}

// ExpiryService closes open jobs whose expires_at has passed so they drop
// out of discovery. With several replicas the cache lock lets one run win.
type ExpiryService struct {
	store    expiryStore
	cache    expiryCache
	notifier expiryNotifier
	logger   *log.Logger
	now      func() time.Time
}

func NewExpiryService(store expiryStore, cache expiryCache, notifier expiryNotifier, logger *log.Logger) *ExpiryService {
	return &ExpiryService{store: store, cache: cache, notifier: notifier, logger: logger, now: time.Now}
}

// Sweep runs one expiry pass and reports how many jobs were closed.
func (s *ExpiryService) Sweep(ctx context.Context) (int64, error) {
	if s == nil || s.store == nil {
		return 0, nil
	}

	if s.cache != nil {
		ok, err := s.cache.SetIfNotExists(ctx, expiryLockKey, "1", 2*time.Minute)
		if err == nil && !ok {
			s.logf("[Expiry] Sweep skipped, lock held elsewhere")
			return 0, nil
		}
		if ok {
			defer func() { _ = s.cache.Delete(context.WithoutCancel(ctx), expiryLockKey) }()
		}
	}

	closed, err := s.store.CloseExpired(ctx, s.now().UTC())
	if err != nil {
		s.logf("[Expiry] Sweep failed err=%v", err)
		return 0, err
	}
	if closed == 0 {
		return 0, nil
	}

	s.logf("[Expiry] Closed expired jobs count=%d", closed)
	if s.cache != nil {
		if err := s.cache.InvalidateJobListings(ctx); err != nil {
			s.logf("[Expiry] Cache invalidate failed err=%v", err)
		}
	}
	if s.notifier != nil {
		s.notifier.NotifyJobsUpdated("jobs_expired")
	}
	return closed, nil
}

func (s *ExpiryService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
