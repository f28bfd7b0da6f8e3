package usecase

import (
	"context"
	"log"
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/job"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	// ListingVersion is bumped by every InvalidateJobListings.
	ListingVersion(ctx context.Context) (int64, error)
}

// ListingInvalidator drops cached listings after the job set changed.
type ListingInvalidator interface {
	InvalidateJobListings(ctx context.Context) error
}

// CachedJobSource serves store fetches from the search cache. On a miss the
// first caller takes a short lock and fills the entry; concurrent callers
// wait briefly for it and fall back to the store. Keys carry the listing
// version read before the fetch, so a fill that finishes after an
// invalidation lands under a key nobody reads again.
type CachedJobSource struct {
	next   discovery.JobSource
	cache  SearchCache
	logger *log.Logger

	ttl      time.Duration
	lockTTL  time.Duration
	lockWait time.Duration
	sleep    func(time.Duration)
}

func NewCachedJobSource(next discovery.JobSource, cache SearchCache, logger *log.Logger) *CachedJobSource {
	return &CachedJobSource{
		next:     next,
		cache:    cache,
		logger:   logger,
		lockTTL:  30 * time.Second,
		lockWait: 300 * time.Millisecond,
		sleep:    time.Sleep,
	}
}

func (s *CachedJobSource) QueryJobs(ctx context.Context, q discovery.JobQuery) ([]job.Job, error) {
	if s.cache == nil {
		return s.next.QueryJobs(ctx, q)
	}

	version, err := s.cache.ListingVersion(ctx)
	if err != nil {
		return s.next.QueryJobs(ctx, q)
	}

	key := JobsSearchCacheKey(q, version)
	if jobs, ok := s.lookup(ctx, key); ok {
		return jobs, nil
	}

	lockKey := JobsSearchLockKey(key)
	locked, err := s.cache.SetIfNotExists(ctx, lockKey, "1", s.lockTTL)
	if err == nil && !locked {
		jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
		s.sleep(s.lockWait + jitter)
		if jobs, ok := s.lookup(ctx, key); ok {
			return jobs, nil
		}
		s.logf("[Jobs] Lock wait fallback: %s", lockKey)
	}
	if locked {
		defer func() { _ = s.cache.Delete(context.WithoutCancel(ctx), lockKey) }()
	}

	jobs, err := s.next.QueryJobs(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, jobs, s.ttl); err == nil {
		s.logf("[Jobs] Cache SET: %s", key)
	}
	return jobs, nil
}

func (s *CachedJobSource) lookup(ctx context.Context, key string) ([]job.Job, bool) {
	var cached []job.Job
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		s.logf("[Jobs] Cache HIT: %s", key)
		return cached, true
	}
	s.logf("[Jobs] Cache MISS: %s", key)
	return nil, false
}

func (s *CachedJobSource) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
