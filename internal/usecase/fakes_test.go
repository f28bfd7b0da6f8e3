package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/category"
	"workspark/internal/domain/job"
	"workspark/internal/domain/talent"
	"workspark/internal/domain/user"
	"workspark/internal/repository"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	jobs    []job.Job
	err     error
	queries []discovery.JobQuery
	created []job.CreateJob
	stats   []job.BudgetStat
}

func (f *fakeJobRepo) Query(_ context.Context, q discovery.JobQuery) ([]job.Job, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func (f *fakeJobRepo) QueryJobs(ctx context.Context, q discovery.JobQuery) ([]job.Job, error) {
	return f.Query(ctx, q)
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) Create(_ context.Context, in job.CreateJob) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	f.created = append(f.created, in)
	return job.Job{
		ID:              uuid.New(),
		PosterID:        in.PosterID,
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		BudgetType:      in.BudgetType,
		Currency:        in.Currency,
		ExperienceLevel: in.ExperienceLevel,
		SkillsRequired:  in.SkillsRequired,
		Status:          in.Status,
		CreatedAt:       time.Now(),
	}, nil
}

func (f *fakeJobRepo) ListBudgetStats(context.Context, uuid.UUID) ([]job.BudgetStat, error) {
	return f.stats, nil
}

func (f *fakeJobRepo) CloseExpired(context.Context, time.Time) (int64, error) { return 0, nil }

type fakeCategoryRepo struct {
	items []category.Category
}

func (f *fakeCategoryRepo) ListActive(context.Context) ([]category.Category, error) {
	return f.items, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (category.Category, error) {
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return category.Category{}, category.ErrNotFound
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (category.Category, error) {
	for _, c := range f.items {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return category.Category{}, category.ErrNotFound
}

type fakeTalentRepo struct {
	items   []talent.Talent
	queries []discovery.TalentQuery
}

func (f *fakeTalentRepo) Query(_ context.Context, q discovery.TalentQuery) ([]talent.Talent, error) {
	f.queries = append(f.queries, q)
	return f.items, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, id uuid.UUID) (user.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) InvalidateJobListings(context.Context) error {
	f.calls++
	return nil
}

type fakeNotifier struct{ reasons []string }

func (f *fakeNotifier) NotifyJobsUpdated(reason string) { f.reasons = append(f.reasons, reason) }

// memoryCache is an in-process SearchCache; values round-trip through
// the stored Go value, not JSON.
type memoryCache struct {
	mu      sync.Mutex
	values  map[string][]job.Job
	locks   map[string]bool
	sets    int
	version int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]job.Job{}, locks: map[string]bool{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]job.Job)) = v
	return true, nil
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value.([]job.Job)
	m.sets++
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	delete(m.values, key)
	return nil
}

func (m *memoryCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *memoryCache) ListingVersion(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version, nil
}

func (m *memoryCache) InvalidateJobListings(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version++
	m.values = map[string][]job.Job{}
	m.locks = map[string]bool{}
	return nil
}

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }
