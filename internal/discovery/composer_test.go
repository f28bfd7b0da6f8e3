package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"workspark/internal/domain/job"
)

// gatedSource blocks each query on a per-search-text gate so tests control
// the order in which fetches resolve.
type gatedSource struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	results map[string][]job.Job
	errs    map[string]error
	calls   []JobQuery
}

func newGatedSource() *gatedSource {
	return &gatedSource{
		gates:   map[string]chan struct{}{},
		results: map[string][]job.Job{},
		errs:    map[string]error{},
	}
}

func (s *gatedSource) gate(text string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := make(chan struct{})
	s.gates[text] = g
	return g
}

func (s *gatedSource) QueryJobs(ctx context.Context, q JobQuery) ([]job.Job, error) {
	s.mu.Lock()
	s.calls = append(s.calls, q)
	g := s.gates[q.SearchText]
	res := s.results[q.SearchText]
	err := s.errs[q.SearchText]
	s.mu.Unlock()

	if g != nil {
		<-g
	}
	return res, err
}

func waitTicket(t *testing.T, tk Ticket) {
	t.Helper()
	select {
	case <-tk.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("ticket %d did not finish", tk.Generation)
	}
}

func criteriaFor(text string) Criteria {
	c := DefaultCriteria()
	c.SearchText = text
	return c
}

func TestCompose_AppliesBucketAfterFetch(t *testing.T) {
	src := newGatedSource()
	src.results[""] = []job.Job{
		jobWithBudget("3000", nil, ptr(3000)),
		jobWithBudget("7000", nil, ptr(7000)),
		jobWithBudget("15000", nil, ptr(15000)),
		jobWithBudget("20000", nil, ptr(20000)),
		jobWithBudget("none", nil, nil),
	}

	c := DefaultCriteria()
	c.BudgetBucket = Bucket5kTo15k

	got, err := Compose(context.Background(), src, c)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(got))
	}
	if len(src.calls) != 1 || src.calls[0].Status != job.StatusOpen {
		t.Fatalf("expected one open-status query, got %+v", src.calls)
	}
}

func TestCompose_WrapsTransportError(t *testing.T) {
	src := JobSourceFunc(func(context.Context, JobQuery) ([]job.Job, error) {
		return nil, errors.New("connection refused")
	})
	_, err := Compose(context.Background(), src, DefaultCriteria())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestCompose_InvalidCriteria(t *testing.T) {
	called := false
	src := JobSourceFunc(func(context.Context, JobQuery) ([]job.Job, error) {
		called = true
		return nil, nil
	})
	_, err := Compose(context.Background(), src, Criteria{})
	if !errors.Is(err, ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
	if called {
		t.Fatalf("source must not be queried for invalid criteria")
	}
}

func TestComposer_StartsIdle(t *testing.T) {
	c := NewComposer(newGatedSource())
	if s := c.Snapshot(); s.State != StateIdle || s.Generation != 0 {
		t.Fatalf("expected idle at generation 0, got %+v", s)
	}
}

func TestComposer_LoadingThenReady(t *testing.T) {
	src := newGatedSource()
	src.results["go"] = []job.Job{jobWithBudget("Go developer", nil, nil)}
	gate := src.gate("go")

	c := NewComposer(src)
	tk := c.Apply(context.Background(), criteriaFor("go"))

	if s := c.Snapshot(); s.State != StateLoading || s.Generation != tk.Generation {
		t.Fatalf("expected loading, got %+v", s)
	}

	close(gate)
	waitTicket(t, tk)

	s := c.Snapshot()
	if s.State != StateReady {
		t.Fatalf("expected ready, got %s", s.State)
	}
	if len(s.Jobs) != 1 || s.Jobs[0].Title != "Go developer" {
		t.Fatalf("unexpected jobs %+v", s.Jobs)
	}
}

func TestComposer_StaleResultDiscarded_LateArrival(t *testing.T) {
	src := newGatedSource()
	src.results["design"] = []job.Job{jobWithBudget("Logo design", nil, nil)}
	src.results["golang"] = []job.Job{jobWithBudget("Go API", nil, nil)}
	g1 := src.gate("design")
	g2 := src.gate("golang")

	c := NewComposer(src)
	t1 := c.Apply(context.Background(), criteriaFor("design"))
	t2 := c.Apply(context.Background(), criteriaFor("golang"))

	close(g2)
	waitTicket(t, t2)
	close(g1)
	waitTicket(t, t1)

	s := c.Snapshot()
	if s.State != StateReady || s.Generation != t2.Generation {
		t.Fatalf("expected ready at generation %d, got %+v", t2.Generation, s)
	}
	if s.Criteria.SearchText != "golang" {
		t.Fatalf("expected criteria of the latest request, got %q", s.Criteria.SearchText)
	}
	if len(s.Jobs) != 1 || s.Jobs[0].Title != "Go API" {
		t.Fatalf("stale result leaked into listing: %+v", s.Jobs)
	}
}

func TestComposer_StaleResultDiscarded_EarlyArrival(t *testing.T) {
	src := newGatedSource()
	src.results["design"] = []job.Job{jobWithBudget("Logo design", nil, nil)}
	src.results["golang"] = []job.Job{jobWithBudget("Go API", nil, nil)}
	g1 := src.gate("design")
	g2 := src.gate("golang")

	c := NewComposer(src)
	t1 := c.Apply(context.Background(), criteriaFor("design"))
	t2 := c.Apply(context.Background(), criteriaFor("golang"))

	close(g1)
	waitTicket(t, t1)

	if s := c.Snapshot(); s.State != StateLoading || s.Generation != t2.Generation {
		t.Fatalf("superseded result must not commit, got %+v", s)
	}

	close(g2)
	waitTicket(t, t2)

	s := c.Snapshot()
	if s.State != StateReady || s.Jobs[0].Title != "Go API" {
		t.Fatalf("expected latest result, got %+v", s)
	}
}

func TestComposer_ErrorThenRetry(t *testing.T) {
	src := newGatedSource()
	src.errs["seo"] = errors.New("timeout")

	c := NewComposer(src)
	tk := c.Apply(context.Background(), criteriaFor("seo"))
	waitTicket(t, tk)

	s := c.Snapshot()
	if s.State != StateError {
		t.Fatalf("expected error state, got %s", s.State)
	}
	if !errors.Is(s.Err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", s.Err)
	}

	src.mu.Lock()
	delete(src.errs, "seo")
	src.results["seo"] = []job.Job{jobWithBudget("SEO audit", nil, nil)}
	src.mu.Unlock()

	rt := c.Retry(context.Background())
	waitTicket(t, rt)

	s = c.Snapshot()
	if s.State != StateReady || len(s.Jobs) != 1 {
		t.Fatalf("expected ready after retry, got %+v", s)
	}
	if rt.Generation <= tk.Generation {
		t.Fatalf("retry must issue a new generation")
	}
	if len(src.calls) != 2 {
		t.Fatalf("expected exactly 2 fetches (no automatic retry), got %d", len(src.calls))
	}
}

func TestComposer_InvalidCriteria(t *testing.T) {
	c := NewComposer(newGatedSource())
	tk := c.Apply(context.Background(), Criteria{})
	waitTicket(t, tk)

	s := c.Snapshot()
	if s.State != StateError || !errors.Is(s.Err, ErrInvalidCriteria) {
		t.Fatalf("expected invalid criteria error, got %+v", s)
	}
}

func TestComposer_StrictPanicsOnInvalidCriteria(t *testing.T) {
	c := NewComposer(newGatedSource(), WithStrict(true))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic in strict mode")
		}
	}()
	c.Apply(context.Background(), Criteria{SearchText: "x"})
}

func TestComposer_OnChangeEndsOnLatest(t *testing.T) {
	src := newGatedSource()
	src.results["a"] = []job.Job{jobWithBudget("A", nil, nil)}

	var mu sync.Mutex
	var seen []Snapshot
	c := NewComposer(src, WithOnChange(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	}))

	tk := c.Apply(context.Background(), criteriaFor("a"))
	waitTicket(t, tk)

	mu.Lock()
	defer mu.Unlock()
	if len(seen) == 0 {
		t.Fatalf("expected notifications")
	}
	last := seen[len(seen)-1]
	if last.State != StateReady || last.Generation != tk.Generation {
		t.Fatalf("last notification should be ready, got %+v", last)
	}
}
