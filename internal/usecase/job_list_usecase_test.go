package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobListUsecase_ListJobs_AppliesBucketAfterFetch(t *testing.T) {
	repo := &fakeJobRepo{jobs: []job.Job{
		{ID: uuid.New(), Title: "Logo", BudgetType: job.BudgetFixed, BudgetMax: fptr(3000), Currency: "INR"},
		{ID: uuid.New(), Title: "Store", BudgetType: job.BudgetFixed, BudgetMax: fptr(40000), Currency: "INR"},
		{ID: uuid.New(), Title: "Open", BudgetType: job.BudgetFixed, Currency: "INR"},
	}}
	uc := NewJobListUsecase(repo, repo, nil)

	c := discovery.DefaultCriteria()
	c.BudgetBucket = discovery.BucketUnder5k
	c.SearchText = "  logo "

	items, err := uc.ListJobs(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].Job.Title != "Logo" || items[1].Job.Title != "Open" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if len(repo.queries) != 1 {
		t.Fatalf("expected one store query, got %d", len(repo.queries))
	}
	q := repo.queries[0]
	if q.SearchText != "logo" || q.Status != job.StatusOpen || !q.OrderByCreatedDesc {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestJobListUsecase_ListJobs_InvalidCriteria(t *testing.T) {
	repo := &fakeJobRepo{}
	uc := NewJobListUsecase(repo, repo, nil)

	c := discovery.DefaultCriteria()
	c.ExperienceLevel = "guru"
	if _, err := uc.ListJobs(context.Background(), c); !errors.Is(err, discovery.ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
	if len(repo.queries) != 0 {
		t.Fatalf("store must not be queried for invalid criteria")
	}
}

func TestJobListUsecase_ListJobs_TransportError(t *testing.T) {
	repo := &fakeJobRepo{err: errors.New("connection refused")}
	uc := NewJobListUsecase(repo, repo, nil)

	if _, err := uc.ListJobs(context.Background(), discovery.DefaultCriteria()); !errors.Is(err, discovery.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestJobListUsecase_GetJob(t *testing.T) {
	id := uuid.New()
	repo := &fakeJobRepo{jobs: []job.Job{{ID: id, Title: "Landing page", BudgetType: job.BudgetHourly}}}
	uc := NewJobListUsecase(repo, repo, nil)

	item, err := uc.GetJob(context.Background(), id)
	if err != nil || item.Job.ID != id {
		t.Fatalf("unexpected result %+v err=%v", item, err)
	}
	if _, err := uc.GetJob(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobListUsecase_GetJobHidesDrafts(t *testing.T) {
	draft, closed := uuid.New(), uuid.New()
	repo := &fakeJobRepo{jobs: []job.Job{
		{ID: draft, Title: "secret", Status: job.StatusDraft},
		{ID: closed, Title: "filled", Status: job.StatusClosed},
	}}
	uc := NewJobListUsecase(repo, repo, nil)

	if item, err := uc.GetJob(context.Background(), draft); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must read as not found, got %+v err=%v", item, err)
	}
	if item, err := uc.GetJob(context.Background(), closed); err != nil || item.Job.ID != closed {
		t.Fatalf("closed job should stay reachable, got %+v err=%v", item, err)
	}
}

func TestPresentJob(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	j := job.Job{
		BudgetType:     job.BudgetFixed,
		BudgetMin:      fptr(5000),
		BudgetMax:      fptr(15000),
		Currency:       "INR",
		SkillsRequired: []string{"Go", "SQL", "Redis", "Docker", "AWS", "Kafka", "gRPC"},
		CreatedAt:      now.Add(-3 * time.Hour),
		Poster:         job.Poster{FullName: "Asha", CompanyName: "Acme"},
	}

	item := PresentJob(j, now)
	if item.BudgetLabel != "₹5,000-₹15,000" {
		t.Fatalf("budget label %q", item.BudgetLabel)
	}
	if item.BudgetTypeLabel != "Fixed Price" {
		t.Fatalf("budget type label %q", item.BudgetTypeLabel)
	}
	if item.PostedAgo != "3h ago" {
		t.Fatalf("posted ago %q", item.PostedAgo)
	}
	if item.PosterName != "Acme" {
		t.Fatalf("poster name %q", item.PosterName)
	}
	if len(item.SkillsPreview) != 5 || item.MoreSkills != 2 {
		t.Fatalf("skills preview %v more=%d", item.SkillsPreview, item.MoreSkills)
	}
}
