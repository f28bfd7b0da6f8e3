package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/job"
	"workspark/internal/repository"

	"github.com/google/uuid"
)

const skillsPreviewSize = 5

// JobListItem is a job with its display strings resolved.
type JobListItem struct {
	Job             job.Job
	BudgetLabel     string
	BudgetTypeLabel string
	PostedAgo       string
	PosterName      string
	SkillsPreview   []string
	MoreSkills      int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, c discovery.Criteria) ([]JobListItem, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobListItem, error)
}

type JobList struct {
	source discovery.JobSource
	jobs   repository.JobRepository
	logger *log.Logger
	now    func() time.Time
}

func NewJobListUsecase(source discovery.JobSource, jobs repository.JobRepository, logger *log.Logger) *JobList {
	return &JobList{source: source, jobs: jobs, logger: logger, now: time.Now}
}

// ListJobs composes one listing for c. Invalid criteria and transport
// failures are returned as their discovery sentinels.
func (u *JobList) ListJobs(ctx context.Context, c discovery.Criteria) ([]JobListItem, error) {
	jobs, err := discovery.Compose(ctx, u.source, c)
	if err != nil {
		if u.logger != nil && errors.Is(err, discovery.ErrTransport) {
			u.logger.Printf("[Jobs] Listing fetch failed criteria=%+v err=%v", c, err)
		}
		return nil, err
	}
	return PresentJobs(jobs, u.now()), nil
}

// GetJob serves open and closed jobs; closed ones stay reachable from old
// links. Drafts are never public and read as not found.
func (u *JobList) GetJob(ctx context.Context, id uuid.UUID) (JobListItem, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobListItem{}, ErrNotFound
		}
		return JobListItem{}, ErrInternal
	}
	if j.Status == job.StatusDraft {
		return JobListItem{}, ErrNotFound
	}
	return PresentJob(j, u.now()), nil
}

func PresentJobs(jobs []job.Job, now time.Time) []JobListItem {
	out := make([]JobListItem, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, PresentJob(j, now))
	}
	return out
}

func PresentJob(j job.Job, now time.Time) JobListItem {
	preview := j.SkillsRequired
	more := 0
	if len(preview) > skillsPreviewSize {
		more = len(preview) - skillsPreviewSize
		preview = preview[:skillsPreviewSize]
	}
	return JobListItem{
		Job:             j,
		BudgetLabel:     discovery.FormatBudget(j),
		BudgetTypeLabel: j.BudgetType.Label(),
		PostedAgo:       discovery.TimeAgo(j.CreatedAt, now),
		PosterName:      j.Poster.DisplayName(),
		SkillsPreview:   preview,
		MoreSkills:      more,
	}
}
