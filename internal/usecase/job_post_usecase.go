package usecase

import (
	"context"
	"errors"
	"log"
	"reflect"
	"strings"

	"workspark/internal/domain/category"
	"workspark/internal/domain/job"
	"workspark/internal/domain/user"
	"workspark/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobsNotifier is told when the set of open jobs changed.
type JobsNotifier interface {
	NotifyJobsUpdated(reason string)
}

type JobPostUsecase interface {
	PostJob(ctx context.Context, userID uuid.UUID, d job.Draft) (job.Job, error)
}

type postJobForm struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required,max=10000"`
	CategoryID      string   `json:"category_id" validate:"required,uuid"`
	BudgetType      string   `json:"budget_type" validate:"required,oneof=fixed hourly milestone"`
	BudgetMin       *float64 `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax       *float64 `json:"budget_max" validate:"omitempty,gte=0"`
	Currency        string   `json:"currency" validate:"required,oneof=INR USD"`
	ExperienceLevel string   `json:"experience_level" validate:"required,oneof=entry intermediate expert"`
	Duration        string   `json:"duration" validate:"max=100"`
	Location        string   `json:"location_preference" validate:"max=200"`
}

type JobPost struct {
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	profiles   user.ProfileRepository
	cache      ListingInvalidator
	notifier   JobsNotifier
	validate   *validator.Validate
	logger     *log.Logger
}

func NewJobPostUsecase(
	jobs repository.JobRepository,
	categories repository.CategoryRepository,
	profiles user.ProfileRepository,
	cache ListingInvalidator,
	notifier JobsNotifier,
	logger *log.Logger,
) *JobPost {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &JobPost{
		jobs:       jobs,
		categories: categories,
		profiles:   profiles,
		cache:      cache,
		notifier:   notifier,
		validate:   v,
		logger:     logger,
	}
}

// PostJob creates an open job for the buyer behind userID. Nothing is written
// unless the caller may post, the draft is valid and the category exists.
func (u *JobPost) PostJob(ctx context.Context, userID uuid.UUID, d job.Draft) (job.Job, error) {
	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return job.Job{}, ErrAuthorization
		}
		return job.Job{}, ErrInternal
	}
	if !profile.CanPostJobs() {
		return job.Job{}, ErrAuthorization
	}

	in, err := u.normalize(d)
	if err != nil {
		return job.Job{}, err
	}
	in.PosterID = profile.ID

	cat, err := u.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if !cat.IsActive {
		return job.Job{}, ErrNotFound
	}

	created, err := u.jobs.Create(ctx, in)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Create failed poster=%s err=%v", profile.ID, err)
		}
		return job.Job{}, ErrInternal
	}
	created.CategoryName = cat.Name
	created.Poster = job.Poster{
		FullName:    deref(profile.FullName),
		CompanyName: deref(profile.CompanyName),
		Location:    deref(profile.Location),
		IsVerified:  profile.IsVerified,
	}

	if u.cache != nil {
		if err := u.cache.InvalidateJobListings(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] Cache invalidate failed err=%v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyJobsUpdated("job_posted")
	}
	if u.logger != nil {
		u.logger.Printf("[Jobs] Posted job_id=%s category=%q poster=%s", created.ID, cat.Name, profile.ID)
	}
	return created, nil
}

// normalize validates d and applies the posting defaults.
func (u *JobPost) normalize(d job.Draft) (job.CreateJob, error) {
	form := postJobForm{
		Title:           strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		CategoryID:      strings.TrimSpace(d.CategoryID),
		BudgetType:      strings.TrimSpace(d.BudgetType),
		BudgetMin:       d.BudgetMin,
		BudgetMax:       d.BudgetMax,
		Currency:        strings.ToUpper(strings.TrimSpace(d.Currency)),
		ExperienceLevel: strings.TrimSpace(d.ExperienceLevel),
		Duration:        strings.TrimSpace(d.Duration),
		Location:        strings.TrimSpace(d.LocationPreference),
	}
	if form.Currency == "" {
		form.Currency = job.DefaultCurrency
	}
	if form.ExperienceLevel == "" {
		form.ExperienceLevel = string(job.ExperienceIntermediate)
	}

	verr := &ValidationError{}
	if err := u.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return job.CreateJob{}, ErrInternal
		}
		for _, fe := range fieldErrs {
			verr.add(fe.Field(), validationReason(fe))
		}
	}
	if form.BudgetMin != nil && form.BudgetMax != nil && *form.BudgetMin > *form.BudgetMax {
		verr.add("budget_max", "must not be below budget_min")
	}
	if !verr.empty() {
		return job.CreateJob{}, verr
	}

	draft := job.Draft{}
	for _, s := range d.SkillsRequired {
		draft.AddSkill(s)
	}
	for _, q := range d.ScreeningQuestions {
		draft.AddQuestion(q)
	}

	return job.CreateJob{
		CategoryID:         uuid.MustParse(form.CategoryID),
		Title:              form.Title,
		Description:        form.Description,
		BudgetType:         job.BudgetType(form.BudgetType),
		BudgetMin:          form.BudgetMin,
		BudgetMax:          form.BudgetMax,
		Currency:           form.Currency,
		ExperienceLevel:    job.ExperienceLevel(form.ExperienceLevel),
		SkillsRequired:     nonNil(draft.SkillsRequired),
		IsRemote:           d.IsRemote,
		LocationPreference: optionalString(form.Location),
		Duration:           optionalString(form.Duration),
		ScreeningQuestions: nonNil(draft.ScreeningQuestions),
		Status:             job.StatusOpen,
	}, nil
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid id"
	case "gte":
		return "must not be negative"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
