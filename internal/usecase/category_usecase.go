package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/category"
	"workspark/internal/domain/job"
	"workspark/internal/domain/talent"
	"workspark/internal/repository"
)

const (
	categoryJobsLimit    = 10
	categoryTalentsLimit = 6
)

// badgeCities are matched in order against a talent's location.
var badgeCities = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad"}

type CategoryStats struct {
	TotalJobs  int
	ActiveJobs int
	// AvgBudget averages the maximum budget of jobs that set one.
	AvgBudget float64
}

type TalentItem struct {
	Talent talent.Talent
	Badge  string
	IsNew  bool
}

type CategoryDetail struct {
	Category category.Category
	Jobs     []JobListItem
	Talents  []TalentItem
	Stats    CategoryStats
}

type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
	GetCategoryDetail(ctx context.Context, slug string) (CategoryDetail, error)
}

type Category struct {
	categories repository.CategoryRepository
	jobs       repository.JobRepository
	talents    repository.TalentRepository
	logger     *log.Logger
	now        func() time.Time
}

func NewCategoryUsecase(categories repository.CategoryRepository, jobs repository.JobRepository, talents repository.TalentRepository, logger *log.Logger) *Category {
	return &Category{categories: categories, jobs: jobs, talents: talents, logger: logger, now: time.Now}
}

func (u *Category) ListCategories(ctx context.Context) ([]category.Category, error) {
	items, err := u.categories.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// GetCategoryDetail resolves a URL slug such as "web-development" and loads
// the newest open jobs, the best rated matching talents and the job stats.
func (u *Category) GetCategoryDetail(ctx context.Context, slug string) (CategoryDetail, error) {
	name := CategoryNameFromSlug(slug)
	if name == "" {
		return CategoryDetail{}, ErrNotFound
	}

	cat, err := u.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return CategoryDetail{}, ErrNotFound
		}
		return CategoryDetail{}, ErrInternal
	}

	jobs, err := u.jobs.Query(ctx, discovery.BuildCategoryJobQuery(cat.ID, categoryJobsLimit))
	if err != nil {
		u.logf("[Categories] Jobs query failed category=%q err=%v", cat.Name, err)
		return CategoryDetail{}, ErrInternal
	}

	talents, err := u.talents.Query(ctx, discovery.BuildTalentQuery(cat.Name, categoryTalentsLimit))
	if err != nil {
		u.logf("[Categories] Talents query failed category=%q err=%v", cat.Name, err)
		return CategoryDetail{}, ErrInternal
	}

	stats, err := u.jobs.ListBudgetStats(ctx, cat.ID)
	if err != nil {
		u.logf("[Categories] Stats query failed category=%q err=%v", cat.Name, err)
		return CategoryDetail{}, ErrInternal
	}

	items := make([]TalentItem, 0, len(talents))
	for _, t := range talents {
		items = append(items, TalentItem{
			Talent: t,
			Badge:  CityBadge(cat.Name, t.Profile.Location),
			IsNew:  t.IsNew(),
		})
	}

	return CategoryDetail{
		Category: cat,
		Jobs:     PresentJobs(jobs, u.now()),
		Talents:  items,
		Stats:    ComputeCategoryStats(stats),
	}, nil
}

// CategoryNameFromSlug turns "mobile-app-development" into "mobile app development".
func CategoryNameFromSlug(slug string) string {
	return strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
}

// CategorySlug is the inverse of CategoryNameFromSlug for display names.
func CategorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func ComputeCategoryStats(rows []job.BudgetStat) CategoryStats {
	s := CategoryStats{TotalJobs: len(rows)}
	var sum float64
	var n int
	for _, r := range rows {
		if r.Status == job.StatusOpen {
			s.ActiveJobs++
		}
		if r.BudgetMax != nil && *r.BudgetMax != 0 {
			sum += *r.BudgetMax
			n++
		}
	}
	if n > 0 {
		s.AvgBudget = sum / float64(n)
	}
	return s
}

// CityBadge names the first known city found in location, or India.
func CityBadge(categoryName, location string) string {
	for _, city := range badgeCities {
		if strings.Contains(location, city) {
			return "Top " + categoryName + " Expert " + city
		}
	}
	return "Top " + categoryName + " Expert India"
}

func (u *Category) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
