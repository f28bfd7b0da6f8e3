package handler

import (
	"net/url"
	"time"

	"workspark/internal/delivery/http/dto"
	"workspark/internal/delivery/http/middleware"
	"workspark/internal/discovery"
	"workspark/internal/domain/job"
	"workspark/internal/pkg/response"
	"workspark/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	list usecase.JobListUsecase
	post usecase.JobPostUsecase
	now  func() time.Time
}

type postJobRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	CategoryID         string   `json:"category_id"`
	BudgetType         string   `json:"budget_type"`
	BudgetMin          *float64 `json:"budget_min"`
	BudgetMax          *float64 `json:"budget_max"`
	Currency           string   `json:"currency"`
	Duration           string   `json:"duration"`
	ExperienceLevel    string   `json:"experience_level"`
	SkillsRequired     []string `json:"skills_required"`
	LocationPreference string   `json:"location_preference"`
	IsRemote           *bool    `json:"is_remote"`
	ScreeningQuestions []string `json:"screening_questions"`
}

func NewJobsHandler(list usecase.JobListUsecase, post usecase.JobPostUsecase) *JobsHandler {
	return &JobsHandler{list: list, post: post, now: time.Now}
}

// RegisterRoutes mounts the public read routes. Posting is mounted by the
// caller behind auth and rate limiting.
func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	q := url.Values{}
	for k, v := range c.Queries() {
		q.Set(k, v)
	}

	crit, err := discovery.ParseCriteria(q)
	if err != nil {
		return mapUsecaseError(err)
	}

	items, err := h.list.ListJobs(c.Context(), crit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobListingResponse{
		Criteria: crit,
		Total:    len(items),
		Jobs:     dto.NewJobListResponses(items),
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	item, err := h.list.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(item))
}

func (h *JobsHandler) HandlePostJob(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.post.PostJob(c.Context(), userID, req.draft())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job posted", dto.NewCreatedJobResponse(created, h.now()))
}

func (r postJobRequest) draft() job.Draft {
	d := job.NewDraft()
	d.Title = r.Title
	d.Description = r.Description
	d.CategoryID = r.CategoryID
	d.BudgetMin = r.BudgetMin
	d.BudgetMax = r.BudgetMax
	d.Duration = r.Duration
	d.LocationPreference = r.LocationPreference
	// A missing budget type is a validation error, not a default.
	d.BudgetType = r.BudgetType
	if r.Currency != "" {
		d.Currency = r.Currency
	}
	if r.ExperienceLevel != "" {
		d.ExperienceLevel = r.ExperienceLevel
	}
	if r.IsRemote != nil {
		d.IsRemote = *r.IsRemote
	}
	for _, s := range r.SkillsRequired {
		d.AddSkill(s)
	}
	for _, q := range r.ScreeningQuestions {
		d.AddQuestion(q)
	}
	return d
}
