package handler

import (
	"workspark/internal/delivery/http/dto"
	"workspark/internal/pkg/response"
	"workspark/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/categories")
	grp.Get("/", h.List)
	grp.Get("/:slug", h.Detail)
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponses(items))
}

func (h *CategoryHandler) Detail(c fiber.Ctx) error {
	d, err := h.uc.GetCategoryDetail(c.Context(), c.Params("slug"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryDetailResponse(d))
}
