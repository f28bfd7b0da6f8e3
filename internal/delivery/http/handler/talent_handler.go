package handler

import (
	"strconv"

	"workspark/internal/delivery/http/dto"
	"workspark/internal/delivery/http/middleware"
	"workspark/internal/pkg/response"
	"workspark/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TalentHandler struct {
	uc usecase.TalentUsecase
}

func NewTalentHandler(uc usecase.TalentUsecase) *TalentHandler {
	return &TalentHandler{uc: uc}
}

func (h *TalentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/talents", h.List)
}

func (h *TalentHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListTalents(c.Context(), c.Query("skill"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentResponses(items))
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
