package handler

import (
	"context"
	"errors"

	"workspark/internal/delivery/http/dto"
	"workspark/internal/delivery/http/middleware"
	"workspark/internal/pkg/response"
	useruc "workspark/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MeUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (useruc.Me, error)
}

type UserHandler struct {
	uc MeUsecase
}

func NewUserHandler(uc MeUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	me, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		if errors.Is(err, useruc.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.MeResponse{
		User:    dto.NewUserResponse(me.User),
		Profile: dto.NewProfileResponse(me.Profile),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
