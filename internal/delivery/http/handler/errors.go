package handler

import (
	"errors"

	"workspark/internal/delivery/http/middleware"
	"workspark/internal/discovery"
	"workspark/internal/pkg/response"
	"workspark/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError turns usecase and discovery sentinels into AppErrors.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", verr.Fields, err)
	case errors.Is(err, discovery.ErrInvalidCriteria), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrAuthorization):
		return middleware.NewAppError(fiber.StatusForbidden, "Only buyer accounts can post jobs", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, discovery.ErrTransport):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Job listings are temporarily unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}
