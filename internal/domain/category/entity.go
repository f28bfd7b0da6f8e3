package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	IconURL     *string
	ParentID    *uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
}
