package talent

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the verified identity a talent listing belongs to.
type Profile struct {
	FullName   string
	Location   string
	AvatarURL  string
	IsVerified bool
}

type Talent struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	Headline        string
	HourlyRate      *float64
	Rating          *float64
	Skills          []string
	TotalJobs       int
	ExperienceLevel string
	Availability    string
	CreatedAt       time.Time
	Profile         Profile
}

// IsNew reports whether the talent has not been rated yet.
func (t Talent) IsNew() bool {
	return t.Rating == nil
}
