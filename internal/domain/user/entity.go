package user

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBuyer  Type = "buyer"
	TypeTalent Type = "talent"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Email       string
	UserType    Type
	FullName    *string
	CompanyName *string
	Location    *string
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanPostJobs reports whether the profile belongs to a poster account.
func (p Profile) CanPostJobs() bool {
	return p.UserType == TypeBuyer
}
