package dto

import (
	"time"

	"workspark/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserType    string    `json:"user_type"`
	FullName    *string   `json:"full_name"`
	CompanyName *string   `json:"company_name"`
	Location    *string   `json:"location"`
	IsVerified  bool      `json:"is_verified"`
	CanPostJobs bool      `json:"can_post_jobs"`
}

type MeResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

type AuthResponse struct {
	User         UserResponse     `json:"user"`
	Profile      *ProfileResponse `json:"profile"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func NewProfileResponse(p *user.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:          p.ID,
		UserType:    string(p.UserType),
		FullName:    p.FullName,
		CompanyName: p.CompanyName,
		Location:    p.Location,
		IsVerified:  p.IsVerified,
		CanPostJobs: p.CanPostJobs(),
	}
}
