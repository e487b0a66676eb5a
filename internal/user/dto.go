package user

import (
	"time"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/membership"
)

// MeDTO is the profile of the authenticated user.
type MeDTO struct {
	ID            uint64           `json:"id"`
	Username      string           `json:"username"`
	Email         string           `json:"email"`
	FullName      string           `json:"fullName"`
	IsAdmin       bool             `json:"isAdmin"`
	Department    string           `json:"department"`
	Grade         *int             `json:"grade"`
	BirthDate     *time.Time       `json:"birthDate"`
	Phone         string           `json:"phone"`
	Bio           string           `json:"bio"`
	AvatarDataURL string           `json:"avatarDataUrl"`
	Memberships   []membership.DTO `json:"memberships"`
}

// FromModel projects a user row and its memberships.
func FromModel(u *models.User, memberships []membership.DTO) *MeDTO {
	if memberships == nil {
		memberships = []membership.DTO{}
	}

	return &MeDTO{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		IsAdmin:       u.IsAdmin,
		Department:    u.Department,
		Grade:         u.Grade,
		BirthDate:     u.BirthDate,
		Phone:         u.Phone,
		Bio:           u.Bio,
		AvatarDataURL: u.AvatarDataURL,
		Memberships:   memberships,
	}
}

// UpdateMeInput holds the profile fields to change. Nil fields are left untouched.
type UpdateMeInput struct {
	FullName      *string    `json:"fullName" validate:"omitempty,max=200"`
	Department    *string    `json:"department" validate:"omitempty,max=200"`
	Grade         *int       `json:"grade" validate:"omitempty,min=1,max=12"`
	BirthDate     *time.Time `json:"birthDate"`
	Phone         *string    `json:"phone" validate:"omitempty,max=50"`
	Bio           *string    `json:"bio" validate:"omitempty,max=1000"`
	AvatarDataURL *string    `json:"avatarDataUrl" validate:"omitempty,max=2000000"`
}
