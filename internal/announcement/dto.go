package announcement

import (
	"time"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// DTO is the public shape of an announcement.
type DTO struct {
	ID        uint64    `json:"id"`
	ClubID    uint64    `json:"clubId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModel projects an announcement row.
func FromModel(a *models.Announcement) DTO {
	return DTO{
		ID:        a.ID,
		ClubID:    a.ClubID,
		Title:     a.Title,
		Content:   a.Content,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt.UTC(),
	}
}

// CreateInput holds the fields of a new announcement.
type CreateInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=20000"`
	Pinned  bool   `json:"pinned"`
}

// PatchInput holds the fields to change. Nil fields are left untouched.
type PatchInput struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content" validate:"omitempty,max=20000"`
	Pinned  *bool   `json:"pinned"`
}
