package event

import (
	"time"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// DTO is the public shape of an event.
type DTO struct {
	ID          uint64    `json:"id"`
	ClubID      uint64    `json:"clubId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	IsPublished bool      `json:"isPublished"`
}

// FromModel projects an event row.
func FromModel(e *models.Event) DTO {
	return DTO{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartAt:     e.StartAt.UTC(),
		EndAt:       e.EndAt.UTC(),
		IsPublished: e.IsPublished,
	}
}

// FromModels projects event rows.
func FromModels(rows []models.Event) []DTO {
	out := make([]DTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}

	return out
}

// CreateInput holds the fields of a new event.
type CreateInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=4000"`
	Location    string    `json:"location" validate:"max=300"`
	StartAt     time.Time `json:"startAt" validate:"required"`
	EndAt       time.Time `json:"endAt" validate:"required"`
}

// PatchInput holds the fields to change. Nil fields are left untouched.
type PatchInput struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=4000"`
	Location    *string    `json:"location" validate:"omitempty,max=300"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	IsPublished *bool      `json:"isPublished"`
}
