package club

import "github.com/campusclubs/clubhub/internal/db/models"

// DTO is the public shape of a club.
type DTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int64  `json:"memberCount"`
}

// FromModel projects a club row with its member count.
func FromModel(c *models.Club, members int64) DTO {
	return DTO{ID: c.ID, Name: c.Name, Description: c.Description, MemberCount: members}
}

// CreateInput holds the fields of a new club.
type CreateInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}
