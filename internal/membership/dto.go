package membership

import "github.com/campusclubs/clubhub/internal/db/models"

// DTO is the public shape of a membership.
type DTO struct {
	ClubID uint64      `json:"clubId"`
	Role   models.Role `json:"role"`
}

// FromModel projects a membership row.
func FromModel(m *models.Membership) *DTO {
	return &DTO{ClubID: m.ClubID, Role: m.Role}
}
