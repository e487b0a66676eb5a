package auth

import (
	"context"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// CanManageClub reports whether p may write events and announcements of clubID.
func (s *Service) CanManageClub(ctx context.Context, p Principal, clubID uint64) (bool, error) {
	if p.IsAdmin {
		return true, nil
	}

	return s.memberships.HasRole(ctx, p.UserID, clubID, models.RolePresident)
}

// CanViewUser reports whether p may read data of userID.
func CanViewUser(p Principal, userID uint64) bool {
	return p.IsAdmin || p.UserID == userID
}
