// Package user serves the profile of the authenticated user.
package user

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/membership"
)

// ErrUserNotFound is returned when the user does not exist or was deleted.
var ErrUserNotFound = errors.New("user not found")

// MembershipLister lists the active memberships of a user.
type MembershipLister interface {
	ListForUser(ctx context.Context, userID uint64) ([]membership.DTO, error)
}

// Service provides profile operations.
type Service struct {
	db          *gorm.DB
	memberships MembershipLister
}

// NewService creates a new user service.
func NewService(db *gorm.DB, memberships MembershipLister) *Service {
	return &Service{db: db, memberships: memberships}
}

// Find returns a live user.
func (s *Service) Find(ctx context.Context, userID uint64) (*models.User, error) {
	var rows []models.User

	err := s.db.WithContext(ctx).
		Scopes(models.Alive(false)).
		Where("id = ?", userID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}

	if len(rows) == 0 {
		return nil, ErrUserNotFound
	}

	return &rows[0], nil
}

// Me returns the profile of userID including its memberships.
func (s *Service) Me(ctx context.Context, userID uint64) (*MeDTO, error) {
	u, err := s.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	ms, err := s.memberships.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return FromModel(u, ms), nil
}

// UpdateMe applies the provided profile fields and returns the updated profile.
func (s *Service) UpdateMe(ctx context.Context, userID uint64, in UpdateMeInput) (*MeDTO, error) {
	if _, err := s.Find(ctx, userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}

	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = strings.TrimSpace(*v)
		}
	}

	setString("full_name", in.FullName)
	setString("department", in.Department)
	setString("phone", in.Phone)
	setString("bio", in.Bio)

	if in.AvatarDataURL != nil {
		updates["avatar_data_url"] = *in.AvatarDataURL
	}

	if in.Grade != nil {
		updates["grade"] = *in.Grade
	}

	if in.BirthDate != nil {
		d := in.BirthDate.UTC()
		updates["birth_date"] = &d
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
		if err != nil {
			return nil, errors.Wrap(err, "update user")
		}
	}

	return s.Me(ctx, userID)
}
