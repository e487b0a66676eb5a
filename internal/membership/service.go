// Package membership manages which users belong to which clubs, and in which role.
package membership

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/reconcile"
)

var (
	// ErrClubNotFound is returned when joining a club that does not exist or was deleted.
	ErrClubNotFound = errors.New("club not found")
	// ErrMembershipNotFound is returned when no active membership exists for the pair.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrInvalidRole is returned for roles other than Member and President.
	ErrInvalidRole = errors.New("invalid role")
)

// Relation describes the memberships relation to the reconciliation kernel.
var Relation = reconcile.Relation[models.Membership]{ //nolint:gochecknoglobals
	Name:          "membership",
	SubjectColumn: "user_id",
	ObjectColumn:  "club_id",
	New:           models.NewMembership,
}

// Service provides membership operations.
type Service struct {
	db     *gorm.DB
	kernel *reconcile.Kernel[models.Membership]
}

// NewService creates a new membership service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, kernel: reconcile.New(db, Relation)}
}

// Join makes userID an active member of clubID. Joining twice is not an error.
func (s *Service) Join(ctx context.Context, userID, clubID uint64) (*DTO, reconcile.Outcome, error) {
	if userID == 0 || clubID == 0 {
		return nil, "", reconcile.ErrInvalidID
	}

	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, "", err
	}

	outcome, err := s.kernel.Activate(ctx, userID, clubID)
	if err != nil {
		return nil, "", err
	}

	// rows are never removed, a concurrent leave may only have soft deleted it again
	row, err := s.kernel.Find(ctx, userID, clubID, true)
	if err != nil {
		return nil, "", err
	}

	return FromModel(row), outcome, nil
}

// Leave soft deletes the membership. It reports whether an active membership existed.
func (s *Service) Leave(ctx context.Context, userID, clubID uint64) (bool, error) {
	outcome, err := s.kernel.Deactivate(ctx, userID, clubID)
	if err != nil {
		return false, err
	}

	return outcome == reconcile.Deactivated, nil
}

// ListForUser returns the active memberships of userID ordered by club id.
func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]DTO, error) {
	rows, err := s.kernel.ListActiveForSubject(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}

	return out, nil
}

// ClubIDs returns the ids of the clubs userID is an active member of.
func (s *Service) ClubIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.kernel.ActiveObjectIDs(ctx, userID)
}

// MemberCount returns the number of active members of clubID.
func (s *Service) MemberCount(ctx context.Context, clubID uint64) (int64, error) {
	return s.kernel.Count(ctx, clubID)
}

// MemberCounts returns the number of active members per club. Clubs without members are absent.
func (s *Service) MemberCounts(ctx context.Context, clubIDs []uint64) (map[uint64]int64, error) {
	return s.kernel.CountMany(ctx, clubIDs)
}

// IsMember reports whether userID is an active member of clubID.
func (s *Service) IsMember(ctx context.Context, userID, clubID uint64) (bool, error) {
	return s.kernel.IsActive(ctx, userID, clubID)
}

// HasRole reports whether userID is an active member of clubID holding role.
func (s *Service) HasRole(ctx context.Context, userID, clubID uint64, role models.Role) (bool, error) {
	if userID == 0 || clubID == 0 {
		return false, nil
	}

	var n int64

	err := s.db.WithContext(ctx).
		Model(&models.Membership{}).
		Scopes(models.Alive(false)).
		Where("user_id = ? AND club_id = ? AND role = ?", userID, clubID, role).
		Count(&n).Error
	if err != nil {
		return false, errors.Wrap(err, "check membership role")
	}

	return n > 0, nil
}

// SetRole changes the role of an active membership.
func (s *Service) SetRole(ctx context.Context, userID, clubID uint64, role models.Role) error {
	if !role.Valid() {
		return errors.Wrap(ErrInvalidRole, string(role))
	}

	row, err := s.kernel.Find(ctx, userID, clubID, false)
	if errors.Is(err, reconcile.ErrNotFound) {
		return ErrMembershipNotFound
	}

	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("id = ?", row.ID).
		Update("role", role).Error

	return errors.Wrap(err, "set membership role")
}

func (s *Service) requireClub(ctx context.Context, clubID uint64) error {
	var n int64

	err := s.db.WithContext(ctx).
		Model(&models.Club{}).
		Scopes(models.Alive(false)).
		Where("id = ?", clubID).
		Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "lookup club")
	}

	if n == 0 {
		return ErrClubNotFound
	}

	return nil
}
