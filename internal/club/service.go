// Package club manages clubs.
package club

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/reconcile"
)

var (
	// ErrClubNotFound is returned when the club does not exist or was deleted.
	ErrClubNotFound = errors.New("club not found")
	// ErrClubExists is returned when a club with the same name already exists.
	ErrClubExists = errors.New("club already exists")
	// ErrNameRequired is returned for an empty or blank name.
	ErrNameRequired = errors.New("name is required")
)

// MemberCounter counts active members per club.
type MemberCounter interface {
	MemberCounts(ctx context.Context, clubIDs []uint64) (map[uint64]int64, error)
}

// Service provides club operations.
type Service struct {
	db      *gorm.DB
	members MemberCounter
}

// NewService creates a new club service.
func NewService(db *gorm.DB, members MemberCounter) *Service {
	return &Service{db: db, members: members}
}

func (s *Service) clubs(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Club{}).Scopes(models.Alive(false))
}

// List returns every live club ordered by name, with member counts.
func (s *Service) List(ctx context.Context) ([]DTO, error) {
	var rows []models.Club

	if err := s.clubs(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list clubs")
	}

	ids := make([]uint64, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	counts, err := s.members.MemberCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]DTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i], counts[rows[i].ID]))
	}

	return out, nil
}

// Get returns a live club with its member count.
func (s *Service) Get(ctx context.Context, clubID uint64) (*DTO, error) {
	var rows []models.Club

	if err := s.clubs(ctx).Where("id = ?", clubID).Limit(1).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "get club")
	}

	if len(rows) == 0 {
		return nil, ErrClubNotFound
	}

	counts, err := s.members.MemberCounts(ctx, []uint64{clubID})
	if err != nil {
		return nil, err
	}

	d := FromModel(&rows[0], counts[clubID])

	return &d, nil
}

// Create adds a club. Names are unique, deleted clubs included.
func (s *Service) Create(ctx context.Context, in CreateInput) (*DTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Club{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return nil, errors.Wrap(err, "lookup club")
	}

	if n > 0 {
		return nil, ErrClubExists
	}

	c := &models.Club{
		Base:        models.Base{IsActive: true},
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		if reconcile.IsUniqueViolation(err) {
			return nil, ErrClubExists
		}

		return nil, errors.Wrap(err, "create club")
	}

	d := FromModel(c, 0)

	return &d, nil
}

// Exists reports whether clubID is a live club.
func (s *Service) Exists(ctx context.Context, clubID uint64) (bool, error) {
	var n int64

	if err := s.clubs(ctx).Where("id = ?", clubID).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "lookup club")
	}

	return n > 0, nil
}
