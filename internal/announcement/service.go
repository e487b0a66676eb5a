// Package announcement manages messages posted by clubs.
package announcement

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
)

var (
	// ErrAnnouncementNotFound is returned when the announcement does not exist or was deleted.
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrClubNotFound is returned when posting to a missing club.
	ErrClubNotFound = errors.New("club not found")
	// ErrTitleRequired is returned for an empty or blank title.
	ErrTitleRequired = errors.New("title is required")
)

// Service provides announcement operations.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService creates a new announcement service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func (s *Service) announcements(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Announcement{}).Scopes(models.Alive(false))
}

// ListByClubs returns the live announcements of clubIDs, pinned first, then newest first.
func (s *Service) ListByClubs(ctx context.Context, clubIDs []uint64) ([]DTO, error) {
	if len(clubIDs) == 0 {
		return []DTO{}, nil
	}

	var rows []models.Announcement

	err := s.announcements(ctx).
		Where("club_id IN ?", clubIDs).
		Order("pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list announcements")
	}

	out := make([]DTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}

	return out, nil
}

// Get returns a live announcement.
func (s *Service) Get(ctx context.Context, id uint64) (*DTO, error) {
	var rows []models.Announcement

	if err := s.announcements(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "get announcement")
	}

	if len(rows) == 0 {
		return nil, ErrAnnouncementNotFound
	}

	d := FromModel(&rows[0])

	return &d, nil
}

// Create posts an announcement to clubID.
func (s *Service) Create(ctx context.Context, clubID uint64, in CreateInput) (*DTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Club{}).Scopes(models.Alive(false)).
		Where("id = ?", clubID).Count(&n).Error; err != nil {
		return nil, errors.Wrap(err, "lookup club")
	}

	if n == 0 {
		return nil, ErrClubNotFound
	}

	a := &models.Announcement{
		Base:    models.Base{IsActive: true},
		ClubID:  clubID,
		Title:   title,
		Content: strings.TrimSpace(in.Content),
		Pinned:  in.Pinned,
	}

	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, errors.Wrap(err, "create announcement")
	}

	d := FromModel(a)

	return &d, nil
}

// Patch applies the provided fields.
func (s *Service) Patch(ctx context.Context, id uint64, in PatchInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	updates := map[string]any{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return ErrTitleRequired
		}

		updates["title"] = title
	}

	if in.Content != nil {
		updates["content"] = strings.TrimSpace(*in.Content)
	}

	if in.Pinned != nil {
		updates["pinned"] = *in.Pinned
	}

	if len(updates) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", id).Updates(updates).Error

	return errors.Wrap(err, "patch announcement")
}

// Delete soft deletes an announcement. Deleting an already deleted announcement succeeds.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return errors.Wrap(err, "lookup announcement")
	}

	if n == 0 {
		return ErrAnnouncementNotFound
	}

	err := s.announcements(ctx).Where("id = ?", id).Updates(models.SoftDelete(s.now().UTC())).Error

	return errors.Wrap(err, "delete announcement")
}

// ClubID returns the club an announcement belongs to, including deleted announcements.
func (s *Service) ClubID(ctx context.Context, id uint64) (uint64, error) {
	var rows []models.Announcement

	err := s.db.WithContext(ctx).Model(&models.Announcement{}).Select("id", "club_id").
		Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return 0, errors.Wrap(err, "lookup announcement club")
	}

	if len(rows) == 0 {
		return 0, ErrAnnouncementNotFound
	}

	return rows[0].ClubID, nil
}
