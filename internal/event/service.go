// Package event manages club events.
package event

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
)

const (
	// DefaultUpcomingDays is the look-ahead window used when none is given.
	DefaultUpcomingDays = 14
	// MaxUpcomingDays bounds the look-ahead window.
	MaxUpcomingDays = 365

	whereIDAndClub = "id = ? AND club_id = ?"
)

var (
	// ErrEventNotFound is returned when the event does not exist, was deleted or belongs to another club.
	ErrEventNotFound = errors.New("event not found")
	// ErrClubNotFound is returned when creating an event for a missing club.
	ErrClubNotFound = errors.New("club not found")
	// ErrTitleRequired is returned for an empty or blank title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidTimeRange is returned when the event does not end after it starts.
	ErrInvalidTimeRange = errors.New("event must end after it starts")
	// ErrInvalidDays is returned for a look-ahead window outside 1..365 days.
	ErrInvalidDays = errors.New("days must be between 1 and 365")
)

// ClubLister returns the clubs a user is an active member of.
type ClubLister interface {
	ClubIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

// Service provides event operations.
type Service struct {
	db          *gorm.DB
	clubs       ClubLister
	now         func() time.Time
	defaultDays int
}

// NewService creates a new event service.
func NewService(db *gorm.DB, clubs ClubLister) *Service {
	return &Service{db: db, clubs: clubs, now: time.Now, defaultDays: DefaultUpcomingDays}
}

// WithClock returns a copy of the service using now as time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now

	return &c
}

// WithDefaultDays returns a copy of the service using days as upcoming window when none is given.
// Values outside 1..MaxUpcomingDays are ignored.
func (s *Service) WithDefaultDays(days int) *Service {
	c := *s
	if days >= 1 && days <= MaxUpcomingDays {
		c.defaultDays = days
	}

	return &c
}

func (s *Service) events(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Event{}).Scopes(models.Alive(false))
}

// List returns every live event, newest start first.
func (s *Service) List(ctx context.Context) ([]DTO, error) {
	var rows []models.Event

	if err := s.events(ctx).Order("start_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list events")
	}

	return FromModels(rows), nil
}

// ListByClub returns the live events of clubID in chronological order.
func (s *Service) ListByClub(ctx context.Context, clubID uint64) ([]DTO, error) {
	var rows []models.Event

	err := s.events(ctx).Where("club_id = ?", clubID).Order("start_at ASC").Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list club events")
	}

	return FromModels(rows), nil
}

// Upcoming returns the events of the user's clubs starting within the next days, chronologically.
// days <= 0 selects the default window.
func (s *Service) Upcoming(ctx context.Context, userID uint64, days int) ([]DTO, error) {
	if days <= 0 {
		days = s.defaultDays
	}

	if days > MaxUpcomingDays {
		return nil, ErrInvalidDays
	}

	clubIDs, err := s.clubs.ClubIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(clubIDs) == 0 {
		return []DTO{}, nil
	}

	from := s.now().UTC()
	to := from.AddDate(0, 0, days)

	var rows []models.Event

	err = s.events(ctx).
		Where("club_id IN ?", clubIDs).
		Where("start_at >= ? AND start_at <= ?", from, to).
		Order("start_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list upcoming events")
	}

	return FromModels(rows), nil
}

// Get returns a live event.
func (s *Service) Get(ctx context.Context, eventID uint64) (*DTO, error) {
	e, err := s.find(ctx, s.events(ctx).Where("id = ?", eventID))
	if err != nil {
		return nil, err
	}

	d := FromModel(e)

	return &d, nil
}

// Create adds a published event to clubID.
func (s *Service) Create(ctx context.Context, clubID uint64, in CreateInput) (*DTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if !in.EndAt.After(in.StartAt) {
		return nil, ErrInvalidTimeRange
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Club{}).Scopes(models.Alive(false)).
		Where("id = ?", clubID).Count(&n).Error; err != nil {
		return nil, errors.Wrap(err, "lookup club")
	}

	if n == 0 {
		return nil, ErrClubNotFound
	}

	e := &models.Event{
		Base:        models.Base{IsActive: true},
		ClubID:      clubID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		StartAt:     in.StartAt.UTC(),
		EndAt:       in.EndAt.UTC(),
		IsPublished: true,
	}

	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, errors.Wrap(err, "create event")
	}

	d := FromModel(e)

	return &d, nil
}

// Patch applies the provided fields to an event of clubID.
func (s *Service) Patch(ctx context.Context, clubID, eventID uint64, in PatchInput) error {
	e, err := s.find(ctx, s.events(ctx).Where(whereIDAndClub, eventID, clubID))
	if err != nil {
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

	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}

	if in.Location != nil {
		updates["location"] = strings.TrimSpace(*in.Location)
	}

	if in.IsPublished != nil {
		updates["is_published"] = *in.IsPublished
	}

	start, end := e.StartAt, e.EndAt

	if in.StartAt != nil {
		start = in.StartAt.UTC()
		updates["start_at"] = start
	}

	if in.EndAt != nil {
		end = in.EndAt.UTC()
		updates["end_at"] = end
	}

	if !end.After(start) {
		return ErrInvalidTimeRange
	}

	if len(updates) == 0 {
		return nil
	}

	err = s.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", e.ID).Updates(updates).Error

	return errors.Wrap(err, "patch event")
}

// Delete soft deletes an event of clubID.
func (s *Service) Delete(ctx context.Context, clubID, eventID uint64) error {
	res := s.events(ctx).
		Where(whereIDAndClub, eventID, clubID).
		Updates(models.SoftDelete(s.now().UTC()))
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete event")
	}

	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (s *Service) find(ctx context.Context, q *gorm.DB) (*models.Event, error) {
	var rows []models.Event

	if err := q.WithContext(ctx).Limit(1).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "lookup event")
	}

	if len(rows) == 0 {
		return nil, ErrEventNotFound
	}

	return &rows[0], nil
}
