// Package attendance tracks which users attend which events.
package attendance

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/event"
	"github.com/campusclubs/clubhub/internal/reconcile"
)

// ErrEventNotFound is returned when attending an event that does not exist or was deleted.
var ErrEventNotFound = errors.New("event not found")

// Relation describes the event_attendances relation to the reconciliation kernel.
var Relation = reconcile.Relation[models.EventAttendance]{ //nolint:gochecknoglobals
	Name:          "attendance",
	SubjectColumn: "user_id",
	ObjectColumn:  "event_id",
	New:           models.NewEventAttendance,
}

// Service provides attendance operations.
type Service struct {
	db     *gorm.DB
	kernel *reconcile.Kernel[models.EventAttendance]
}

// NewService creates a new attendance service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, kernel: reconcile.New(db, Relation)}
}

// Attend marks userID as attending eventID and returns the resulting attendee count.
func (s *Service) Attend(ctx context.Context, userID, eventID uint64) (int64, error) {
	if userID == 0 || eventID == 0 {
		return 0, reconcile.ErrInvalidID
	}

	var n int64

	err := s.db.WithContext(ctx).Model(&models.Event{}).
		Scopes(models.Alive(false)).
		Where("id = ?", eventID).
		Count(&n).Error
	if err != nil {
		return 0, errors.Wrap(err, "lookup event")
	}

	if n == 0 {
		return 0, ErrEventNotFound
	}

	if _, err = s.kernel.Activate(ctx, userID, eventID); err != nil {
		return 0, err
	}

	return s.kernel.Count(ctx, eventID)
}

// Unattend withdraws userID from eventID and returns the resulting attendee count.
func (s *Service) Unattend(ctx context.Context, userID, eventID uint64) (int64, error) {
	if _, err := s.kernel.Deactivate(ctx, userID, eventID); err != nil {
		return 0, err
	}

	return s.kernel.Count(ctx, eventID)
}

// Count returns the number of attendees of eventID.
func (s *Service) Count(ctx context.Context, eventID uint64) (int64, error) {
	return s.kernel.Count(ctx, eventID)
}

// IsAttending reports whether userID attends eventID.
func (s *Service) IsAttending(ctx context.Context, userID, eventID uint64) (bool, error) {
	return s.kernel.IsActive(ctx, userID, eventID)
}

// AttendedEvents returns the live events userID attends, newest start first.
func (s *Service) AttendedEvents(ctx context.Context, userID uint64) ([]event.DTO, error) {
	ids, err := s.kernel.ActiveObjectIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []event.DTO{}, nil
	}

	var rows []models.Event

	err = s.db.WithContext(ctx).
		Scopes(models.Alive(false)).
		Where("id IN ?", ids).
		Order("start_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list attended events")
	}

	return event.FromModels(rows), nil
}
