package reconcile

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// Outcome reports what an Activate or Deactivate call did.
type Outcome string

const (
	// Created means a new row was inserted.
	Created Outcome = "created"
	// Reactivated means a soft deleted row was brought back.
	Reactivated Outcome = "reactivated"
	// AlreadyActive means the pair was active, nothing changed.
	AlreadyActive Outcome = "already_active"
	// Deactivated means the active row was soft deleted.
	Deactivated Outcome = "deactivated"
	// AlreadyInactive means there was no active row, nothing changed.
	AlreadyInactive Outcome = "already_inactive"
)

// Active reports whether the pair is active after the call.
func (o Outcome) Active() bool {
	return o == Created || o == Reactivated || o == AlreadyActive
}

// Changed reports whether the call modified the store.
func (o Outcome) Changed() bool {
	return o == Created || o == Reactivated || o == Deactivated
}

// Relation describes one relation table.
type Relation[T any] struct {
	// Name labels logs and metrics, e.g. "membership".
	Name string
	// SubjectColumn is the column of the acting entity, e.g. "user_id".
	SubjectColumn string
	// ObjectColumn is the column of the target entity, e.g. "club_id".
	ObjectColumn string
	// New builds a fresh active row for the pair.
	New func(subjectID, objectID uint64) *T
}

// Kernel reconciles rows of type T. T must embed models.Base.
type Kernel[T any] struct {
	db  *gorm.DB
	rel Relation[T]
	now func() time.Time
}

// New returns a kernel for the relation described by rel.
func New[T any](db *gorm.DB, rel Relation[T]) *Kernel[T] {
	return &Kernel[T]{
		db:  db,
		rel: rel,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy of the kernel using now as time source.
func (k *Kernel[T]) WithClock(now func() time.Time) *Kernel[T] {
	c := *k
	c.now = now

	return &c
}

// Name of the relation.
func (k *Kernel[T]) Name() string {
	return k.rel.Name
}

type probe struct {
	ID        uint64
	IsDeleted bool
}

func (k *Kernel[T]) subject(id uint64) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: k.rel.SubjectColumn}, Value: id}
}

func (k *Kernel[T]) object(id uint64) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: k.rel.ObjectColumn}, Value: id}
}

func (k *Kernel[T]) model(ctx context.Context) *gorm.DB {
	return k.db.WithContext(ctx).Model(new(T))
}

// Activate makes the pair active. Repeated calls converge on a single active row.
func (k *Kernel[T]) Activate(ctx context.Context, subjectID, objectID uint64) (Outcome, error) {
	if subjectID == 0 || objectID == 0 {
		return "", ErrInvalidID
	}

	o, err := k.activate(ctx, subjectID, objectID, true)
	if err != nil {
		return "", err
	}

	k.record(subjectID, objectID, o)

	return o, nil
}

func (k *Kernel[T]) activate(ctx context.Context, subjectID, objectID uint64, mayInsert bool) (Outcome, error) {
	var rows []probe

	err := k.model(ctx).
		Select("id", "is_deleted").
		Where(k.subject(subjectID)).
		Where(k.object(objectID)).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", errors.Wrapf(err, "lookup %s", k.rel.Name)
	}

	if len(rows) == 0 {
		if !mayInsert {
			return "", errors.Wrapf(ErrLostRow, "%s %d/%d", k.rel.Name, subjectID, objectID)
		}

		err = k.db.WithContext(ctx).Create(k.rel.New(subjectID, objectID)).Error

		switch {
		case err == nil:
			return Created, nil
		case IsUniqueViolation(err):
			log.Debug().Str("relation", k.rel.Name).
				Uint64("subject", subjectID).
				Uint64("object", objectID).
				Msg("concurrent insert detected, re-reading row")

			return k.activate(ctx, subjectID, objectID, false)
		default:
			return "", errors.Wrapf(err, "insert %s", k.rel.Name)
		}
	}

	if !rows[0].IsDeleted {
		return AlreadyActive, nil
	}

	res := k.model(ctx).
		Where("id = ? AND is_deleted = ?", rows[0].ID, true).
		Updates(models.Restore(k.now()))
	if res.Error != nil {
		return "", errors.Wrapf(res.Error, "reactivate %s", k.rel.Name)
	}

	// a concurrent caller reactivated it first
	if res.RowsAffected == 0 {
		return AlreadyActive, nil
	}

	return Reactivated, nil
}

// Deactivate soft deletes the active row of the pair. Rows are never physically removed.
func (k *Kernel[T]) Deactivate(ctx context.Context, subjectID, objectID uint64) (Outcome, error) {
	if subjectID == 0 || objectID == 0 {
		return "", ErrInvalidID
	}

	res := k.model(ctx).
		Scopes(models.Alive(false)).
		Where(k.subject(subjectID)).
		Where(k.object(objectID)).
		Updates(models.SoftDelete(k.now()))
	if res.Error != nil {
		return "", errors.Wrapf(res.Error, "deactivate %s", k.rel.Name)
	}

	o := Deactivated
	if res.RowsAffected == 0 {
		o = AlreadyInactive
	}

	k.record(subjectID, objectID, o)

	return o, nil
}

func (k *Kernel[T]) record(subjectID, objectID uint64, o Outcome) {
	observe(k.rel.Name, o)

	if o.Changed() {
		log.Debug().Str("relation", k.rel.Name).
			Uint64("subject", subjectID).
			Uint64("object", objectID).
			Str("outcome", string(o)).
			Msg("relation transition")
	}
}
