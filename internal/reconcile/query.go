package reconcile

import (
	"context"

	"github.com/pkg/errors"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// Count returns the number of active rows referencing objectID.
func (k *Kernel[T]) Count(ctx context.Context, objectID uint64) (int64, error) {
	if objectID == 0 {
		return 0, ErrInvalidID
	}

	var n int64

	err := k.model(ctx).Scopes(models.Alive(false)).Where(k.object(objectID)).Count(&n).Error

	return n, errors.Wrapf(err, "count %s", k.rel.Name)
}

// CountMany returns the active row count per object. Objects without rows are absent.
func (k *Kernel[T]) CountMany(ctx context.Context, objectIDs []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(objectIDs))
	if len(objectIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ObjectID uint64
		Total    int64
	}

	col := k.rel.ObjectColumn

	err := k.model(ctx).
		Select(col+" AS object_id, COUNT(*) AS total").
		Scopes(models.Alive(false)).
		Where(col+" IN ?", objectIDs).
		Group(col).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "count %s", k.rel.Name)
	}

	for _, r := range rows {
		out[r.ObjectID] = r.Total
	}

	return out, nil
}

// IsActive reports whether the pair has an active row.
func (k *Kernel[T]) IsActive(ctx context.Context, subjectID, objectID uint64) (bool, error) {
	if subjectID == 0 || objectID == 0 {
		return false, ErrInvalidID
	}

	var n int64

	err := k.model(ctx).
		Scopes(models.Alive(false)).
		Where(k.subject(subjectID)).
		Where(k.object(objectID)).
		Count(&n).Error

	return n > 0, errors.Wrapf(err, "check %s", k.rel.Name)
}

// ListActiveForSubject returns the active rows of subjectID ordered by object id.
func (k *Kernel[T]) ListActiveForSubject(ctx context.Context, subjectID uint64) ([]T, error) {
	if subjectID == 0 {
		return nil, ErrInvalidID
	}

	var rows []T

	err := k.model(ctx).
		Scopes(models.Alive(false)).
		Where(k.subject(subjectID)).
		Order(k.rel.ObjectColumn).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", k.rel.Name)
	}

	return rows, nil
}

// ActiveObjectIDs returns the object ids of the active rows of subjectID, ascending.
func (k *Kernel[T]) ActiveObjectIDs(ctx context.Context, subjectID uint64) ([]uint64, error) {
	if subjectID == 0 {
		return nil, ErrInvalidID
	}

	var ids []uint64

	err := k.model(ctx).
		Scopes(models.Alive(false)).
		Where(k.subject(subjectID)).
		Order(k.rel.ObjectColumn).
		Pluck(k.rel.ObjectColumn, &ids).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", k.rel.Name)
	}

	return ids, nil
}

// Find returns the row of the pair. Soft deleted rows are only returned with includeDeleted.
func (k *Kernel[T]) Find(ctx context.Context, subjectID, objectID uint64, includeDeleted bool) (*T, error) {
	if subjectID == 0 || objectID == 0 {
		return nil, ErrInvalidID
	}

	var rows []T

	err := k.model(ctx).
		Scopes(models.Alive(includeDeleted)).
		Where(k.subject(subjectID)).
		Where(k.object(objectID)).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", k.rel.Name)
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	return &rows[0], nil
}
