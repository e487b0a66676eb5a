// Package models contains database model definitions.
package models

import "time"

// Base carries the identity, audit and liveness columns shared by all entities.
type Base struct {
	// ID is the surrogate identity, immutable once assigned.
	ID uint64 `gorm:"primaryKey"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM and bumped on every state change.
	UpdatedAt time.Time
	// IsActive always mirrors !IsDeleted.
	IsActive bool `gorm:"not null;default:true"`
	// IsDeleted is the soft delete marker.
	IsDeleted bool `gorm:"not null;default:false;index"`
	// DeletedAt is set when soft deleted and cleared on reactivation.
	DeletedAt *time.Time
}

// Alive reports whether the row is visible to default queries.
func (b *Base) Alive() bool {
	return !b.IsDeleted
}

// All returns every model that is part of the schema, in migration order.
func All() []any {
	return []any{
		&User{},
		&Club{},
		&Membership{},
		&Event{},
		&EventAttendance{},
		&Announcement{},
		&Setting{},
	}
}
