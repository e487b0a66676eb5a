package models

import "gorm.io/gorm"

// Alive returns a scope stating soft delete visibility explicitly.
// includeDeleted=false restricts the query to live rows.
func Alive(includeDeleted bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDeleted {
			return db
		}

		return db.Where("is_deleted = ?", false)
	}
}

// SoftDelete returns the column values marking a row as deleted at now.
func SoftDelete(now any) map[string]any {
	return map[string]any{
		"is_deleted": true,
		"is_active":  false,
		"deleted_at": now,
		"updated_at": now,
	}
}

// Restore returns the column values bringing a soft deleted row back to life.
func Restore(now any) map[string]any {
	return map[string]any{
		"is_deleted": false,
		"is_active":  true,
		"deleted_at": nil,
		"updated_at": now,
	}
}
