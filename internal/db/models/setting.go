package models

import "time"

// Setting is a named value persisted by the application itself, e.g. the applied seed version.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
