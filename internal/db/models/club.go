package models

// Club is a student organization users can join.
type Club struct {
	Base
	Name        string `gorm:"uniqueIndex;size:200;not null"`
	Description string `gorm:"size:2000"`
}

// TableName specifies the database table name for the Club model.
func (Club) TableName() string {
	return "clubs"
}
