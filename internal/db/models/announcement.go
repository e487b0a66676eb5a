package models

// Announcement is a message posted to a club's members.
type Announcement struct {
	Base
	ClubID  uint64 `gorm:"column:club_id;not null;index"`
	Title   string `gorm:"size:200;not null"`
	Content string `gorm:"type:text"`
	Pinned  bool   `gorm:"not null;default:false"`

	Club Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for the Announcement model.
func (Announcement) TableName() string {
	return "announcements"
}
