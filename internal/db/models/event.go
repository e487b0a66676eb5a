package models

import "time"

// Event is a scheduled club activity. Times are stored in UTC.
type Event struct {
	Base
	ClubID      uint64    `gorm:"column:club_id;not null;index"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:4000"`
	Location    string    `gorm:"size:300"`
	StartAt     time.Time `gorm:"not null;index"`
	EndAt       time.Time `gorm:"not null"`
	IsPublished bool      `gorm:"not null;default:true"`

	Club Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for the Event model.
func (Event) TableName() string {
	return "events"
}

// EventAttendance links a user to an event they attend. Same lifecycle as Membership.
type EventAttendance struct {
	Base
	UserID  uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_attendance_user_event,priority:1"`
	EventID uint64 `gorm:"column:event_id;not null;uniqueIndex:idx_attendance_user_event,priority:2;index"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for the EventAttendance model.
func (EventAttendance) TableName() string {
	return "event_attendances"
}

// NewEventAttendance builds an active attendance row for the pair.
func NewEventAttendance(userID, eventID uint64) *EventAttendance {
	return &EventAttendance{
		Base:    Base{IsActive: true},
		UserID:  userID,
		EventID: eventID,
	}
}
