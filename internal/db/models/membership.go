package models

// Role of a user inside a club.
type Role string

const (
	// RoleMember is assigned on join.
	RoleMember Role = "Member"
	// RolePresident may manage the club's events and announcements.
	RolePresident Role = "President"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RolePresident
}

// Membership links a user to a club. There is at most one row per (user, club),
// leaving soft deletes it and joining again reactivates it.
type Membership struct {
	Base
	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_membership_user_club,priority:1"`
	ClubID uint64 `gorm:"column:club_id;not null;uniqueIndex:idx_membership_user_club,priority:2;index"`
	Role   Role   `gorm:"type:varchar(20);not null;default:'Member'"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Club Club `gorm:"foreignKey:ClubID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for the Membership model.
func (Membership) TableName() string {
	return "memberships"
}

// NewMembership builds an active member row for the pair.
func NewMembership(userID, clubID uint64) *Membership {
	return &Membership{
		Base:   Base{IsActive: true},
		UserID: userID,
		ClubID: clubID,
		Role:   RoleMember,
	}
}
