package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// User represents an account of a student or staff member.
type User struct {
	Base
	// Username is the unique login handle.
	Username string `gorm:"uniqueIndex;size:100;not null"`
	// Email is the unique address used for login.
	Email string `gorm:"uniqueIndex;size:255;not null"`
	// Password is the Argon2id hash.
	Password string `gorm:"size:255;not null"`
	// FullName is shown to other members.
	FullName string `gorm:"size:200"`
	// IsAdmin grants campus wide administration.
	IsAdmin bool `gorm:"not null;default:false"`

	Department    string `gorm:"size:200"`
	Grade         *int
	BirthDate     *time.Time
	Phone         string `gorm:"size:50"`
	Bio           string `gorm:"size:1000"`
	AvatarDataURL string `gorm:"type:text"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	return hash, nil
}

// VerifyPassword verifies a plaintext password against the stored hash in constant time.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Uint64("userId", u.ID).Msg("failed to verify password")

		return false
	}

	return match
}
