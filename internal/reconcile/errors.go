package reconcile

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrInvalidID is returned for a zero subject or object id, before the store is touched.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound is returned by Find when no row matches.
	ErrNotFound = errors.New("relation not found")
	// ErrLostRow is returned when a unique violation was reported but the winning row can not be read back.
	ErrLostRow = errors.New("relation row vanished after unique violation")
)

// uniqueViolationMarkers cover drivers or configurations without gorm error translation.
var uniqueViolationMarkers = []string{ //nolint:gochecknoglobals
	"UNIQUE constraint failed", // sqlite
	"Duplicate entry",          // mysql 1062
	"duplicate key value",      // postgres 23505
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	for _, m := range uniqueViolationMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}

	return false
}
