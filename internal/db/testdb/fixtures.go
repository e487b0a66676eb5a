package testdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/db/models"
)

// User inserts an active user. The password column holds a placeholder, not a valid hash.
func User(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	u := &models.User{
		Base:     models.Base{IsActive: true},
		Username: username,
		Email:    username + "@campus.test",
		Password: "-",
		FullName: username,
	}
	require.NoError(t, db.Create(u).Error, "create user %s", username)

	return u
}

// Club inserts an active club.
func Club(t *testing.T, db *gorm.DB, name string) *models.Club {
	t.Helper()

	c := &models.Club{Base: models.Base{IsActive: true}, Name: name, Description: name + " club"}
	require.NoError(t, db.Create(c).Error, "create club %s", name)

	return c
}

// Event inserts a published event of clubID lasting one hour from start.
func Event(t *testing.T, db *gorm.DB, clubID uint64, title string, start time.Time) *models.Event {
	t.Helper()

	e := &models.Event{
		Base:        models.Base{IsActive: true},
		ClubID:      clubID,
		Title:       title,
		Location:    fmt.Sprintf("Room %d", clubID),
		StartAt:     start.UTC(),
		EndAt:       start.Add(time.Hour).UTC(),
		IsPublished: true,
	}
	require.NoError(t, db.Create(e).Error, "create event %s", title)

	return e
}

// SoftDelete marks the row of model with id as deleted.
func SoftDelete(t *testing.T, db *gorm.DB, model any, id uint64) {
	t.Helper()

	require.NoError(t, db.Model(model).Where("id = ?", id).Updates(models.SoftDelete(time.Now().UTC())).Error)
}
