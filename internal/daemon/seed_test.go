package daemon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db/controller/setting"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
)

func seedConfig(demo bool) *config.Config {
	return &config.Config{Seed: config.Seed{
		AdminEmail:    "Admin@Campus.Test",
		AdminPassword: "changeme",
		DemoClubs:     demo,
	}}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	require.NoError(t, Seed(ctx, seedConfig(true), db))

	admin, err := auth.NewLocalProvider(db).Authenticate(ctx, "admin@campus.test", "changeme")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	var clubs int64
	require.NoError(t, db.Model(&models.Club{}).Count(&clubs).Error)
	assert.Equal(t, int64(len(demoClubs)), clubs)

	var marker SeedMarker
	require.NoError(t, setting.LoadJSON(ctx, db, SeedSetting, &marker))
	assert.Equal(t, "admin@campus.test", marker.Admin)
	assert.Equal(t, len(demoClubs), marker.DemoClubs)
	assert.False(t, marker.SeededAt.IsZero())

	// second run is a no-op
	require.NoError(t, Seed(ctx, seedConfig(true), db))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestSeedExistingData(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	testdb.User(t, db, "alice")
	testdb.Club(t, db, "Chess")

	require.NoError(t, Seed(ctx, seedConfig(true), db))

	var users, clubs int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Club{}).Count(&clubs).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(len(demoClubs)), clubs)

	var marker SeedMarker
	require.NoError(t, setting.LoadJSON(ctx, db, SeedSetting, &marker))
	assert.Empty(t, marker.Admin)
	assert.Equal(t, len(demoClubs)-1, marker.DemoClubs)
}

func TestSeedWithoutAdmin(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	require.NoError(t, Seed(ctx, &config.Config{}, db))

	var users, clubs int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Club{}).Count(&clubs).Error)
	assert.Zero(t, users)
	assert.Zero(t, clubs)
}

func TestNewWithoutConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	require.ErrorIs(t, err, ErrConfigNil)
}
