package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db"
	"github.com/campusclubs/clubhub/internal/db/models"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		engine  string
		name    string
		wantErr bool
	}{
		{engine: config.EngineMySQL, name: "mysql"},
		{engine: config.EnginePostgres, name: "postgres"},
		{engine: config.EngineSQLite, name: "sqlite"},
		{engine: "", name: "sqlite"},
		{engine: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			d, err := db.Dialector(&config.DB{GormEngine: tt.engine, Name: "clubhub"})
			if tt.wantErr {
				require.ErrorIs(t, err, db.ErrUnknownEngine)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.DB{
		GormEngine:   config.EngineSQLite,
		Name:         filepath.Join(t.TempDir(), "clubhub.db"),
		MaxOpenConns: 1,
	}

	gdb, err := db.Open(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, db.Migrate(ctx, gdb))
	// migrations are repeatable
	require.NoError(t, db.Migrate(ctx, gdb))

	for _, m := range models.All() {
		assert.True(t, gdb.Migrator().HasTable(m))
	}

	assert.True(t, gdb.Migrator().HasIndex(&models.Membership{}, "idx_membership_user_club"))
	assert.True(t, gdb.Migrator().HasIndex(&models.EventAttendance{}, "idx_attendance_user_event"))
}
