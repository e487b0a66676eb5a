package club_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/club"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
	"github.com/campusclubs/clubhub/internal/membership"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := club.NewService(db, membership.NewService(db))

	got, err := svc.Create(ctx, club.CreateInput{Name: "  Chess ", Description: "Weekly games"})
	require.NoError(t, err)
	assert.Equal(t, "Chess", got.Name)
	assert.Zero(t, got.MemberCount)

	tests := []struct {
		name    string
		in      club.CreateInput
		wantErr error
	}{
		{name: "duplicate", in: club.CreateInput{Name: "Chess"}, wantErr: club.ErrClubExists},
		{name: "duplicate after trim", in: club.CreateInput{Name: " Chess"}, wantErr: club.ErrClubExists},
		{name: "blank", in: club.CreateInput{Name: "  "}, wantErr: club.ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListAndGet(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	members := membership.NewService(db)
	svc := club.NewService(db, members)

	robots := testdb.Club(t, db, "Robotics")
	chess := testdb.Club(t, db, "Chess")
	gone := testdb.Club(t, db, "Archery")
	testdb.SoftDelete(t, db, &models.Club{}, gone.ID)

	for _, name := range []string{"alice", "bob"} {
		u := testdb.User(t, db, name)
		_, _, err := members.Join(ctx, u.ID, robots.ID)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []club.DTO{
		{ID: chess.ID, Name: "Chess", Description: "Chess club", MemberCount: 0},
		{ID: robots.ID, Name: "Robotics", Description: "Robotics club", MemberCount: 2},
	}, list)

	got, err := svc.Get(ctx, robots.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.MemberCount)

	_, err = svc.Get(ctx, gone.ID)
	require.ErrorIs(t, err, club.ErrClubNotFound)

	ok, err := svc.Exists(ctx, chess.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, gone.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
