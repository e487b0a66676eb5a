package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/user"
)

func ptr[T any](v T) *T { return &v }

func TestMe(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	members := membership.NewService(db)
	svc := user.NewService(db, members)

	alice := testdb.User(t, db, "alice")
	chess := testdb.Club(t, db, "Chess")

	me, err := svc.Me(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
	assert.NotNil(t, me.Memberships)
	assert.Empty(t, me.Memberships)

	_, _, err = members.Join(ctx, alice.ID, chess.ID)
	require.NoError(t, err)

	me, err = svc.Me(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []membership.DTO{{ClubID: chess.ID, Role: models.RoleMember}}, me.Memberships)

	_, err = svc.Me(ctx, 999)
	require.ErrorIs(t, err, user.ErrUserNotFound)

	testdb.SoftDelete(t, db, &models.User{}, alice.ID)
	_, err = svc.Me(ctx, alice.ID)
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateMe(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := user.NewService(db, membership.NewService(db))

	alice := testdb.User(t, db, "alice")
	birth := time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC)

	me, err := svc.UpdateMe(ctx, alice.ID, user.UpdateMeInput{
		Department: ptr(" Physics "),
		Grade:      ptr(3),
		BirthDate:  &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Physics", me.Department)
	require.NotNil(t, me.Grade)
	assert.Equal(t, 3, *me.Grade)
	require.NotNil(t, me.BirthDate)
	assert.True(t, birth.Equal(*me.BirthDate))
	assert.Equal(t, "alice", me.FullName, "untouched fields keep their value")

	me, err = svc.UpdateMe(ctx, alice.ID, user.UpdateMeInput{Bio: ptr("Likes chess")})
	require.NoError(t, err)
	assert.Equal(t, "Likes chess", me.Bio)
	assert.Equal(t, "Physics", me.Department)

	_, err = svc.UpdateMe(ctx, 999, user.UpdateMeInput{Bio: ptr("x")})
	require.ErrorIs(t, err, user.ErrUserNotFound)
}
