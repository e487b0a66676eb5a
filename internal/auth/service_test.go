package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
	"github.com/campusclubs/clubhub/internal/membership"
)

func newService(t *testing.T) (*auth.Service, *membership.Service, *gorm.DB) {
	t.Helper()

	db := testdb.New(t)
	members := membership.NewService(db)

	return auth.NewService(db, testTokens(), members), members, db
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, members, db := newService(t)

	ada, err := svc.Local().CreateUser(ctx, auth.NewUser{
		Username: "ada",
		Email:    "Ada@Campus.local",
		Password: "correct horse",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@campus.local", ada.Email)

	chess := testdb.Club(t, db, "Chess")
	_, _, err = members.Join(ctx, ada.ID, chess.ID)
	require.NoError(t, err)

	res, err := svc.Login(ctx, " ada@campus.local", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, auth.LoginUser{
		ID:          ada.ID,
		Name:        "Ada Lovelace",
		Email:       "ada@campus.local",
		Memberships: []membership.DTO{{ClubID: chess.ID, Role: models.RoleMember}},
	}, res.User)

	p, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{UserID: ada.ID}, p)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "wrong password", email: "ada@campus.local", password: "wrong", wantErr: auth.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@campus.local", password: "correct horse", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	testdb.SoftDelete(t, db, &models.User{}, ada.ID)

	_, err = svc.Login(ctx, "ada@campus.local", "correct horse")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Local().CreateUser(ctx, auth.NewUser{Username: "ada", Email: "ada@campus.local", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Local().CreateUser(ctx, auth.NewUser{Username: "ada", Email: "other@campus.local", Password: "pw"})
	require.ErrorIs(t, err, auth.ErrUserNameOrEmailExists)

	_, err = svc.Local().CreateUser(ctx, auth.NewUser{Username: "other", Email: "ADA@campus.local", Password: "pw"})
	require.ErrorIs(t, err, auth.ErrUserNameOrEmailExists)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	u, err := svc.Local().CreateUser(ctx, auth.NewUser{Username: "ada", Email: "ada@campus.local", Password: "old"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Local().ChangePassword(ctx, u.ID, "wrong", "new"), auth.ErrInvalidOldPassword)
	require.ErrorIs(t, svc.Local().ChangePassword(ctx, 999, "old", "new"), auth.ErrUserNotFound)
	require.NoError(t, svc.Local().ChangePassword(ctx, u.ID, "old", "new"))

	_, err = svc.Login(ctx, "ada@campus.local", "new")
	require.NoError(t, err)
}

func TestCanManageClub(t *testing.T) {
	ctx := context.Background()
	svc, members, db := newService(t)

	pres := testdb.User(t, db, "pres")
	member := testdb.User(t, db, "member")
	chess := testdb.Club(t, db, "Chess")
	drama := testdb.Club(t, db, "Drama")

	for _, u := range []*models.User{pres, member} {
		_, _, err := members.Join(ctx, u.ID, chess.ID)
		require.NoError(t, err)
	}

	require.NoError(t, members.SetRole(ctx, pres.ID, chess.ID, models.RolePresident))

	tests := []struct {
		name string
		p    auth.Principal
		club uint64
		want bool
	}{
		{name: "president", p: auth.Principal{UserID: pres.ID}, club: chess.ID, want: true},
		{name: "president of other club", p: auth.Principal{UserID: pres.ID}, club: drama.ID},
		{name: "member", p: auth.Principal{UserID: member.ID}, club: chess.ID},
		{name: "admin", p: auth.Principal{UserID: member.ID, IsAdmin: true}, club: drama.ID, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanManageClub(ctx, tt.p, tt.club)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, auth.CanViewUser(auth.Principal{UserID: 3}, 3))
	assert.False(t, auth.CanViewUser(auth.Principal{UserID: 3}, 4))
	assert.True(t, auth.CanViewUser(auth.Principal{UserID: 3, IsAdmin: true}, 4))
}
