package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db/models"
)

func testTokens() *auth.Tokens {
	return auth.NewTokens(config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "clubhub"})
}

func TestIssueAndParse(t *testing.T) {
	tokens := testTokens()
	u := &models.User{Base: models.Base{ID: 7}, IsAdmin: true}

	token, exp, err := tokens.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
}

func TestParseRejects(t *testing.T) {
	tokens := testTokens()
	u := &models.User{Base: models.Base{ID: 7}}

	expired, _, err := tokens.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).Issue(u)
	require.NoError(t, err)

	foreign, _, err := auth.NewTokens(config.Auth{JWTSecret: "other", TokenTTL: time.Hour, Issuer: "clubhub"}).Issue(u)
	require.NoError(t, err)

	otherIssuer, _, err := auth.NewTokens(config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "elsewhere"}).Issue(u)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "7", "iss": "clubhub", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "clubhub", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": foreign,
		"wrong issuer": otherIssuer,
		"alg none":     none,
		"no subject":   noSubject,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Parse(token)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestDevSecret(t *testing.T) {
	a := auth.NewTokens(config.Auth{TokenTTL: time.Hour, Issuer: "clubhub"})
	b := auth.NewTokens(config.Auth{TokenTTL: time.Hour, Issuer: "clubhub"})
	u := &models.User{Base: models.Base{ID: 1}}

	token, _, err := a.Issue(u)
	require.NoError(t, err)

	_, err = a.Parse(token)
	require.NoError(t, err)

	_, err = b.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
