package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db/models"
)

const devSecretBytes = 32

// Claims are the bearer token claims. The subject holds the user id.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// UserID returns the user id stored in the subject.
func (c *Claims) UserID() (uint64, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}

	return id, nil
}

// Tokens issues and verifies HS256 bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokens creates a token issuer from the auth config.
// An empty secret, accepted in dev mode only, is replaced by a random per-process secret.
func NewTokens(cfg config.Auth) *Tokens {
	secret := []byte(cfg.JWTSecret)

	if len(secret) == 0 {
		buf := make([]byte, devSecretBytes)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("failed to generate token secret")
		}

		secret = []byte(hex.EncodeToString(buf))

		log.Warn().Msg("no JWT secret configured, using a random secret: tokens will not survive a restart")
	}

	return &Tokens{secret: secret, ttl: cfg.TokenTTL, issuer: cfg.Issuer, now: time.Now}
}

// WithClock returns a copy using now as time source.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	c := *t
	c.now = now

	return &c
}

// Issue signs a token for u. It returns the token and its expiry.
func (t *Tokens) Issue(u *models.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims := Claims{
		Admin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(u.ID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, exp, nil
}

// Parse verifies signature, issuer and expiry of token.
func (t *Tokens) Parse(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if _, err = claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
