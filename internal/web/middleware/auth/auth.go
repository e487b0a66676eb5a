package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/campusclubs/clubhub/internal/auth"
)

const bearerPrefix = "bearer "

// TokenParser verifies a bearer token.
type TokenParser interface {
	ParseToken(token string) (auth.Principal, error)
}

// New creates a Fiber middleware that resolves the bearer token of a request into a principal.
// Requests without a token pass anonymously; handlers that need a caller reject them.
// An invalid token is always rejected.
func New(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := BearerToken(c)
		if !ok {
			return c.Next()
		}

		p, err := parser.ParseToken(token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("rejected bearer token")

			return auth.ErrInvalidToken
		}

		auth.SetPrincipal(c, p)

		return c.Next()
	}
}

// Require rejects requests without an authenticated principal.
func Require(c *fiber.Ctx) error {
	if _, ok := auth.CurrentPrincipal(c); !ok {
		return auth.ErrUnauthenticated
	}

	return c.Next()
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
