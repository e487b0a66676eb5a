package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequireAdmin creates Fiber middleware that only lets administrators pass.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return ErrUnauthenticated
		}

		if !p.IsAdmin {
			log.Warn().Uint64("user_id", p.UserID).Str("path", c.Path()).Msg("admin required")

			return ErrForbidden
		}

		return c.Next()
	}
}

// RequireClubManager creates Fiber middleware that lets administrators and presidents
// of the club identified by route parameter param pass.
func RequireClubManager(authService *Service, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return ErrUnauthenticated
		}

		clubID, err := c.ParamsInt(param)
		if err != nil || clubID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid "+param)
		}

		allowed, err := authService.CanManageClub(c.UserContext(), p, uint64(clubID))
		if err != nil {
			log.Error().Err(err).Uint64("user_id", p.UserID).Int("club_id", clubID).
				Msg("failed to check club permission")

			return err
		}

		if !allowed {
			log.Warn().Uint64("user_id", p.UserID).Int("club_id", clubID).Msg("club manager required")

			return ErrForbidden
		}

		return c.Next()
	}
}
