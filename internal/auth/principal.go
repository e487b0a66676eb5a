package auth

import "github.com/gofiber/fiber/v2"

const (
	// LocalsPrincipal is the fiber locals key of the authenticated Principal.
	LocalsPrincipal = "principal"
	// LocalsUserID is the fiber locals key of the authenticated user id, read by the access log.
	LocalsUserID = "userID"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID  uint64
	IsAdmin bool
}

// SetPrincipal stores p in the request locals.
func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(LocalsPrincipal, p)
	c.Locals(LocalsUserID, p.UserID)
}

// CurrentPrincipal returns the principal stored by the authentication middleware.
func CurrentPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(LocalsPrincipal).(Principal)

	return p, ok && p.UserID != 0
}
