// Package login provides the token login endpoint.
package login

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the login route below the API group.
const Path = "/auth/login"

// Request is the body of a login request.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler serves the login endpoint.
type Handler struct {
	auth *auth.Service
}

var _ handler.Service = (*Handler)(nil)

// New creates the login handler.
func New(authService *auth.Service) *Handler {
	return &Handler{auth: authService}
}

// Routes registers the login route.
func (h *Handler) Routes(router fiber.Router) {
	router.Post(Path, h.Post)
}

// Post authenticates the credentials and returns a bearer token.
func (h *Handler) Post(c *fiber.Ctx) error {
	var req Request
	if err := handler.Bind(c, &req); err != nil {
		return err
	}

	res, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		log.Info().Str("email", req.Email).Str("ip", c.IP()).Err(err).Msg("login failed")

		return err
	}

	log.Info().Uint64("user_id", res.User.ID).Msg("user logged in")

	return c.JSON(res)
}
