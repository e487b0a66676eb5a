// Package user provides the profile endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusclubs/clubhub/internal/attendance"
	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/user"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the user route group below the API group.
const Path = "/users"

type (
	// Handler serves the user endpoints.
	Handler struct {
		users      *user.Service
		attendance *attendance.Service
		accounts   *auth.LocalProvider
	}

	// PasswordRequest is the body of a password change.
	PasswordRequest struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8,max=256"`
	}
)

var _ handler.Service = (*Handler)(nil)

// New creates the user handler.
func New(users *user.Service, attendanceService *attendance.Service, accounts *auth.LocalProvider) *Handler {
	return &Handler{users: users, attendance: attendanceService, accounts: accounts}
}

// Routes registers the user routes.
func (h *Handler) Routes(router fiber.Router) {
	g := router.Group(Path)
	g.Get("/me", h.Me)
	g.Put("/me", h.UpdateMe)
	g.Put("/me/password", h.ChangePassword)
	g.Get("/:userId/attendances", h.Attendances)
}

// Me returns the caller's profile.
func (h *Handler) Me(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	me, err := h.users.Me(c.UserContext(), p.UserID)
	if err != nil {
		return err
	}

	return c.JSON(me)
}

// UpdateMe changes the provided profile fields and returns the profile.
func (h *Handler) UpdateMe(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	var in user.UpdateMeInput
	if err = handler.Bind(c, &in); err != nil {
		return err
	}

	me, err := h.users.UpdateMe(c.UserContext(), p.UserID, in)
	if err != nil {
		return err
	}

	return c.JSON(me)
}

// ChangePassword replaces the caller's password after checking the old one.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	var req PasswordRequest
	if err = handler.Bind(c, &req); err != nil {
		return err
	}

	if err = h.accounts.ChangePassword(c.UserContext(), p.UserID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// Attendances returns the events a user attends. Only the user and admins may read them.
func (h *Handler) Attendances(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	userID, err := handler.ParamID(c, handler.ParamUserID)
	if err != nil {
		return err
	}

	if !auth.CanViewUser(p, userID) {
		return auth.ErrForbidden
	}

	events, err := h.attendance.AttendedEvents(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(events)
}
