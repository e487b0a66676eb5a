// Package announcement provides the announcement feed endpoints.
package announcement

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusclubs/clubhub/internal/announcement"
	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the announcement route group below the API group.
const Path = "/announcements"

// Handler serves the announcement endpoints.
type Handler struct {
	auth          *auth.Service
	announcements *announcement.Service
	members       *membership.Service
}

var _ handler.Service = (*Handler)(nil)

// New creates the announcement handler.
func New(authService *auth.Service, announcements *announcement.Service, members *membership.Service) *Handler {
	return &Handler{auth: authService, announcements: announcements, members: members}
}

// Routes registers the announcement routes.
func (h *Handler) Routes(router fiber.Router) {
	g := router.Group(Path)
	g.Get(handler.RootPath, h.List)
	g.Get("/:id", h.Get)
	g.Patch("/:id", h.Patch)
	g.Delete("/:id", h.Delete)
}

// List returns the announcements of ?clubIds=, or of the caller's clubs when absent.
func (h *Handler) List(c *fiber.Ctx) error {
	clubIDs, ok, err := handler.QueryIDs(c, "clubIds")
	if err != nil {
		return err
	}

	if !ok {
		p, perr := handler.Principal(c)
		if perr != nil {
			return perr
		}

		if clubIDs, err = h.members.ClubIDs(c.UserContext(), p.UserID); err != nil {
			return err
		}
	}

	list, err := h.announcements.ListByClubs(c.UserContext(), clubIDs)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// Get returns one live announcement.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, handler.ParamGenericID)
	if err != nil {
		return err
	}

	a, err := h.announcements.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(a)
}

// Patch changes the provided fields of an announcement.
func (h *Handler) Patch(c *fiber.Ctx) error {
	id, err := h.authorize(c)
	if err != nil {
		return err
	}

	var in announcement.PatchInput
	if err = handler.Bind(c, &in); err != nil {
		return err
	}

	if err = h.announcements.Patch(c.UserContext(), id, in); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// Delete soft deletes an announcement.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := h.authorize(c)
	if err != nil {
		return err
	}

	if err = h.announcements.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// authorize resolves the announcement id and checks the caller manages its club.
func (h *Handler) authorize(c *fiber.Ctx) (uint64, error) {
	p, err := handler.Principal(c)
	if err != nil {
		return 0, err
	}

	id, err := handler.ParamID(c, handler.ParamGenericID)
	if err != nil {
		return 0, err
	}

	clubID, err := h.announcements.ClubID(c.UserContext(), id)
	if err != nil {
		return 0, err
	}

	allowed, err := h.auth.CanManageClub(c.UserContext(), p, clubID)
	if err != nil {
		return 0, err
	}

	if !allowed {
		return 0, auth.ErrForbidden
	}

	return id, nil
}
