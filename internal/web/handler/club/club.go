// Package club provides the club endpoints: clubs, their members, events and announcements.
package club

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusclubs/clubhub/internal/announcement"
	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/club"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/event"
	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the club route group below the API group.
const Path = "/clubs"

type (
	// Handler serves the club endpoints.
	Handler struct {
		auth          *auth.Service
		clubs         *club.Service
		members       *membership.Service
		events        *event.Service
		announcements *announcement.Service
	}

	// CountResponse carries a member count.
	CountResponse struct {
		Count int64 `json:"count"`
	}

	// RoleRequest is the body of a role change.
	RoleRequest struct {
		Role models.Role `json:"role" validate:"required"`
	}
)

var _ handler.Service = (*Handler)(nil)

// New creates the club handler.
func New(
	authService *auth.Service,
	clubs *club.Service,
	members *membership.Service,
	events *event.Service,
	announcements *announcement.Service,
) *Handler {
	return &Handler{
		auth:          authService,
		clubs:         clubs,
		members:       members,
		events:        events,
		announcements: announcements,
	}
}

// Routes registers the club routes.
func (h *Handler) Routes(router fiber.Router) {
	manager := auth.RequireClubManager(h.auth, handler.ParamClubID)

	g := router.Group(Path)
	g.Get(handler.RootPath, h.List)
	g.Post(handler.RootPath, auth.RequireAdmin(), h.Create)
	g.Get("/:clubId", h.Get)
	g.Get("/:clubId/members/count", h.MemberCount)
	g.Put("/:clubId/members/:userId/role", auth.RequireAdmin(), h.SetRole)
	g.Get("/:clubId/events", h.Events)
	g.Post("/:clubId/events", manager, h.CreateEvent)
	g.Patch("/:clubId/events/:eventId", manager, h.PatchEvent)
	g.Delete("/:clubId/events/:eventId", manager, h.DeleteEvent)
	g.Post("/:clubId/announcements", manager, h.CreateAnnouncement)
}

// List returns all clubs with their member counts.
func (h *Handler) List(c *fiber.Ctx) error {
	clubs, err := h.clubs.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(clubs)
}

// Create adds a club.
func (h *Handler) Create(c *fiber.Ctx) error {
	var in club.CreateInput
	if err := handler.Bind(c, &in); err != nil {
		return err
	}

	d, err := h.clubs.Create(c.UserContext(), in)
	if err != nil {
		return err
	}

	return handler.Created(c, d)
}

// Get returns one club.
func (h *Handler) Get(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	d, err := h.clubs.Get(c.UserContext(), clubID)
	if err != nil {
		return err
	}

	return c.JSON(d)
}

// MemberCount returns the number of active members.
func (h *Handler) MemberCount(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	n, err := h.members.MemberCount(c.UserContext(), clubID)
	if err != nil {
		return err
	}

	return c.JSON(CountResponse{Count: n})
}

// SetRole changes the role of an active member.
func (h *Handler) SetRole(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	userID, err := handler.ParamID(c, handler.ParamUserID)
	if err != nil {
		return err
	}

	var req RoleRequest
	if err = handler.Bind(c, &req); err != nil {
		return err
	}

	if err = h.members.SetRole(c.UserContext(), userID, clubID, req.Role); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// Events returns the live events of the club in chronological order.
func (h *Handler) Events(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	events, err := h.events.ListByClub(c.UserContext(), clubID)
	if err != nil {
		return err
	}

	return c.JSON(events)
}

// CreateEvent schedules an event of the club.
func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	var in event.CreateInput
	if err = handler.Bind(c, &in); err != nil {
		return err
	}

	d, err := h.events.Create(c.UserContext(), clubID, in)
	if err != nil {
		return err
	}

	return handler.Created(c, d)
}

// PatchEvent changes the provided fields of an event.
func (h *Handler) PatchEvent(c *fiber.Ctx) error {
	clubID, eventID, err := clubEvent(c)
	if err != nil {
		return err
	}

	var in event.PatchInput
	if err = handler.Bind(c, &in); err != nil {
		return err
	}

	if err = h.events.Patch(c.UserContext(), clubID, eventID, in); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// DeleteEvent soft deletes an event.
func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	clubID, eventID, err := clubEvent(c)
	if err != nil {
		return err
	}

	if err = h.events.Delete(c.UserContext(), clubID, eventID); err != nil {
		return err
	}

	return handler.NoContent(c)
}

// CreateAnnouncement posts an announcement to the club.
func (h *Handler) CreateAnnouncement(c *fiber.Ctx) error {
	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	var in announcement.CreateInput
	if err = handler.Bind(c, &in); err != nil {
		return err
	}

	d, err := h.announcements.Create(c.UserContext(), clubID, in)
	if err != nil {
		return err
	}

	return handler.Created(c, d)
}

func clubEvent(c *fiber.Ctx) (clubID, eventID uint64, err error) {
	if clubID, err = handler.ParamID(c, handler.ParamClubID); err != nil {
		return 0, 0, err
	}

	if eventID, err = handler.ParamID(c, handler.ParamEventID); err != nil {
		return 0, 0, err
	}

	return clubID, eventID, nil
}
