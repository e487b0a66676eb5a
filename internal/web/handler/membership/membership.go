// Package membership provides the endpoints to join and leave clubs.
package membership

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the membership route group below the API group.
const Path = "/memberships"

type (
	// Handler serves the membership endpoints.
	Handler struct {
		members *membership.Service
	}

	// StatusResponse tells whether the caller is an active member of a club.
	StatusResponse struct {
		ClubID uint64 `json:"clubId"`
		Member bool   `json:"member"`
	}

	// Request names the club to join or leave.
	Request struct {
		ClubID uint64 `json:"clubId" validate:"required,gt=0"`
	}
)

var _ handler.Service = (*Handler)(nil)

// New creates the membership handler.
func New(members *membership.Service) *Handler {
	return &Handler{members: members}
}

// Routes registers the membership routes.
func (h *Handler) Routes(router fiber.Router) {
	g := router.Group(Path)
	g.Get(handler.RootPath, h.List)
	g.Get("/:clubId/is-member", h.Status)
	g.Post("/join", h.Join)
	g.Post("/leave", h.Leave)
}

// List returns the caller's active memberships.
func (h *Handler) List(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	ms, err := h.members.ListForUser(c.UserContext(), p.UserID)
	if err != nil {
		return err
	}

	return c.JSON(ms)
}

// Status tells whether the caller is an active member of the club.
func (h *Handler) Status(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	clubID, err := handler.ParamID(c, handler.ParamClubID)
	if err != nil {
		return err
	}

	ok, err := h.members.IsMember(c.UserContext(), p.UserID, clubID)
	if err != nil {
		return err
	}

	return c.JSON(StatusResponse{ClubID: clubID, Member: ok})
}

// Join makes the caller a member. Joining twice is a no-op.
func (h *Handler) Join(c *fiber.Ctx) error {
	userID, req, err := h.parse(c)
	if err != nil {
		return err
	}

	_, outcome, err := h.members.Join(c.UserContext(), userID, req.ClubID)
	if err != nil {
		return err
	}

	log.Debug().Uint64("user_id", userID).Uint64("club_id", req.ClubID).Str("outcome", string(outcome)).Msg("join")

	return handler.NoContent(c)
}

// Leave ends the caller's membership. Leaving a club one is not a member of is a no-op.
func (h *Handler) Leave(c *fiber.Ctx) error {
	userID, req, err := h.parse(c)
	if err != nil {
		return err
	}

	if _, err = h.members.Leave(c.UserContext(), userID, req.ClubID); err != nil {
		return err
	}

	return handler.NoContent(c)
}

func (h *Handler) parse(c *fiber.Ctx) (uint64, Request, error) {
	var req Request

	p, err := handler.Principal(c)
	if err != nil {
		return 0, req, err
	}

	if err = handler.Bind(c, &req); err != nil {
		return 0, req, err
	}

	return p.UserID, req, nil
}
