// Package event provides the event and attendance endpoints.
package event

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campusclubs/clubhub/internal/attendance"
	"github.com/campusclubs/clubhub/internal/event"
	"github.com/campusclubs/clubhub/internal/web/handler"
)

// Path is the event route group below the API group.
const Path = "/events"

type (
	// Handler serves the event endpoints.
	Handler struct {
		events     *event.Service
		attendance *attendance.Service
	}

	// CountResponse carries an attendance count.
	CountResponse struct {
		Count int64 `json:"count"`
	}

	// AttendingResponse tells whether the caller attends an event.
	AttendingResponse struct {
		Attending bool `json:"attending"`
	}
)

var _ handler.Service = (*Handler)(nil)

// New creates the event handler.
func New(events *event.Service, attendanceService *attendance.Service) *Handler {
	return &Handler{events: events, attendance: attendanceService}
}

// Routes registers the event routes.
func (h *Handler) Routes(router fiber.Router) {
	g := router.Group(Path)
	g.Get(handler.RootPath, h.List)
	g.Get("/upcoming", h.Upcoming)
	g.Get("/:eventId", h.Get)
	g.Get("/:eventId/attendance/count", h.Count)
	g.Get("/:eventId/attendance/is-attending", h.IsAttending)
	g.Post("/:eventId/attendance/attend", h.Attend)
	g.Post("/:eventId/attendance/unattend", h.Unattend)
}

// List returns all live events, newest start first.
func (h *Handler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(events)
}

// Upcoming returns the caller's upcoming club events within ?days=.
func (h *Handler) Upcoming(c *fiber.Ctx) error {
	p, err := handler.Principal(c)
	if err != nil {
		return err
	}

	days := 0

	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			return event.ErrInvalidDays
		}
	}

	events, err := h.events.Upcoming(c.UserContext(), p.UserID, days)
	if err != nil {
		return err
	}

	return c.JSON(events)
}

// Get returns one live event.
func (h *Handler) Get(c *fiber.Ctx) error {
	eventID, err := handler.ParamID(c, handler.ParamEventID)
	if err != nil {
		return err
	}

	e, err := h.events.Get(c.UserContext(), eventID)
	if err != nil {
		return err
	}

	return c.JSON(e)
}

// Count returns the number of active attendees.
func (h *Handler) Count(c *fiber.Ctx) error {
	eventID, err := handler.ParamID(c, handler.ParamEventID)
	if err != nil {
		return err
	}

	n, err := h.attendance.Count(c.UserContext(), eventID)
	if err != nil {
		return err
	}

	return c.JSON(CountResponse{Count: n})
}

// IsAttending tells whether the caller attends the event.
func (h *Handler) IsAttending(c *fiber.Ctx) error {
	userID, eventID, err := callerEvent(c)
	if err != nil {
		return err
	}

	ok, err := h.attendance.IsAttending(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}

	return c.JSON(AttendingResponse{Attending: ok})
}

// Attend marks the caller as attending and returns the new count.
func (h *Handler) Attend(c *fiber.Ctx) error {
	userID, eventID, err := callerEvent(c)
	if err != nil {
		return err
	}

	n, err := h.attendance.Attend(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}

	return c.JSON(CountResponse{Count: n})
}

// Unattend withdraws the caller's attendance and returns the new count.
func (h *Handler) Unattend(c *fiber.Ctx) error {
	userID, eventID, err := callerEvent(c)
	if err != nil {
		return err
	}

	n, err := h.attendance.Unattend(c.UserContext(), userID, eventID)
	if err != nil {
		return err
	}

	return c.JSON(CountResponse{Count: n})
}

func callerEvent(c *fiber.Ctx) (userID, eventID uint64, err error) {
	p, err := handler.Principal(c)
	if err != nil {
		return 0, 0, err
	}

	if eventID, err = handler.ParamID(c, handler.ParamEventID); err != nil {
		return 0, 0, err
	}

	return p.UserID, eventID, nil
}
