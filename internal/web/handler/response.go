package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/campusclubs/clubhub/internal/announcement"
	"github.com/campusclubs/clubhub/internal/attendance"
	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/club"
	"github.com/campusclubs/clubhub/internal/event"
	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/reconcile"
	"github.com/campusclubs/clubhub/internal/user"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

//nolint:gochecknoglobals
var statusByError = []struct {
	status int
	errs   []error
}{
	{fiber.StatusBadRequest, []error{
		reconcile.ErrInvalidID, ErrInvalidBody, ErrInvalidParam,
		event.ErrTitleRequired, event.ErrInvalidTimeRange, event.ErrInvalidDays,
		announcement.ErrTitleRequired, club.ErrNameRequired, membership.ErrInvalidRole,
		auth.ErrInvalidOldPassword,
	}},
	{fiber.StatusUnauthorized, []error{
		auth.ErrInvalidCredentials, auth.ErrInvalidToken, auth.ErrUnauthenticated,
		auth.ErrUserAccountDisabled,
	}},
	{fiber.StatusForbidden, []error{auth.ErrForbidden}},
	{fiber.StatusNotFound, []error{
		reconcile.ErrNotFound, club.ErrClubNotFound, event.ErrEventNotFound, event.ErrClubNotFound,
		attendance.ErrEventNotFound, membership.ErrClubNotFound, membership.ErrMembershipNotFound,
		announcement.ErrAnnouncementNotFound, announcement.ErrClubNotFound,
		user.ErrUserNotFound, auth.ErrUserNotFound,
	}},
	{fiber.StatusConflict, []error{club.ErrClubExists, auth.ErrUserNameOrEmailExists}},
}

// StatusOf maps a domain error to its HTTP status code.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}

	for _, group := range statusByError {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}

	return fiber.StatusInternalServerError
}

// ErrorHandler is the fiber error handler of the JSON API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	body := ErrorResponse{Message: err.Error()}

	var ve *ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Fields
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")

		var fe *fiber.Error
		if !errors.As(err, &fe) {
			body.Message = MsgInternalServerError
		}
	}

	return c.Status(status).JSON(body)
}

// NoContent answers with 204.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Created answers with 201 and v as body.
func Created(c *fiber.Ctx, v any) error {
	return c.Status(fiber.StatusCreated).JSON(v)
}
