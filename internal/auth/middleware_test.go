package auth_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
)

func statusApp(principal *auth.Principal, handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error

			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				return c.SendStatus(fiber.StatusUnauthorized)
			case errors.Is(err, auth.ErrForbidden):
				return c.SendStatus(fiber.StatusForbidden)
			case errors.As(err, &fe):
				return c.SendStatus(fe.Code)
			default:
				return c.SendStatus(fiber.StatusInternalServerError)
			}
		},
	})

	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			auth.SetPrincipal(c, *principal)
		}

		return c.Next()
	})

	handlers = append(handlers, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Post("/clubs/:clubId/events", handlers...)

	return app
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name      string
		principal *auth.Principal
		want      int
	}{
		{name: "anonymous", want: fiber.StatusUnauthorized},
		{name: "user", principal: &auth.Principal{UserID: 1}, want: fiber.StatusForbidden},
		{name: "admin", principal: &auth.Principal{UserID: 1, IsAdmin: true}, want: fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := statusApp(tt.principal, auth.RequireAdmin())

			resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/clubs/1/events", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequireClubManager(t *testing.T) {
	ctx := context.Background()
	svc, members, db := newService(t)

	pres := testdb.User(t, db, "pres")
	chess := testdb.Club(t, db, "Chess")

	_, _, err := members.Join(ctx, pres.ID, chess.ID)
	require.NoError(t, err)
	require.NoError(t, members.SetRole(ctx, pres.ID, chess.ID, models.RolePresident))

	tests := []struct {
		name      string
		principal *auth.Principal
		target    string
		want      int
	}{
		{name: "anonymous", target: "/clubs/1/events", want: fiber.StatusUnauthorized},
		{name: "president", principal: &auth.Principal{UserID: pres.ID}, target: "/clubs/1/events", want: fiber.StatusNoContent},
		{name: "other club", principal: &auth.Principal{UserID: pres.ID}, target: "/clubs/2/events", want: fiber.StatusForbidden},
		{name: "bad id", principal: &auth.Principal{UserID: pres.ID}, target: "/clubs/abc/events", want: fiber.StatusBadRequest},
		{name: "admin", principal: &auth.Principal{UserID: 99, IsAdmin: true}, target: "/clubs/2/events", want: fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := statusApp(tt.principal, auth.RequireClubManager(svc, "clubId"))

			resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
