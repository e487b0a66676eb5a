package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/campusclubs/clubhub/internal/auth"
)

// ErrInvalidParam is returned for malformed path or query parameters.
var ErrInvalidParam = errors.New("invalid parameter")

// ParamID parses the positive id route parameter name.
func ParamID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Wrap(ErrInvalidParam, name)
	}

	return id, nil
}

// QueryIDs parses a comma separated id list like "1,2,3". ok is false if the key is absent.
func QueryIDs(c *fiber.Ctx, key string) (ids []uint64, ok bool, err error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, false, nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, perr := strconv.ParseUint(part, 10, 64)
		if perr != nil || id == 0 {
			return nil, true, errors.Wrap(ErrInvalidParam, key)
		}

		ids = append(ids, id)
	}

	return ids, true, nil
}

// Principal returns the authenticated caller or auth.ErrUnauthenticated.
func Principal(c *fiber.Ctx) (auth.Principal, error) {
	p, ok := auth.CurrentPrincipal(c)
	if !ok {
		return auth.Principal{}, auth.ErrUnauthenticated
	}

	return p, nil
}
