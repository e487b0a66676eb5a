package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyJWTSecret error if auth.jwtSecret is empty while not running in dev mode.
	ErrEmptyJWTSecret = errors.New("toml config auth.jwtsecret can not be empty outside dev mode")

	// ErrUnknownGormEngine error if db.gormengine is none of mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be one of mysql, postgres, sqlite")
)
