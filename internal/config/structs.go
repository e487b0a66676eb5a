package config

import (
	"time"

	"github.com/campusclubs/clubhub/internal/logger"
)

// Auth holds bearer token settings.
type Auth struct {
	JWTSecret string        // HMAC secret used to sign access tokens
	TokenTTL  time.Duration // lifetime of an issued access token
	Issuer    string
}

// Events holds event listing settings.
type Events struct {
	UpcomingDays int // default look-ahead window for /api/events/upcoming
}

// Seed controls the initial data written into an empty database.
type Seed struct {
	AdminEmail    string
	AdminPassword string
	DemoClubs     bool // create a handful of demo clubs on an empty database
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Events    Events
	Seed      Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool     // disable recover middleware
	Host           string   // listening interface, empty for all
	Port           int      // listening port for the webserver
	ShutDownTime   int      // wait time for shutdown
	URL            string   // base url for the webserver
	AllowOrigins   []string // CORS origins of the single page frontend
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}
