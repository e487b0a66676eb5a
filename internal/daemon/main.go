// Package daemon opens the database, seeds it and runs the web service.
package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db"
	"github.com/campusclubs/clubhub/internal/web"
)

// ErrConfigNil is returned when the daemon is created without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start runs the web service until a termination signal arrives, then closes the database.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := d.webService.Addr()
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	if err := d.webService.Start(addr); err != nil {
		return err
	}

	return db.Close(d.db)
}

// New creates a new Daemon instance with the provided configuration.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(ctx, &cfg.DB)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx, gdb); err != nil {
		return nil, err
	}

	if err = Seed(ctx, cfg, gdb); err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: web.New(cfg, gdb),
	}, nil
}
