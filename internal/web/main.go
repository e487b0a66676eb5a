package web

import (
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/announcement"
	"github.com/campusclubs/clubhub/internal/attendance"
	"github.com/campusclubs/clubhub/internal/auth"
	"github.com/campusclubs/clubhub/internal/club"
	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/event"
	fiberlogger "github.com/campusclubs/clubhub/internal/logger/adapter/fiber"
	"github.com/campusclubs/clubhub/internal/membership"
	"github.com/campusclubs/clubhub/internal/user"
	"github.com/campusclubs/clubhub/internal/web/handler"
	announcementhandler "github.com/campusclubs/clubhub/internal/web/handler/announcement"
	clubhandler "github.com/campusclubs/clubhub/internal/web/handler/club"
	eventhandler "github.com/campusclubs/clubhub/internal/web/handler/event"
	"github.com/campusclubs/clubhub/internal/web/handler/login"
	membershiphandler "github.com/campusclubs/clubhub/internal/web/handler/membership"
	userhandler "github.com/campusclubs/clubhub/internal/web/handler/user"
	authmiddleware "github.com/campusclubs/clubhub/internal/web/middleware/auth"
)

// Services bundles the domain services served by the web layer.
type Services struct {
	Auth          *auth.Service
	Clubs         *club.Service
	Members       *membership.Service
	Events        *event.Service
	Attendance    *attendance.Service
	Announcements *announcement.Service
	Users         *user.Service
}

// NewServices wires the domain services on top of db.
func NewServices(cfg *config.Config, db *gorm.DB) *Services {
	members := membership.NewService(db)

	return &Services{
		Auth:          auth.NewService(db, auth.NewTokens(cfg.Auth), members),
		Clubs:         club.NewService(db, members),
		Members:       members,
		Events:        event.NewService(db, members).WithDefaultDays(cfg.Events.UpcomingDays),
		Attendance:    attendance.NewService(db),
		Announcements: announcement.NewService(db),
		Users:         user.NewService(db, members),
	}
}

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	services     *Services
}

// Addr returns the configured listen address.
func (s *Service) Addr() string {
	return net.JoinHostPort(s.cfg.Webserver.Host, strconv.Itoa(s.cfg.Webserver.Port))
}

// Services returns the domain services behind the handlers.
func (s *Service) Services() *Services {
	return s.services
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and shuts the web service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while serving and 503 during graceful shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	return NewWithServices(cfg, NewServices(cfg, db))
}

// NewWithServices creates a new web service serving the given domain services.
func NewWithServices(cfg *config.Config, services *Services) *Service {
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ReadTimeout:    cfg.Webserver.ReadTimeout,
			WriteTimeout:   cfg.Webserver.WriteTimeout,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
		services:     services,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	if len(cfg.Webserver.AllowOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.Webserver.AllowOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: handler.CheckAlivePath,
		RequestIDKey:  "requestid",
		UserIDKey:     auth.LocalsUserID,
	}))

	app.Get(handler.CheckAlivePath, service.CheckAlive)
	app.Get(handler.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group(handler.APIPath, authmiddleware.New(services.Auth))

	// public
	login.New(services.Auth).Routes(api)

	// authenticated
	api.Use(authmiddleware.Require)

	for _, h := range []handler.Service{
		clubhandler.New(services.Auth, services.Clubs, services.Members, services.Events, services.Announcements),
		eventhandler.New(services.Events, services.Attendance),
		membershiphandler.New(services.Members),
		announcementhandler.New(services.Auth, services.Announcements, services.Members),
		userhandler.New(services.Users, services.Attendance, services.Auth.Local()),
	} {
		h.Routes(api)
	}

	return service
}
