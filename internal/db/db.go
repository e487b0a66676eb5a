// Package db opens the gorm connection for the configured engine and migrates the schema.
package db

import (
	"context"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusclubs/clubhub/internal/config"
	"github.com/campusclubs/clubhub/internal/db/dsn"
	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/logger/adapter/gormlogger"
)

// ErrUnknownEngine is returned for an engine without a dialector.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Dialector returns the gorm dialector for cfg.GormEngine.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	switch cfg.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Postgres(cfg)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg)), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, cfg.GormEngine)
	}
}

// GormConfig is the gorm configuration shared by every engine.
// Constraint violations are translated to gorm.ErrDuplicatedKey.
func GormConfig(cfg *config.DB) *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(nil, gormlogger.Config{
			SlowThreshold:        time.Duration(cfg.SlowQueryMillis) * time.Millisecond,
			IgnoreRecordNotFound: true,
			LogLevel:             gormlogger.Level(zerolog.GlobalLevel()),
		}),
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open connects to the configured database and applies the pool limits.
func Open(ctx context.Context, cfg *config.DB) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, GormConfig(cfg))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database %s", cfg.GormEngine, dsn.Redact(cfg))
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	log.Info().Str("engine", cfg.GormEngine).Str("dsn", dsn.Redact(cfg)).Msg("database connected")

	return gdb, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(ctx context.Context, gdb *gorm.DB) error {
	if err := gdb.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "migrate schema")
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}

	return errors.Wrap(sqlDB.Close(), "close database")
}
