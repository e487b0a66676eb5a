// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/campusclubs/clubhub/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(dbCfg *config.DB) string {
	switch dbCfg.GormEngine {
	case config.EnginePostgres:
		return Postgres(dbCfg)
	case config.EngineSQLite:
		return SQLite(dbCfg)
	default:
		return MySQL(dbCfg)
	}
}

// MySQL builds a go-sql-driver DSN, user:password@tcp(host:port)/name?extras.
func MySQL(dbCfg *config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
	)

	if dbCfg.Extras != "" {
		out += "?" + dbCfg.Extras
	}

	return out
}

// Postgres builds a pgx keyword/value DSN. Extras are appended as additional keywords.
func Postgres(dbCfg *config.DB) string {
	parts := []string{
		"host=" + quote(dbCfg.Host),
		fmt.Sprintf("port=%d", dbCfg.Port),
		"user=" + quote(dbCfg.User),
		"password=" + quote(dbCfg.Password),
		"dbname=" + quote(dbCfg.Name),
	}

	if dbCfg.Extras != "" {
		parts = append(parts, strings.Fields(dbCfg.Extras)...)
	}

	return strings.Join(parts, " ")
}

// SQLite returns the database file name, with extras as query parameters.
func SQLite(dbCfg *config.DB) string {
	if dbCfg.Extras == "" {
		return dbCfg.Name
	}

	return dbCfg.Name + "?" + dbCfg.Extras
}

// quote escapes a keyword value as required by libpq when it is empty or contains spaces or quotes.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(v) + "'"
}

// Redact returns the DSN with the password replaced, suitable for logging.
func Redact(dbCfg *config.DB) string {
	c := *dbCfg
	if c.Password != "" {
		c.Password = "xxxxx"
	}

	return Create(&c)
}
