package config

const (
	// EngineMySQL selects the gorm mysql driver (MySQL and MariaDB).
	EngineMySQL = "mysql"
	// EnginePostgres selects the gorm postgres driver.
	EnginePostgres = "postgres"
	// EngineSQLite selects the pure go sqlite driver, Name is the database file.
	EngineSQLite = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	GormEngine      string
	MaxOpenConns    int
	MaxIdleConns    int
	SlowQueryMillis int // queries slower than this are logged as warnings, 0 disables
}
