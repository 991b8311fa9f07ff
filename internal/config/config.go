// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageDriverFile     = "file"
	StorageDriverBlob     = "blob"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMySQL    = "mysql"
	StorageDriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// StorageDriver selects where record sets are kept (file, blob, redis, postgres,
	// mysql or sqlite).
	StorageDriver string
	// DataDir is the directory holding users.json and projects.json for the file driver.
	DataDir string
	// StorageBlobURL is the bucket URL for the blob driver (e.g., "file:///var/lib/crowdfund").
	StorageBlobURL string

	// RedisAddr is the host:port of the Redis server for the redis driver.
	RedisAddr string
	// RedisPassword is the optional Redis password.
	RedisPassword string
	// RedisDB is the Redis logical database number.
	RedisDB int
	// RedisKeyPrefix is prepended to the record set kind to form the Redis key.
	RedisKeyPrefix string

	// DBConnectionString is the connection string for the SQL drivers.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// ProjectAutoClosePolicy is "never" or "target_reached".
	ProjectAutoClosePolicy string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfilePath is where metrics are written on shutdown. Empty disables the dump.
	MetricsTextfilePath string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Storage
		StorageDriver:  env.GetString("STORAGE_DRIVER", StorageDriverFile),
		DataDir:        env.GetString("DATA_DIR", "."),
		StorageBlobURL: env.GetString("STORAGE_BLOB_URL", "mem://"),

		// Redis
		RedisAddr:      env.GetString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  env.GetString("REDIS_PASSWORD", ""),
		RedisDB:        env.GetInt("REDIS_DB", 0),
		RedisKeyPrefix: env.GetString("REDIS_KEY_PREFIX", "crowdfund:records:"),

		// Database configuration
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", ""),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Projects
		ProjectAutoClosePolicy: env.GetString("PROJECT_AUTO_CLOSE_POLICY", "never"),

		// Metrics
		MetricsEnabled:      env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:    env.GetString("METRICS_NAMESPACE", "crowdfund"),
		MetricsTextfilePath: env.GetString("METRICS_TEXTFILE_PATH", ""),
	}
}

// IsSQLStorage reports whether the storage driver is backed by database/sql.
func (c *Config) IsSQLStorage() bool {
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMySQL, StorageDriverSQLite:
		return true
	default:
		return false
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
