package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Snapshot backend names.
const (
	SnapshotFile     = "file"
	SnapshotPostgres = "postgres"
	SnapshotMemory   = "memory"
)

// Data source backend names.
const (
	SourceSeed = "seed"
	SourceFile = "file"
	SourceS3   = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Snapshot SnapshotConfig
	Source   SourceConfig
	Database DatabaseConfig
	S3       S3Config
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds API authentication configuration.
type AuthConfig struct {
	APIKey string
}

// SnapshotConfig selects and configures the snapshot persistence backend.
type SnapshotConfig struct {
	Backend string // file | postgres | memory
	Dir     string // file backend: snapshot directory
	Key     string // storage key for the serialized state blob
}

// SourceConfig selects and configures the initial-data source.
type SourceConfig struct {
	Backend string // seed | file | s3
	Path    string // file backend: path to the catalogue document
	// Delay simulates the original mock API latency on the seed backend.
	Delay time.Duration
	// LoadAttempts and LoadRetryDelay bound the startup fetch retry.
	LoadAttempts   int
	LoadRetryDelay time.Duration
}

// DatabaseConfig holds PostgreSQL configuration for the postgres snapshot
// backend.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// S3Config holds AWS S3 configuration for the s3 data source.
type S3Config struct {
	Bucket string
	Region string
	Key    string // object key of the catalogue document
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Snapshot: SnapshotConfig{
			Backend: getEnv("SNAPSHOT_BACKEND", SnapshotFile),
			Dir:     getEnv("SNAPSHOT_DIR", "data/snapshots"),
			Key:     getEnv("SNAPSHOT_KEY", "superGoState"),
		},
		Source: SourceConfig{
			Backend:        getEnv("SOURCE_BACKEND", SourceSeed),
			Path:           getEnv("SOURCE_PATH", "data/catalog.json"),
			Delay:          getEnvAsDuration("SOURCE_DELAY", 500*time.Millisecond),
			LoadAttempts:   getEnvAsInt("SOURCE_LOAD_ATTEMPTS", 3),
			LoadRetryDelay: getEnvAsDuration("SOURCE_RETRY_DELAY", time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "supergo"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Key:    getEnv("S3_KEY", "catalog.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Snapshot.Backend {
	case SnapshotFile:
		if c.Snapshot.Dir == "" {
			return fmt.Errorf("snapshot directory is required for the file backend")
		}
	case SnapshotPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres backend")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required for the postgres backend")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required for the postgres backend")
		}
		if c.Database.MinConnections < 1 || c.Database.MaxConnections < 1 {
			return fmt.Errorf("database connection counts must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	case SnapshotMemory:
	default:
		return fmt.Errorf("invalid snapshot backend: %s", c.Snapshot.Backend)
	}

	if c.Snapshot.Key == "" {
		return fmt.Errorf("snapshot storage key is required")
	}

	switch c.Source.Backend {
	case SourceSeed:
	case SourceFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source path is required for the file source")
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required for the s3 source")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required for the s3 source")
		}
		if c.S3.Key == "" {
			return fmt.Errorf("S3 object key is required for the s3 source")
		}
	default:
		return fmt.Errorf("invalid source backend: %s", c.Source.Backend)
	}

	if c.Source.LoadAttempts < 1 {
		return fmt.Errorf("source load attempts must be at least 1")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
