// Package config provides configuration management for GNquery.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Engine: default_year, row_limit, strict, patterns_file
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNQUERY_ prefix with underscores for nesting:
//
//	GNQUERY_ENGINE_DEFAULT_YEAR=2023
//	GNQUERY_ENGINE_STRICT=true
//	GNQUERY_DATABASE_HOST=localhost
//	GNQUERY_LOG_LEVEL=info
//	GNQUERY_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNquery configuration.
type Config struct {
	// Engine contains settings of the template compilation engine.
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`

	// Database contains connection settings of the analytical store used
	// by the run command. The engine itself never connects anywhere.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for batch compilation.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// EngineConfig contains settings for pattern compilation.
type EngineConfig struct {
	// DefaultYear is used by domain translation when a request has no
	// timeframe.
	DefaultYear string `mapstructure:"default_year" yaml:"default_year"`

	// RowLimit is the value appended by the add_limit hint.
	RowLimit int `mapstructure:"row_limit" yaml:"row_limit"`

	// Strict turns declared placeholders that stay unresolved after
	// compilation into an error. When false, such placeholders are
	// passed through as literal text.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// PatternsFile is the name of the YAML file with user-defined patterns,
	// relative to the config directory. User patterns are registered after
	// the built-in ones and override them on id collision.
	PatternsFile string `mapstructure:"patterns_file" yaml:"patterns_file"`
}

// DatabaseConfig contains connection parameters for a PostgreSQL-wire
// compatible analytical store.
type DatabaseConfig struct {
	// Host is the server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Engine: EngineConfig{
			DefaultYear:  "2023",
			RowLimit:     1000,
			Strict:       true,
			PatternsFile: "patterns.yaml",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "analytics",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
