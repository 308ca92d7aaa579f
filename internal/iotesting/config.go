// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"strings"

	"github.com/gnames/gnquery/pkg/config"
	"github.com/spf13/viper"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnquery_test"
)

// Config returns a configuration suitable for integration tests. Defaults
// are overridden by GNQUERY_DATABASE_* environment variables, the database
// name is always TestDatabaseName.
func Config() *config.Config {
	v := viper.New()
	v.SetEnvPrefix("GNQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := config.New()
	var opts []config.Option
	if s := v.GetString("database.host"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if i := v.GetInt("database.port"); i > 0 {
		opts = append(opts, config.OptDatabasePort(i))
	}
	if s := v.GetString("database.user"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := v.GetString("database.password"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	if s := v.GetString("database.ssl_mode"); s != "" {
		opts = append(opts, config.OptDatabaseSSLMode(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// DatabaseConfig returns only the database part of Config.
func DatabaseConfig() *config.DatabaseConfig {
	cfg := Config()
	return &cfg.Database
}
