/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/internal/iofs"
	"github.com/gnames/gnquery/internal/iologger"
	"github.com/gnames/gnquery/internal/iopatterns"
	gnquery "github.com/gnames/gnquery/pkg"
	"github.com/gnames/gnquery/pkg/config"
	"github.com/gnames/gnquery/pkg/datasets"
	"github.com/gnames/gnquery/pkg/domain"
	"github.com/gnames/gnquery/pkg/healthcare"
	"github.com/gnames/gnquery/pkg/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	gnq     gnquery.GNquery
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", gnquery.Version, gnquery.Build,
		),
		Use:   "gnquery",
		Short: "GNquery compiles parameterized analytical query patterns",
		Long: `GNquery keeps a catalog of named analytical query patterns and
compiles them into SQL for a columnar analytical store.

Features:
  - Pattern Catalog: Medicare, population health and facility adequacy
    patterns, extensible with user patterns from patterns.yaml
  - Compilation: parameter validation, escaping, bound parameters
    and optimization hints
  - Domain Translation: keyword based pattern selection for education,
    transportation, environment, economics and housing data
  - Execution: optional run against a PostgreSQL-compatible store

Configuration is read from ~/.config/gnquery/config.yaml and from
GNQUERY_* environment variables.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnquery version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnquery")

	rootCmd.AddCommand(
		getListCmd(),
		getShowCmd(),
		getCompileCmd(),
		getTranslateCmd(),
		getDomainsCmd(),
		getBatchCmd(),
		getRunCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	if err = iofs.EnsurePatternsFile(homeDir, cfg.Engine.PatternsFile); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if gnq, err = initEngine(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// initEngine builds the pattern registry in its fixed order (medicare,
// population health, facility adequacy, user patterns) and the domain
// catalog, and returns the engine that uses them.
func initEngine(cfg *config.Config) (gnquery.GNquery, error) {
	path := config.PatternsFilePath(cfg.HomeDir, cfg.Engine.PatternsFile)
	custom, err := iopatterns.Load(path)
	if err != nil {
		return nil, err
	}

	provs := append(healthcare.Providers(), custom)
	reg := registry.New(provs...)
	warnOverrides(reg.Overrides())

	cat := domain.NewCatalog(
		datasets.All(),
		domain.OptDefaultYear(cfg.Engine.DefaultYear),
	)

	slog.Info("Engine is ready",
		"patterns", reg.Len(), "domains", len(cat.Domains()))
	return gnquery.New(cfg, reg, cat), nil
}

func warnOverrides(ovs []registry.Override) {
	for _, o := range ovs {
		if o.Provider == iopatterns.ProviderName {
			gn.Info("Pattern <em>%s</em> from %s replaces the one from %s",
				o.ID, o.Provider, o.Replaced)
			continue
		}
		gn.Warn("Pattern <warn>%s</warn> from %s replaces the one from %s",
			o.ID, o.Provider, o.Replaced)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	if err = v.Unmarshal(res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Engine configuration
	v.BindEnv("engine.default_year", "GNQUERY_ENGINE_DEFAULT_YEAR")
	v.BindEnv("engine.row_limit", "GNQUERY_ENGINE_ROW_LIMIT")
	v.BindEnv("engine.strict", "GNQUERY_ENGINE_STRICT")
	v.BindEnv("engine.patterns_file", "GNQUERY_ENGINE_PATTERNS_FILE")

	// Database configuration
	v.BindEnv("database.host", "GNQUERY_DATABASE_HOST")
	v.BindEnv("database.port", "GNQUERY_DATABASE_PORT")
	v.BindEnv("database.user", "GNQUERY_DATABASE_USER")
	v.BindEnv("database.password", "GNQUERY_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNQUERY_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNQUERY_DATABASE_SSL_MODE")

	// Log configuration
	v.BindEnv("log.level", "GNQUERY_LOG_LEVEL")
	v.BindEnv("log.format", "GNQUERY_LOG_FORMAT")
	v.BindEnv("log.destination", "GNQUERY_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNQUERY_JOBS_NUMBER")

	v.AutomaticEnv()
}
