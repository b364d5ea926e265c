package config

import (
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/resolver"
)

// Config stores all the config options of the resolve tool.
type Config struct {
	General General
	Log     Log
	Sentry  Sentry

	// Paths holds the request paths passed as positional arguments
	Paths []string
}

// General groups the settings handed to the resolver
type General struct {
	RootDir     string
	Fallback    string
	Mapping     map[string]string
	ShowVersion bool
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Sentry groups settings related to configuring Sentry
type Sentry struct {
	DSN         string
	Environment string
}

// Resolver returns the resolver configuration described by c
func (c *Config) Resolver() resolver.Config {
	cfg := resolver.Config{
		Root:    c.General.RootDir,
		Mapping: c.General.Mapping,
	}

	if c.General.Fallback != "" {
		cfg.Fallback = resolver.WithFallbackPath(c.General.Fallback)
	}

	return cfg
}

func loadConfig(args []string) (*Config, error) {
	config := &Config{
		General: General{
			RootDir:     *rootDir,
			Fallback:    *fallback,
			Mapping:     mapping.Map(),
			ShowVersion: *showVersion,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
		Paths: args,
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename": flag.DefaultConfigFlagname,
		"fallback":                config.General.Fallback,
		"log-format":              config.Log.Format,
		"log-verbose":             config.Log.Verbose,
		"mapping":                 mapping.String(),
		"root":                    config.General.RootDir,
		"sentry-environment":      config.Sentry.Environment,
	}).Debug("Resolve with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments or
// via config file, and populates a Config object with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig(flag.Args())
}
