package config

import (
	"github.com/namsral/flag"
)

var (
	rootDir    = flag.String("root", "public", "The directory files are resolved from")
	fallback   = flag.String("fallback", "", "A file relative to -root used when a request does not resolve to a file, e.g. index.html")
	logFormat  = flag.String("log-format", "text", "The log output format: 'text' or 'json'")
	logVerbose = flag.Bool("log-verbose", false, "Verbose logging")

	sentryDSN         = flag.String("sentry-dsn", "", "The address for sending sentry crash reporting to")
	sentryEnvironment = flag.String("sentry-environment", "", "The environment for sentry crash reporting")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	mapping = MappingFlag{}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&mapping, "mapping", "An exact request pathname substituted before resolving, in the form /pathname=target")

	// read from -config=/path/to/resolver-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
