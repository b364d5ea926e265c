package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/go-mimedb"
	"gitlab.com/gitlab-org/labkit/errortracking"

	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/config"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/internal/logging"
	"gitlab.com/gitlab-org/gitlab-pages-resolver/resolver"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func initErrorReporting(sentryDSN, sentryEnvironment string) error {
	return errortracking.Initialize(
		errortracking.WithSentryDSN(sentryDSN),
		errortracking.WithVersion(fmt.Sprintf("%s-%s", VERSION, REVISION)),
		errortracking.WithLoggerName("pages-resolve"),
		errortracking.WithSentryEnvironment(sentryEnvironment))
}

func appMain() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Error("Failed to load config")
		return 2
	}

	if cfg.General.ShowVersion {
		fmt.Printf("pages-resolve %s-%s\n", VERSION, REVISION)
		return 0
	}

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		log.WithError(err).Error("Failed to initialize logging")
		return 2
	}

	if cfg.Sentry.DSN != "" {
		if err := initErrorReporting(cfg.Sentry.DSN, cfg.Sentry.Environment); err != nil {
			log.WithError(err).Warn("Failed to initialize error reporting")
		}
	}

	config.LogConfig(cfg)

	if err := mimedb.LoadTypes(); err != nil {
		log.WithError(err).Warn("Loading extended MIME database failed")
	}

	r, err := resolver.New(cfg.Resolver())
	if err != nil {
		log.WithError(err).Error("Failed to configure resolver")
		return 2
	}

	if err := run(os.Stdout, r, cfg.Paths); err != nil {
		log.WithError(err).Error("Failed to resolve")
		return 1
	}

	return 0
}

// run resolves each target and prints one line per outcome
func run(w io.Writer, r *resolver.Resolver, targets []string) error {
	for _, target := range targets {
		req, err := http.NewRequest(http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("invalid request path %q: %w", target, err)
		}

		resp, err := r.Resolve(req)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", target, err)
		}

		if resp == nil {
			fmt.Fprintf(w, "%s\tabsent\n", target)
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", target, resp.StatusCode, resp.Path, resp.Size, resp.Header.Get("Content-Type"))
		resp.Close()
	}

	return nil
}

func main() {
	os.Exit(appMain())
}
