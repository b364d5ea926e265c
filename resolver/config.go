package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	errEmptyRoot        = errors.New("root must be defined")
	errEmptyFallback    = errors.New("fallback path must not be empty")
	errNilFallbackFunc  = errors.New("fallback func must not be nil")
	errFallbackEscapes  = errors.New("fallback path must be inside of root")
	errUnknownFallback  = errors.New("unknown fallback kind")
	errMappingKeyPrefix = errors.New("mapping pathname must start with /")
	errMappingEmpty     = errors.New("mapping target must not be empty")
)

// Config holds everything a Resolver needs. It is read once by New.
type Config struct {
	// Root is the directory files are served from, absolute or relative to
	// the working directory
	Root string
	// Fallback is used when a request does not resolve to a file
	Fallback Fallback
	// Mapping substitutes exact request pathnames, e.g. "/api/data", with a
	// path relative to Root before the path is resolved
	Mapping map[string]string
}

func validateConfig(cfg Config) error {
	var result *multierror.Error

	if cfg.Root == "" {
		result = multierror.Append(result, errEmptyRoot)
	}

	switch cfg.Fallback.kind {
	case FallbackNone:
	case FallbackPath:
		if cfg.Fallback.path == "" {
			result = multierror.Append(result, errEmptyFallback)
		}
	case FallbackFunc:
		if cfg.Fallback.fn == nil {
			result = multierror.Append(result, errNilFallbackFunc)
		}
	default:
		result = multierror.Append(result, errUnknownFallback)
	}

	for pathname, target := range cfg.Mapping {
		if !strings.HasPrefix(pathname, "/") {
			result = multierror.Append(result, fmt.Errorf("%q: %w", pathname, errMappingKeyPrefix))
		}

		if target == "" {
			result = multierror.Append(result, fmt.Errorf("%q: %w", pathname, errMappingEmpty))
		}
	}

	return result.ErrorOrNil()
}
