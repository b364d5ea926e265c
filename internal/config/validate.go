package config

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

var (
	errNoRoot           = errors.New("root must be defined")
	errInvalidLogFormat = errors.New("log-format must be either 'text' or 'json'")
	errNoPaths          = errors.New("at least one request path must be given")
)

func validateConfig(config *Config) error {
	if config.General.ShowVersion {
		return nil
	}

	var result *multierror.Error

	if config.General.RootDir == "" {
		result = multierror.Append(result, errNoRoot)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, errInvalidLogFormat)
	}

	if len(config.Paths) == 0 {
		result = multierror.Append(result, errNoPaths)
	}

	return result.ErrorOrNil()
}
