package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrUnknownOutput      = errors.New("output must be either text or json")
	ErrUnknownLogFormat   = errors.New("log-format must be either text or json")
	ErrInvalidParallelism = errors.New("parallelism must be greater than or equal to 1")
	ErrNoCommand          = errors.New("a command must be given")
)

// Validate reports every invalid setting of config at once
func Validate(config *Config) error {
	if config.General.ShowVersion {
		return nil
	}

	var result *multierror.Error

	switch config.General.Output {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("%w, got %q", ErrUnknownOutput, config.General.Output))
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("%w, got %q", ErrUnknownLogFormat, config.Log.Format))
	}

	if config.General.Parallelism < 1 {
		result = multierror.Append(result, fmt.Errorf("%w, got %d", ErrInvalidParallelism, config.General.Parallelism))
	}

	if config.Command == "" {
		result = multierror.Append(result, ErrNoCommand)
	}

	return result.ErrorOrNil()
}
