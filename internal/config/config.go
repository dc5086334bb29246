package config

import (
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

// Config stores all the config options relevant to winpath.
type Config struct {
	General General
	Log     Log
	Sentry  Sentry

	// Command is the operation to run, Args are its operands
	Command string
	Args    []string
}

// General groups settings that decide how paths are resolved and printed
type General struct {
	FSFixture           string
	WorkingDir          string
	StripVerbatimPrefix bool
	Output              string
	Parallelism         int
	MetricsTextfile     string
	ShowVersion         bool
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

func loadConfig(f *flags) *Config {
	config := &Config{
		General: General{
			FSFixture:           *f.fsFixture,
			WorkingDir:          *f.workingDir,
			StripVerbatimPrefix: *f.stripVerbatimPrefix,
			Output:              *f.output,
			Parallelism:         *f.parallelism,
			MetricsTextfile:     *f.metricsTextfile,
			ShowVersion:         *f.showVersion,
		},
		Log: Log{
			Format:  *f.logFormat,
			Verbose: *f.logVerbose,
		},
		Sentry: Sentry{
			DSN:         *f.sentryDSN,
			Environment: *f.sentryEnvironment,
		},
	}

	if args := f.set.Args(); len(args) > 0 {
		config.Command = args[0]
		config.Args = args[1:]
	}

	return config
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename": flag.DefaultConfigFlagname,
		"fs-fixture":              config.General.FSFixture,
		"cwd":                     config.General.WorkingDir,
		"strip-verbatim-prefix":   config.General.StripVerbatimPrefix,
		"output":                  config.General.Output,
		"parallelism":             config.General.Parallelism,
		"metrics-textfile":        config.General.MetricsTextfile,
		"log-format":              config.Log.Format,
		"log-verbose":             config.Log.Verbose,
		"command":                 config.Command,
		"args":                    len(config.Args),
	}).Debug("Start winpath with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments,
// environment variables or via config file, and populates a Config object
// with those values. The first argument after the flags names the command.
func LoadConfig(name string, args []string) (*Config, error) {
	f := newFlags(name)
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}

	config := loadConfig(f)
	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}
