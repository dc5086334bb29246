package config

import (
	"runtime"

	"github.com/namsral/flag"
)

// EnvPrefix is prepended to the upper-cased flag name to form the environment
// variable a flag can be set with, e.g. WINPATH_LOG_FORMAT
const EnvPrefix = "WINPATH"

type flags struct {
	set *flag.FlagSet

	fsFixture           *string
	workingDir          *string
	stripVerbatimPrefix *bool
	output              *string
	parallelism         *int
	metricsTextfile     *string
	logFormat           *string
	logVerbose          *bool
	sentryDSN           *string
	sentryEnvironment   *string
	showVersion         *bool
}

func newFlags(name string) *flags {
	set := flag.NewFlagSetWithEnvPrefix(name, EnvPrefix, flag.ContinueOnError)

	f := &flags{
		set:                 set,
		fsFixture:           set.String("fs-fixture", "", "YAML arena to resolve paths against instead of the host filesystem"),
		workingDir:          set.String("cwd", "", "Working directory used to make relative paths absolute (defaults to the filesystem's one)"),
		stripVerbatimPrefix: set.Bool("strip-verbatim-prefix", false, `Drop the \\?\ prefix from canonical paths when the unprefixed path names the same file`),
		output:              set.String("output", "text", "The result output format: 'text' or 'json'"),
		parallelism:         set.Int("parallelism", runtime.NumCPU(), "Maximum number of paths canonicalized concurrently"),
		metricsTextfile:     set.String("metrics-textfile", "", "Write Prometheus metrics to this file before exiting"),
		logFormat:           set.String("log-format", "text", "The log output format: 'text' or 'json'"),
		logVerbose:          set.Bool("log-verbose", false, "Verbose logging"),
		sentryDSN:           set.String("sentry-dsn", "", "The address for sending sentry crash reporting to"),
		sentryEnvironment:   set.String("sentry-environment", "", "The environment for sentry crash reporting"),
		showVersion:         set.Bool("version", false, "Show version"),
	}

	// read from -config=/path/to/winpath-config
	set.String(flag.DefaultConfigFlagname, "", "path to config file")

	return f
}
