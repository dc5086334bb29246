package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/winpath/internal/config"
	"gitlab.com/gitlab-org/winpath/internal/errortracking"
	"gitlab.com/gitlab-org/winpath/internal/logging"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func initErrorReporting(sentryDSN, sentryEnvironment string) {
	err := errortracking.Initialize(sentryDSN, sentryEnvironment, fmt.Sprintf("%s-%s", VERSION, REVISION))
	if err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	}
}

func appMain(args []string, stdout io.Writer) {
	cfg, err := config.LoadConfig("winpath", args)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fatal(err, "invalid configuration")
	}

	printVersion(cfg.General.ShowVersion, VERSION)

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	if cfg.Sentry.DSN != "" {
		initErrorReporting(cfg.Sentry.DSN, cfg.Sentry.Environment)
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Debug("winpath")
	config.LogConfig(cfg)

	a, err := newApp(cfg)
	if err != nil {
		capturingFatal(err, errortracking.WithField("command", cfg.Command))
	}

	runErr := a.Run(context.Background(), stdout)

	if err := writeMetrics(cfg.General.MetricsTextfile); err != nil {
		log.WithError(err).WithField("path", cfg.General.MetricsTextfile).Warn("Failed to write metrics")
	}

	if runErr != nil {
		capturingFatal(runErr, errortracking.WithField("command", cfg.Command))
	}
}

func printVersion(showVersion bool, version string) {
	if showVersion {
		fmt.Fprintf(os.Stdout, "%s\n", version)
		os.Exit(0)
	}
}

func main() {
	log.SetOutput(os.Stderr)

	appMain(os.Args[1:], os.Stdout)
}
